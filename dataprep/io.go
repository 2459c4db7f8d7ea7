package dataprep

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/retentionlab/knapsack/knapsack"
)

// WritePortfolioCSV writes items to path in the instance file format the
// cmd/knapsackctl loader reads back: a header row of
// "id,name,cost,impact,category,efficiency" followed by one row per item,
// mirroring save_projects's DataFrame.to_csv call.
func WritePortfolioCSV(path string, items []knapsack.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataprep: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "cost", "impact", "category", "efficiency"}); err != nil {
		return fmt.Errorf("dataprep: write header: %w", err)
	}

	for _, it := range items {
		row := []string{
			strconv.FormatInt(it.ID(), 10),
			it.Name(),
			strconv.FormatFloat(it.Cost(), 'f', -1, 64),
			strconv.FormatFloat(it.Value(), 'f', -1, 64),
			it.Category(),
			strconv.FormatFloat(it.Efficiency(), 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("dataprep: write row for item %d: %w", it.ID(), err)
		}
	}

	return w.Error()
}

// justificationRecord is the on-disk shape of one Justification entry,
// matching projects_data's dict shape (id, name, cost, impact, category,
// justification) so the JSON file reads the same as the original's
// json.dump output.
type justificationRecord struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	Impact        float64 `json:"impact"`
	Category      string  `json:"category"`
	Justification string  `json:"justification"`
}

// WriteJustificationsJSON writes justifications to path as a JSON array,
// the Go equivalent of json.dump(projects_data, f, indent=2).
func WriteJustificationsJSON(path string, justifications []Justification) error {
	out := make([]justificationRecord, 0, len(justifications))
	for _, j := range justifications {
		out = append(out, justificationRecord{
			ID:            j.ID,
			Name:          j.Name,
			Cost:          j.Cost,
			Impact:        j.Impact,
			Category:      j.Category,
			Justification: j.Justification,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("dataprep: marshal justifications: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataprep: write %s: %w", path, err)
	}

	return nil
}
