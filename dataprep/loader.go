package dataprep

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMissingColumn is returned when the CSV header lacks one of the
	// columns the attrition-study model requires.
	ErrMissingColumn = errors.New("dataprep: missing required column")

	// ErrNoRecords is returned when the input file has a header but no data
	// rows.
	ErrNoRecords = errors.New("dataprep: no data rows")
)

// requiredColumns lists the columns download_dataset.py's Kaggle export and
// synth.Generate both produce. JobRole is the one categorical column the
// cleaning and EDA steps use; the rest are numeric risk factors.
var requiredColumns = []string{
	"Age",
	"MonthlyIncome",
	"YearsAtCompany",
	"DistanceFromHome",
	"JobSatisfaction",
	"WorkLifeBalance",
	"PerformanceRating",
	"JobRole",
	"Attrition",
}

// EmployeeRecord is one row of the attrition-study table. Numeric fields are
// pointers so a blank CSV cell is distinguishable from a real zero; CleanRecords
// replaces every nil with the column's median. JobRole is the one
// categorical field the EDA and cleaning steps use; an empty string means
// missing, imputed to the column's mode.
type EmployeeRecord struct {
	Age               *float64
	MonthlyIncome     *float64
	YearsAtCompany    *float64
	DistanceFromHome  *float64
	JobSatisfaction   *float64
	WorkLifeBalance   *float64
	PerformanceRating *float64
	JobRole           string
	Attrition         bool
}

// LoadEmployeeRecords reads a flat CSV at path with the header this package
// expects (see requiredColumns) and returns one EmployeeRecord per data row.
// A blank cell in a numeric or JobRole column becomes a missing value rather
// than a parse error; CleanRecords is responsible for filling it in.
func LoadEmployeeRecords(path string) ([]EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataprep: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("dataprep: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataprep: column %q: %w", name, ErrMissingColumn)
		}
	}

	var records []EmployeeRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataprep: read row %d: %w", len(records)+2, err)
		}

		rec, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("dataprep: row %d: %w", len(records)+2, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

func parseRow(row []string, col map[string]int) (EmployeeRecord, error) {
	get := func(name string) string {
		return strings.TrimSpace(row[col[name]])
	}

	numeric := func(name string) (*float64, error) {
		s := get(name)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}

		return &v, nil
	}

	var rec EmployeeRecord
	var err error

	if rec.Age, err = numeric("Age"); err != nil {
		return rec, err
	}
	if rec.MonthlyIncome, err = numeric("MonthlyIncome"); err != nil {
		return rec, err
	}
	if rec.YearsAtCompany, err = numeric("YearsAtCompany"); err != nil {
		return rec, err
	}
	if rec.DistanceFromHome, err = numeric("DistanceFromHome"); err != nil {
		return rec, err
	}
	if rec.JobSatisfaction, err = numeric("JobSatisfaction"); err != nil {
		return rec, err
	}
	if rec.WorkLifeBalance, err = numeric("WorkLifeBalance"); err != nil {
		return rec, err
	}
	if rec.PerformanceRating, err = numeric("PerformanceRating"); err != nil {
		return rec, err
	}

	rec.JobRole = get("JobRole")

	attr := get("Attrition")
	switch attr {
	case "1", "Yes", "yes", "true", "True":
		rec.Attrition = true
	case "0", "No", "no", "false", "False", "":
		rec.Attrition = false
	default:
		return rec, fmt.Errorf("column Attrition: unrecognized value %q", attr)
	}

	return rec, nil
}
