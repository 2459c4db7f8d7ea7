package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retentionlab/knapsack/knapsack"
)

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(greedyCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve <instance.csv> <budget>",
	Short: "Find the exact optimal retention-project selection for a budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runSolve,
}

var greedyCmd = &cobra.Command{
	Use:   "greedy <instance.csv> <budget>",
	Short: "Run the greedy baseline heuristic for a budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runGreedy,
}

// noFeasibleSolutionError signals that Solve proved no subset of items fits
// the budget; it carries process exit code 2 per the CLI's documented
// contract, distinct from the generic exit code 1 for construction or I/O
// errors.
type noFeasibleSolutionError struct{}

func (noFeasibleSolutionError) Error() string { return "no feasible solution within budget" }
func (noFeasibleSolutionError) ExitCode() int  { return 2 }

// loadInstanceCSV reads items from a CSV whose header matches
// dataprep.WritePortfolioCSV's: id,name,cost,impact,category,efficiency.
// efficiency is read but not trusted — knapsack.NewItem recomputes it.
func loadInstanceCSV(path string) ([]knapsack.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}

	items := make([]knapsack.Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.ParseInt(row[col["id"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id: %w", err)
		}
		cost, err := strconv.ParseFloat(row[col["cost"]], 64)
		if err != nil {
			return nil, fmt.Errorf("parse cost: %w", err)
		}
		impact, err := strconv.ParseFloat(row[col["impact"]], 64)
		if err != nil {
			return nil, fmt.Errorf("parse impact: %w", err)
		}

		items = append(items, knapsack.NewItem(id, row[col["name"]], cost, impact, row[col["category"]]))
	}

	return items, nil
}

func parseBudget(s string) (float64, error) {
	budget, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse budget: %w", err)
	}

	return budget, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	items, err := loadInstanceCSV(args[0])
	if err != nil {
		return err
	}
	budget, err := parseBudget(args[1])
	if err != nil {
		return err
	}

	inst, err := knapsack.NewInstance(items, budget)
	if err != nil {
		return err
	}

	result := knapsack.Solve(context.Background(), inst)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}

	if result.Status == knapsack.StatusNoFeasibleSolution {
		return noFeasibleSolutionError{}
	}

	return nil
}

func runGreedy(cmd *cobra.Command, args []string) error {
	items, err := loadInstanceCSV(args[0])
	if err != nil {
		return err
	}
	budget, err := parseBudget(args[1])
	if err != nil {
		return err
	}

	inst, err := knapsack.NewInstance(items, budget)
	if err != nil {
		return err
	}

	result := knapsack.Greedy(inst)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}
