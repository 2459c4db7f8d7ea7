package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retentionlab/knapsack/dataprep"
)

var (
	prepareRawPath string
	prepareOutDir  string
)

func init() {
	prepareCmd.Flags().StringVar(&prepareRawPath, "raw", "", "path to the raw employee-attrition CSV")
	prepareCmd.Flags().StringVar(&prepareOutDir, "out", "data/processed", "output directory for the prepared portfolio")
	_ = prepareCmd.MarkFlagRequired("raw")
	rootCmd.AddCommand(prepareCmd)
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Load, clean, and analyze the raw attrition table, then write the retention portfolio",
	RunE:  runPrepare,
}

func runPrepare(cmd *cobra.Command, args []string) error {
	records, err := dataprep.LoadEmployeeRecords(prepareRawPath)
	if err != nil {
		return err
	}

	cleaned, report := dataprep.CleanRecords(records)
	logger.Info().
		Int("initial_rows", report.InitialRows).
		Int("final_rows", report.FinalRows).
		Int("duplicates_removed", report.DuplicatesRemoved).
		Msg("cleaned attrition table")

	eda := dataprep.ComputeEDA(cleaned)
	logger.Info().
		Float64("attrition_rate", eda.AttritionRate).
		Msg("computed exploratory analysis")

	items := dataprep.FixedRetentionPortfolio()
	justifications := dataprep.RetentionJustifications()

	if err := os.MkdirAll(prepareOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", prepareOutDir, err)
	}

	csvPath := filepath.Join(prepareOutDir, "retention_projects.csv")
	if err := dataprep.WritePortfolioCSV(csvPath, items); err != nil {
		return err
	}

	jsonPath := filepath.Join(prepareOutDir, "projects_justifications.json")
	if err := dataprep.WriteJustificationsJSON(jsonPath, justifications); err != nil {
		return err
	}

	logger.Info().
		Str("portfolio_csv", csvPath).
		Str("justifications_json", jsonPath).
		Msg("wrote retention portfolio")

	return nil
}
