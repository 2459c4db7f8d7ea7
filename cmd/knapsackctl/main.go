// Command knapsackctl is the CLI surface over the knapsack solver and the
// dataprep/httpapi packages: solve or greedily approximate a knapsack
// instance from a CSV file, run the instance-preparation pipeline, or serve
// the REST API.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:           "knapsackctl",
	Short:         "Solve retention-portfolio knapsack instances",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code. Most
// subcommands return a plain error (exit 1 on failure); solveCmd overrides
// this via exitCoder to distinguish "no feasible solution" (2) from a
// genuine error (1).
func run() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		if ec, ok := err.(exitCoder); ok {
			return ec.ExitCode()
		}
		return 1
	}

	return 0
}

// exitCoder lets a subcommand's error carry a specific process exit code.
type exitCoder interface {
	error
	ExitCode() int
}
