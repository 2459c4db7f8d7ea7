package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/retentionlab/knapsack/dataprep"
	"github.com/retentionlab/knapsack/httpapi"
	"github.com/retentionlab/knapsack/internal/config"
	"github.com/retentionlab/knapsack/store"
)

var serveConfigPath string

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API and dashboard data server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	var st store.Store
	if cfg.DatabaseDSN != "" {
		logger.Info().Str("dsn", store.MaskDSN(cfg.DatabaseDSN)).Msg("connecting to postgres")
		st, err = store.OpenPostgresStore(cmd.Context(), cfg.DatabaseDSN)
		if err != nil {
			return err
		}
	} else {
		logger.Warn().Msg("no database_dsn configured, using in-memory store")
		st = store.NewMemoryStore()
	}
	defer st.Close()

	srv := httpapi.NewServer(st, logger)
	srv.SetEDA(dataprep.EDAResult{})

	logger.Info().Str("addr", cfg.Addr()).Msg("starting server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, cfg.Addr())
}
