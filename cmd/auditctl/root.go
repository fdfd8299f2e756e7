package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"hsse/internal/platform/config"
	"hsse/internal/platform/logger"
)

type rootOptions struct {
	envFile   string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "auditctl",
		Short:         "Maintenance tooling for the HSSE audit engine",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log output format (text or json)")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSweepCmd(opts),
		newTemplateCmd(),
		newBandCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger.New(o.logFormat), nil
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("pgx", cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
