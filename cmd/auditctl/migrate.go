package main

import (
	"github.com/spf13/cobra"

	"hsse/internal/audit/store"
	"hsse/pkg/platform/outbox"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the audit and outbox tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.NewPostgres(db).Init(ctx); err != nil {
				return err
			}
			if err := outbox.NewPostgresStore(db).Init(ctx); err != nil {
				return err
			}
			log.InfoContext(ctx, "schema applied")
			return nil
		},
	}
}
