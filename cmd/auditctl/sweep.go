package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hsse/internal/audit/overdue"
	"hsse/internal/audit/service"
	"hsse/internal/audit/store"
	"hsse/pkg/platform/outbox"
	txcontext "hsse/pkg/platform/tx"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		batch       int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Flag scheduled audits whose date has passed, once",
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

			svc := service.New(store.NewPostgres(db),
				service.WithLogger(log),
				service.WithTxRunner(txcontext.NewSQLRunner(db, cfg.Postgres.TxTimeout)),
				service.WithOutbox(outbox.NewPostgresStore(db)),
			)
			res, err := overdue.New(svc,
				overdue.WithLogger(log),
				overdue.WithBatchSize(batch),
				overdue.WithConcurrency(concurrency),
			).SweepOnce(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "candidates=%d marked=%d skipped=%d failed=%d\n",
				res.Candidates, res.Marked, res.Skipped, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d audits could not be marked overdue", res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&batch, "batch", 200, "maximum audits to examine")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "audits marked in parallel")
	return cmd
}
