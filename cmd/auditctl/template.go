package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hsse/internal/audit/models"
	"hsse/internal/audit/template"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect checklist templates",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate FILE...",
		Short: "Parse and validate template files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				t, err := template.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s, %d items)\n", path, t.Name, len(t.Items))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d templates invalid", failed, len(args))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list DIR",
		Short: "List the templates a directory provides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := template.LoadDir(args[0])
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				t, _ := reg.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d items\n", name, t.Type, len(t.Items))
			}
			return nil
		},
	})
	return cmd
}

func newBandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "band PERCENTAGE",
		Short: "Print the score band for a percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.ParseFloat(args[0], 64)
			if err != nil || pct < 0 || pct > 100 {
				return fmt.Errorf("percentage must be a number between 0 and 100")
			}
			fmt.Fprintln(cmd.OutOrStdout(), models.BandFor(pct))
			return nil
		},
	}
}
