package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sympohub/dashboard/internal/app"
	"github.com/sympohub/dashboard/internal/clock"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			if cfg.Database.Driver == "memory" {
				return fmt.Errorf("seed needs a persistent store, driver is %q", cfg.Database.Driver)
			}

			store, err := openBackend(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return err
			}
			defer store.close()

			n, err := app.Seed(cmd.Context(), store.events, clock.NewSystem())
			if err != nil {
				return err
			}
			logger.Info("seeded sample events", "count", n)
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d events\n", n)
			return nil
		},
	}
}
