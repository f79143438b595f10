package main

import (
	"context"
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sympohub/dashboard/migrations"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the event store schema",
	}
	cmd.AddCommand(
		migrateSubcommand(opts, "up", "Apply all pending migrations", func(ctx context.Context, cmd *cobra.Command, db *sql.DB, dialect migrations.Dialect) error {
			return migrations.Up(ctx, db, dialect)
		}),
		migrateSubcommand(opts, "down", "Roll back the most recent migration", func(ctx context.Context, cmd *cobra.Command, db *sql.DB, dialect migrations.Dialect) error {
			return migrations.Down(ctx, db, dialect)
		}),
		migrateSubcommand(opts, "status", "Show applied and pending migrations", func(ctx context.Context, cmd *cobra.Command, db *sql.DB, dialect migrations.Dialect) error {
			statuses, err := migrations.Statuses(ctx, db, dialect)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Path)
			}
			return tw.Flush()
		}),
	)
	return cmd
}

type migrateFunc func(ctx context.Context, cmd *cobra.Command, db *sql.DB, dialect migrations.Dialect) error

func migrateSubcommand(opts *rootOptions, use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, dialect, closeDB, err := openMigrationDB(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer closeDB()
			return run(ctx, cmd, db, dialect)
		},
	}
}
