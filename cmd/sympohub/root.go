package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sympohub/dashboard/internal/config"
	"github.com/sympohub/dashboard/internal/platform/logger"
)

type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "sympohub",
		Short:        "SympoHub admin dashboard",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file (default ./sympohub.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to a .env file (default nearest .env)")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
	)
	return cmd
}

// setup loads configuration and installs the process logger.
func (o *rootOptions) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.Options{ConfigFile: o.configFile, EnvFile: o.envFile})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.Setup(cfg.Log.Level, cfg.Log.Format), nil
}
