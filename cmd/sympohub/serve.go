package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sympohub/dashboard/internal/app"
	"github.com/sympohub/dashboard/internal/clock"
	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/i18n"
	"github.com/sympohub/dashboard/internal/platform/otel"
	transporthttp "github.com/sympohub/dashboard/internal/transport/http"
)

const startupTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}

			startupCtx, cancel := context.WithTimeout(cmd.Context(), startupTimeout)
			defer cancel()

			shutdownTracing, err := otel.Setup(startupCtx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
			if err != nil {
				return fmt.Errorf("setup tracing: %w", err)
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := shutdownTracing(ctx); err != nil {
					logger.Warn("tracing shutdown", "error", err)
				}
			}()

			store, err := openBackend(startupCtx, cfg.Database, logger)
			if err != nil {
				return err
			}
			defer store.close()

			if cfg.Database.Driver == "memory" {
				n, err := app.Seed(startupCtx, store.events, clock.NewSystem())
				if err != nil {
					return err
				}
				logger.Info("seeded in-memory store", "count", n)
			}

			source := dashboard.WithQueryTimeout(store.events, cfg.Database.QueryTimeout)
			deps := transporthttp.Deps{
				Dashboard:   dashboard.NewService(source, logger, cfg.Dashboard.Tiles...),
				Admin:       app.NewAdminService(store.events, clock.NewSystem()),
				Logger:      logger,
				CORSOrigins: cfg.Server.CORSOrigins,
				Locale:      i18n.Parse(cfg.Dashboard.Locale),
			}
			if store.health != nil {
				deps.Health = store.health
			}

			server := &http.Server{
				Addr:              ":" + strconv.Itoa(cfg.Server.Port),
				Handler:           transporthttp.NewRouter(deps),
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("dashboard listening", "addr", server.Addr, "driver", cfg.Database.Driver)

			srvErr := make(chan error, 1)
			go func() {
				srvErr <- server.ListenAndServe()
			}()

			stopCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-srvErr:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
			case <-stopCtx.Done():
				logger.Info("shutdown signal received, stopping server")
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server shutdown error", "error", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}
}
