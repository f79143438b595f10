package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/sympohub/dashboard/internal/app"
	"github.com/sympohub/dashboard/internal/config"
	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/storage/memory"
	"github.com/sympohub/dashboard/internal/storage/postgres"
	"github.com/sympohub/dashboard/internal/storage/sqlite"
	transporthttp "github.com/sympohub/dashboard/internal/transport/http"
	"github.com/sympohub/dashboard/migrations"
)

// eventStore is what every backend offers the service.
type eventStore interface {
	dashboard.EventSource
	app.AdminRepository
	app.EventWriter
}

type backend struct {
	events eventStore
	// health is nil for the in-memory store.
	health transporthttp.Pinger
	close  func()
}

// openBackend connects the configured store and brings its schema up to date.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("db ping: %w", err)
		}
		if err := migrations.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("connected to postgres")
		return &backend{
			events: postgres.NewEventRepository(pool),
			health: pool,
			close:  pool.Close,
		}, nil
	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened sqlite store", "path", cfg.SQLitePath)
		return &backend{
			events: store,
			health: store,
			close:  func() { _ = store.Close() },
		}, nil
	case "memory":
		logger.Warn("using in-memory store, data is lost on exit")
		return &backend{
			events: memory.NewEventStore(),
			close:  func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// openMigrationDB returns a database/sql handle for goose without applying
// anything.
func openMigrationDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, migrations.Dialect, func(), error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.URL)
		if err != nil {
			return nil, "", nil, fmt.Errorf("connect to db: %w", err)
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, migrations.DialectPostgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil
	case "sqlite":
		db, err := sqlite.OpenDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", nil, err
		}
		return db, migrations.DialectSQLite, func() { _ = db.Close() }, nil
	default:
		return nil, "", nil, fmt.Errorf("driver %q has no migrations", cfg.Driver)
	}
}
