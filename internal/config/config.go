// Package config loads service configuration from defaults, an optional
// YAML file, a .env file and SYMPOHUB_* environment variables.
package config

import (
	"time"

	"github.com/sympohub/dashboard/internal/dashboard"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig selects and locates the event store.
type DatabaseConfig struct {
	Driver       string        `mapstructure:"driver" validate:"required,oneof=postgres sqlite memory"`
	URL          string        `mapstructure:"url" validate:"required_if=Driver postgres"`
	SQLitePath   string        `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	QueryTimeout time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// TelemetryConfig enables OTLP trace export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"otlp_endpoint" validate:"omitempty,url"`
	ServiceName string `mapstructure:"service_name"`
}

// DashboardConfig tunes the dashboard screen.
type DashboardConfig struct {
	Locale string                   `mapstructure:"locale" validate:"omitempty,oneof=ko en"`
	Tiles  []dashboard.TileOverride `mapstructure:"tiles" validate:"dive"`
}
