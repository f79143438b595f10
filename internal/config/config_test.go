package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty temp dir so no sympohub.yaml or .env
// from the repository leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{
		"SYMPOHUB_SERVER_PORT",
		"SYMPOHUB_SERVER_CORS_ORIGINS",
		"SYMPOHUB_DATABASE_DRIVER",
		"SYMPOHUB_DATABASE_URL",
		"SYMPOHUB_DATABASE_SQLITE_PATH",
		"SYMPOHUB_LOG_LEVEL",
		"SYMPOHUB_LOG_FORMAT",
		"SYMPOHUB_TELEMETRY_OTLP_ENDPOINT",
		"SYMPOHUB_DASHBOARD_LOCALE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, defaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, "sympohub-dashboard", cfg.Telemetry.ServiceName)
	assert.Equal(t, "ko", cfg.Dashboard.Locale)
	assert.Empty(t, cfg.Dashboard.Tiles)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SYMPOHUB_SERVER_PORT", "9090")
	t.Setenv("SYMPOHUB_SERVER_CORS_ORIGINS", "https://admin.example.com, https://ops.example.com")
	t.Setenv("SYMPOHUB_DATABASE_DRIVER", "memory")
	t.Setenv("SYMPOHUB_LOG_LEVEL", "debug")
	t.Setenv("SYMPOHUB_TELEMETRY_OTLP_ENDPOINT", "http://collector:4318")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://collector:4318", cfg.Telemetry.Endpoint)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
server:
  port: 7000
database:
  driver: sqlite
  sqlite_path: /tmp/sympohub.db
dashboard:
  locale: en
  tiles:
    - key: events
      value: "31"
      trend: "3%"
      positive: false
`)

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/sympohub.db", cfg.Database.SQLitePath)
	assert.Equal(t, "en", cfg.Dashboard.Locale)
	require.Len(t, cfg.Dashboard.Tiles, 1)
	assert.Equal(t, "events", cfg.Dashboard.Tiles[0].Key)
	assert.Equal(t, "31", cfg.Dashboard.Tiles[0].Value)
	assert.False(t, cfg.Dashboard.Tiles[0].Positive)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "sympohub.yaml"), "server:\n  port: 7000\n")
	t.Setenv("SYMPOHUB_SERVER_PORT", "7100")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "SYMPOHUB_LOG_FORMAT=text\nSYMPOHUB_LOG_LEVEL=warn\n")
	t.Setenv("SYMPOHUB_LOG_LEVEL", "error")
	t.Cleanup(func() { _ = os.Unsetenv("SYMPOHUB_LOG_FORMAT") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{ConfigFile: filepath.Join(dir, "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"SYMPOHUB_DATABASE_DRIVER": "mysql"}},
		{name: "port out of range", env: map[string]string{"SYMPOHUB_SERVER_PORT": "70000"}},
		{name: "unknown log format", env: map[string]string{"SYMPOHUB_LOG_FORMAT": "xml"}},
		{name: "unsupported locale", env: map[string]string{"SYMPOHUB_DASHBOARD_LOCALE": "fr"}},
		{name: "unknown log level", env: map[string]string{"SYMPOHUB_LOG_LEVEL": "trace"}},
		{name: "bad otlp endpoint", env: map[string]string{"SYMPOHUB_TELEMETRY_OTLP_ENDPOINT": "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestNormalizeOrigins(t *testing.T) {
	t.Parallel()

	got := normalizeOrigins([]string{"a, b", "", " c "})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLoad_RejectsUnknownTileKey(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tiles.yaml")
	writeFile(t, path, "dashboard:\n  tiles:\n    - key: revenue\n      value: \"1\"\n")

	_, err := Load(Options{ConfigFile: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
