package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, DriverMemory, cfg.Store.Driver)
	require.Equal(t, "https://geocoding-api.open-meteo.com/v1/search", cfg.Upstream.GeocodingURL)
	require.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Upstream.ForecastURL)
	require.Equal(t, 10, cfg.Stats.RecentLimit)
	require.True(t, cfg.Upstream.Breaker.Enabled)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://weather.example.com"]
upstream:
  timeout: 3s
  timezone: auto
  forecastDays: 3
store:
  driver: sqlite
  sqlite:
    path: /tmp/cities-test.db
stats:
  recentLimit: 5
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STATS_RECENT_LIMIT", "7")
	t.Setenv("UPSTREAM_BREAKER_ENABLED", "false")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://weather.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, "auto", cfg.Upstream.Timezone)
	require.Equal(t, 3, cfg.Upstream.ForecastDays)
	require.Equal(t, DriverSQLite, cfg.Store.Driver)
	require.Equal(t, "/tmp/cities-test.db", cfg.Store.SQLite.Path)
	require.Equal(t, 7, cfg.Stats.RecentLimit)
	require.False(t, cfg.Upstream.Breaker.Enabled)
}

func TestLoadDatabaseURLAndPort(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "3000")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://weather@localhost:5432/weather")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.HTTP.Address)
	require.Equal(t, DriverPostgres, cfg.Store.Driver)
	require.Equal(t, "postgres://weather@localhost:5432/weather", cfg.Store.Postgres.DSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, errMsg: "not supported"},
		{name: "valkey without addr", mutate: func(c *Config) { c.Store.Driver = DriverValkey }, errMsg: "store.valkey.addr"},
		{name: "empty geocoding url", mutate: func(c *Config) { c.Upstream.GeocodingURL = " " }, errMsg: "upstream.geocodingUrl"},
		{name: "zero timeout", mutate: func(c *Config) { c.Upstream.Timeout = 0 }, errMsg: "upstream.timeout"},
		{name: "non-positive recent limit", mutate: func(c *Config) { c.Stats.RecentLimit = 0 }, errMsg: "stats.recentLimit"},
		{name: "breaker without threshold", mutate: func(c *Config) { c.Upstream.Breaker.MaxFailures = 0 }, errMsg: "maxFailures"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}

	require.NoError(t, defaultConfig().Validate())
}
