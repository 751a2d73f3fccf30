package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/city-weather/internal/domain/geocode"
	"github.com/yanqian/city-weather/internal/infra/cityrepo"
	"github.com/yanqian/city-weather/internal/infra/config"
)

func TestProvideCityRepositoryMemoryByDefault(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}

	repo, cleanup := provideCityRepository(cfg, discardLogger())
	defer cleanup()
	require.IsType(t, &cityrepo.MemoryRepository{}, repo)
}

func TestProvideCityRepositorySQLite(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "cities.db")},
	}}

	repo, cleanup := provideCityRepository(cfg, discardLogger())
	defer cleanup()
	require.IsType(t, &cityrepo.SQLiteRepository{}, repo)

	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, geocode.CityRecord{Name: "Quito", Coordinate: geocode.Coordinate{Latitude: -0.22, Longitude: -78.51}}))
	coord, found, err := repo.FindByName(ctx, "Quito")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, -0.22, coord.Latitude)
}

func TestProvideCityRepositoryFallsBackToMemory(t *testing.T) {
	tests := map[string]config.StoreConfig{
		"postgres without dsn": {Driver: config.DriverPostgres},
		"postgres bad dsn":     {Driver: config.DriverPostgres, Postgres: config.PostgresConfig{DSN: "postgres://%zz"}},
		"valkey bad url":       {Driver: config.DriverValkey, Valkey: config.ValkeyConfig{Addr: "redis://%zz"}},
	}
	for name, store := range tests {
		t.Run(name, func(t *testing.T) {
			repo, cleanup := provideCityRepository(&config.Config{Store: store}, discardLogger())
			defer cleanup()
			require.IsType(t, &cityrepo.MemoryRepository{}, repo)
		})
	}
}

func TestProvideOpenMeteoConfig(t *testing.T) {
	cfg := &config.Config{Upstream: config.UpstreamConfig{
		GeocodingURL: "http://geo.local/v1/search",
		ForecastURL:  "http://forecast.local/v1/forecast",
		Timeout:      3 * time.Second,
		Timezone:     "auto",
		ForecastDays: 3,
		Breaker:      config.BreakerConfig{Enabled: true, MaxFailures: 7, OpenTimeout: time.Minute},
	}}

	got := provideOpenMeteoConfig(cfg)
	require.Equal(t, "http://geo.local/v1/search", got.GeocodingURL)
	require.Equal(t, "http://forecast.local/v1/forecast", got.ForecastURL)
	require.Equal(t, 3*time.Second, got.Timeout)
	require.Equal(t, "auto", got.Timezone)
	require.Equal(t, 3, got.ForecastDays)
	require.True(t, got.Breaker.Enabled)
	require.EqualValues(t, 7, got.Breaker.MaxFailures)
	require.Equal(t, time.Minute, got.Breaker.OpenTimeout)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
