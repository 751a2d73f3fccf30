package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/city-weather/internal/domain/geocode"
	"github.com/yanqian/city-weather/internal/domain/weather"
	"github.com/yanqian/city-weather/internal/infra/cityrepo"
	"github.com/yanqian/city-weather/internal/infra/config"
	"github.com/yanqian/city-weather/internal/infra/openmeteo"
)

const storeDialTimeout = 5 * time.Second

func provideOpenMeteoConfig(cfg *config.Config) openmeteo.Config {
	return openmeteo.Config{
		GeocodingURL: cfg.Upstream.GeocodingURL,
		ForecastURL:  cfg.Upstream.ForecastURL,
		Timeout:      cfg.Upstream.Timeout,
		Timezone:     cfg.Upstream.Timezone,
		ForecastDays: cfg.Upstream.ForecastDays,
		Breaker: openmeteo.BreakerConfig{
			Enabled:     cfg.Upstream.Breaker.Enabled,
			MaxFailures: cfg.Upstream.Breaker.MaxFailures,
			OpenTimeout: cfg.Upstream.Breaker.OpenTimeout,
		},
	}
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{RecentLimit: cfg.Stats.RecentLimit}
}

// provideCityRepository opens the configured store. Any connection problem degrades to the
// in-memory repository so the service still answers, only without durable caching.
func provideCityRepository(cfg *config.Config, logger *slog.Logger) (geocode.CityRepository, func()) {
	noop := func() {}
	var (
		repo    geocode.CityRepository
		cleanup func()
		err     error
	)
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		repo, cleanup, err = openPostgresRepository(cfg.Store.Postgres)
	case config.DriverSQLite:
		repo, cleanup, err = openSQLiteRepository(cfg.Store.SQLite)
	case config.DriverValkey:
		repo, cleanup, err = openValkeyRepository(cfg.Store.Valkey)
	default:
		logger.Info("using memory city repository")
		return cityrepo.NewMemoryRepository(), noop
	}
	if err != nil {
		logger.Error("city store unavailable, using memory repository", "driver", cfg.Store.Driver, "error", err)
		return cityrepo.NewMemoryRepository(), noop
	}
	logger.Info("city repository enabled", "driver", cfg.Store.Driver)
	return repo, cleanup
}

func openPostgresRepository(cfg config.PostgresConfig) (geocode.CityRepository, func(), error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, nil, errors.New("postgres dsn not set")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeDialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	repo := cityrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool.Close, nil
}

func openSQLiteRepository(cfg config.SQLiteConfig) (geocode.CityRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeDialTimeout)
	defer cancel()
	repo, err := cityrepo.NewSQLiteRepository(ctx, cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

func openValkeyRepository(cfg config.ValkeyConfig) (geocode.CityRepository, func(), error) {
	opt, err := buildValkeyOptions(cfg.Addr)
	if err != nil {
		return nil, nil, err
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeDialTimeout)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, nil, err
	}
	return cityrepo.NewValkeyRepository(client, cfg.Prefix), client.Close, nil
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
