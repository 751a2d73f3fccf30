package weather

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/city-weather/internal/domain/forecast"
	"github.com/yanqian/city-weather/internal/domain/geocode"
	apperrors "github.com/yanqian/city-weather/pkg/errors"
)

const defaultRecentLimit = 10

// Service exposes the city forecast workflow.
type Service interface {
	Forecast(ctx context.Context, city string) (Report, error)
	RecentCities(ctx context.Context) ([]string, error)
}

// ForecastClient fetches the raw hourly series for a coordinate.
type ForecastClient interface {
	Fetch(ctx context.Context, coord geocode.Coordinate) (forecast.Series, error)
}

type service struct {
	cfg      Config
	resolver geocode.Resolver
	client   ForecastClient
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(cfg Config, resolver geocode.Resolver, client ForecastClient, logger *slog.Logger) Service {
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = defaultRecentLimit
	}
	return &service{
		cfg:      cfg,
		resolver: resolver,
		client:   client,
		logger:   logger.With("component", "weather.service"),
	}
}

// Forecast resolves the city, fetches its series and aggregates it. Errors from either step
// are returned as is; nothing is retried.
func (s *service) Forecast(ctx context.Context, city string) (Report, error) {
	if strings.TrimSpace(city) == "" {
		return Report{}, apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil)
	}

	coord, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		return Report{}, err
	}

	series, err := s.client.Fetch(ctx, coord)
	if err != nil {
		return Report{}, err
	}

	samples := forecast.Aggregate(series)
	s.logger.Info("forecast served", "city", city, "samples", len(samples))
	return Report{City: city, Forecasts: samples}, nil
}

// RecentCities lists the most recently stored city names, newest first.
func (s *service) RecentCities(ctx context.Context) ([]string, error) {
	return s.resolver.Recent(ctx, s.cfg.RecentLimit)
}
