package geocode

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/city-weather/pkg/errors"
)

// Resolver turns city names into coordinates, consulting the upstream geocoder only on a miss.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Coordinate, error)
	Recent(ctx context.Context, limit int) ([]string, error)
}

type resolver struct {
	repo     CityRepository
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver wires the cache-aside resolver.
func NewResolver(repo CityRepository, geocoder Geocoder, logger *slog.Logger) Resolver {
	return &resolver{
		repo:     repo,
		geocoder: geocoder,
		logger:   logger.With("component", "geocode.resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, name string) (Coordinate, error) {
	if strings.TrimSpace(name) == "" {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil)
	}

	coord, found, err := r.repo.FindByName(ctx, name)
	if err != nil {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeUpstream, "city lookup failed", err)
	}
	if found {
		r.logger.Debug("geocode cache hit", "city", name)
		return coord, nil
	}

	// Concurrent misses for the same name are not coalesced; each one calls upstream
	// and inserts its own row.
	coord, err = r.geocoder.Lookup(ctx, name)
	if err != nil {
		return Coordinate{}, err
	}

	if err := r.repo.Insert(ctx, CityRecord{Name: name, Coordinate: coord}); err != nil {
		return Coordinate{}, apperrors.Wrap(apperrors.CodeUpstream, "persist city failed", err)
	}
	r.logger.Info("geocode cache populated", "city", name, "latitude", coord.Latitude, "longitude", coord.Longitude)
	return coord, nil
}

func (r *resolver) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	names, err := r.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "list recent cities failed", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
