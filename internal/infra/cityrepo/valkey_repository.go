package cityrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/city-weather/internal/domain/geocode"
)

const maxRecentEntries = 100

// ValkeyRepository persists cities in a Valkey-compatible database. Each city is a JSON
// value written with NX, so the first coordinate stored for a name is the one kept; a
// capped list tracks insert order for the stats page.
type ValkeyRepository struct {
	client valkey.Client
	prefix string
}

// NewValkeyRepository constructs a new repository backed by Valkey.
func NewValkeyRepository(client valkey.Client, prefix string) *ValkeyRepository {
	if prefix == "" {
		prefix = "cities"
	}
	return &ValkeyRepository{client: client, prefix: prefix}
}

func (r *ValkeyRepository) FindByName(ctx context.Context, name string) (geocode.Coordinate, bool, error) {
	payload, err := r.client.Do(ctx, r.client.B().Get().Key(r.cityKey(name)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return geocode.Coordinate{}, false, nil
		}
		return geocode.Coordinate{}, false, err
	}
	var coord geocode.Coordinate
	if err := json.Unmarshal([]byte(payload), &coord); err != nil {
		return geocode.Coordinate{}, false, fmt.Errorf("decode city %q: %w", name, err)
	}
	return coord, true, nil
}

// Insert stores the coordinate (unless the name already has one) and records the name in the
// recent list inside one MULTI/EXEC, so a failed push never leaves a half-written city.
func (r *ValkeyRepository) Insert(ctx context.Context, record geocode.CityRecord) error {
	payload, err := json.Marshal(record.Coordinate)
	if err != nil {
		return err
	}
	resps := r.client.DoMulti(ctx,
		r.client.B().Multi().Build(),
		r.client.B().Set().Key(r.cityKey(record.Name)).Value(string(payload)).Nx().Build(),
		r.client.B().Lpush().Key(r.recentKey()).Element(record.Name).Build(),
		r.client.B().Ltrim().Key(r.recentKey()).Start(0).Stop(maxRecentEntries-1).Build(),
		r.client.B().Exec().Build(),
	)
	for _, resp := range resps {
		if err := resp.Error(); err != nil && !valkey.IsValkeyNil(err) {
			return fmt.Errorf("insert city %q: %w", record.Name, err)
		}
	}
	return nil
}

func (r *ValkeyRepository) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	names, err := r.client.Do(ctx, r.client.B().Lrange().Key(r.recentKey()).Start(0).Stop(int64(limit-1)).Build()).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return names, nil
}

func (r *ValkeyRepository) cityKey(name string) string {
	return fmt.Sprintf("%s:city:%s", r.prefix, name)
}

func (r *ValkeyRepository) recentKey() string {
	return fmt.Sprintf("%s:recent", r.prefix)
}

var _ geocode.CityRepository = (*ValkeyRepository)(nil)
