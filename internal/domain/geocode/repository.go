package geocode

import "context"

// CityRepository persists resolved cities.
//
// Names are not unique. Two first-time resolutions of the same city may both insert, and
// implementations must accept that without failing. FindByName returns the oldest row
// for a name, so the first write wins for every later reader.
type CityRepository interface {
	FindByName(ctx context.Context, name string) (Coordinate, bool, error)
	Insert(ctx context.Context, record CityRecord) error
	Recent(ctx context.Context, limit int) ([]string, error)
}

// Geocoder resolves a city name against the upstream geocoding service.
//
// Implementations return an apperrors.CodeNotFound error when the service has no match
// and an apperrors.CodeUpstream error for transport, status or decoding failures.
type Geocoder interface {
	Lookup(ctx context.Context, name string) (Coordinate, error)
}
