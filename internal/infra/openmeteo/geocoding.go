package openmeteo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yanqian/city-weather/internal/domain/geocode"
	apperrors "github.com/yanqian/city-weather/pkg/errors"
)

// GeocodingClient resolves city names through the Open-Meteo geocoding API.
type GeocodingClient struct {
	baseURL   string
	transport *transport
}

// NewGeocodingClient builds a geocoding client.
func NewGeocodingClient(cfg Config) *GeocodingClient {
	return &GeocodingClient{
		baseURL:   baseURL(cfg.GeocodingURL, DefaultGeocodingURL),
		transport: newTransport("openmeteo-geocoding", cfg),
	}
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
}

// Lookup returns the first candidate for name.
func (c *GeocodingClient) Lookup(ctx context.Context, name string) (geocode.Coordinate, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var payload geocodingResponse
	if err := c.transport.getJSON(ctx, c.baseURL+"?"+params.Encode(), &payload); err != nil {
		return geocode.Coordinate{}, apperrors.Wrap(apperrors.CodeUpstream, "geocoding request failed", err)
	}
	if len(payload.Results) == 0 {
		return geocode.Coordinate{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("no geocoding match for %q", name), nil)
	}

	// A result without both coordinates would otherwise be cached as (0,0) for good.
	first := payload.Results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return geocode.Coordinate{}, apperrors.Wrap(apperrors.CodeUpstream, "geocoding request failed", fmt.Errorf("result for %q is missing coordinates", name))
	}
	return geocode.Coordinate{Latitude: *first.Latitude, Longitude: *first.Longitude}, nil
}

var _ geocode.Geocoder = (*GeocodingClient)(nil)
