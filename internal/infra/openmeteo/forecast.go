package openmeteo

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/yanqian/city-weather/internal/domain/forecast"
	"github.com/yanqian/city-weather/internal/domain/geocode"
	apperrors "github.com/yanqian/city-weather/pkg/errors"
)

// ForecastClient fetches hourly temperatures from the Open-Meteo forecast API.
type ForecastClient struct {
	baseURL      string
	timezone     string
	forecastDays int
	transport    *transport
}

// NewForecastClient builds a forecast client.
func NewForecastClient(cfg Config) *ForecastClient {
	return &ForecastClient{
		baseURL:      baseURL(cfg.ForecastURL, DefaultForecastURL),
		timezone:     cfg.Timezone,
		forecastDays: cfg.ForecastDays,
		transport:    newTransport("openmeteo-forecast", cfg),
	}
}

type forecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Hourly    *forecastHourly `json:"hourly"`
}

type forecastHourly struct {
	Time          *[]string  `json:"time"`
	Temperature2m *[]float64 `json:"temperature_2m"`
}

func (r forecastResponse) validate() error {
	switch {
	case r.Hourly == nil:
		return errors.New("response is missing hourly")
	case r.Hourly.Time == nil:
		return errors.New("response is missing hourly.time")
	case r.Hourly.Temperature2m == nil:
		return errors.New("response is missing hourly.temperature_2m")
	}
	return nil
}

// Fetch returns the hourly temperature series for coord.
func (c *ForecastClient) Fetch(ctx context.Context, coord geocode.Coordinate) (forecast.Series, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("hourly", "temperature_2m")
	if c.timezone != "" {
		params.Set("timezone", c.timezone)
	}
	if c.forecastDays > 0 {
		params.Set("forecast_days", strconv.Itoa(c.forecastDays))
	}

	var payload forecastResponse
	if err := c.transport.getJSON(ctx, c.baseURL+"?"+params.Encode(), &payload); err != nil {
		return forecast.Series{}, apperrors.Wrap(apperrors.CodeUpstream, "forecast request failed", err)
	}
	if err := payload.validate(); err != nil {
		return forecast.Series{}, apperrors.Wrap(apperrors.CodeUpstream, "forecast request failed", err)
	}

	return forecast.Series{
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		Timezone:     payload.Timezone,
		Times:        *payload.Hourly.Time,
		Temperatures: *payload.Hourly.Temperature2m,
	}, nil
}
