package weather

import "github.com/yanqian/city-weather/internal/domain/forecast"

// Report is the forecast for a single city, ready for rendering.
type Report struct {
	City      string            `json:"city"`
	Forecasts []forecast.Sample `json:"forecasts"`
}

// Config wires runtime knobs for the weather domain.
type Config struct {
	RecentLimit int
}
