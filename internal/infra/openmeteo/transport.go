package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// DefaultGeocodingURL is the Open-Meteo city search endpoint.
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	// DefaultForecastURL is the Open-Meteo forecast endpoint.
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	defaultTimeout = 10 * time.Second
)

// Config controls both Open-Meteo clients.
type Config struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	Timezone     string
	ForecastDays int
	Breaker      BreakerConfig
}

// BreakerConfig configures the per-upstream circuit breaker. An open breaker fails calls
// immediately instead of waiting on a struggling upstream; it never retries.
type BreakerConfig struct {
	Enabled     bool
	MaxFailures uint32
	OpenTimeout time.Duration
}

type transport struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func newTransport(name string, cfg Config) *transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	t := &transport{httpClient: &http.Client{Timeout: timeout}}
	if cfg.Breaker.Enabled {
		maxFailures := cfg.Breaker.MaxFailures
		if maxFailures == 0 {
			maxFailures = 5
		}
		t.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     cfg.Breaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			IsSuccessful: countsAsSuccess,
		})
	}
	return t
}

// countsAsSuccess keeps caller cancellations from tripping the breaker; only the upstream's
// own failures count against it.
func countsAsSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (t *transport) getJSON(ctx context.Context, endpoint string, out any) error {
	if t.breaker == nil {
		return t.fetch(ctx, endpoint, out)
	}
	_, err := t.breaker.Execute(func() (interface{}, error) {
		return nil, t.fetch(ctx, endpoint, out)
	})
	return err
}

func (t *transport) fetch(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("unexpected status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func baseURL(configured, fallback string) string {
	url := strings.TrimSpace(configured)
	if url == "" {
		url = fallback
	}
	return strings.TrimRight(url, "/")
}
