package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/city-weather/internal/infra/config"
)

const defaultShutdownGrace = 10 * time.Second

// App serves the weather API. The city store and its cleanup are owned by the injector in
// cmd/app, which closes them after Run returns so in-flight lookups can still persist.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp takes the router-built server; cfg is only read for startup logging.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run serves HTTP until ctx is cancelled or the listener fails, then drains in-flight
// requests for up to http.shutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting",
			"address", a.cfg.HTTP.Address,
			"store_driver", a.cfg.Store.Driver,
			"breaker_enabled", a.cfg.Upstream.Breaker.Enabled,
		)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		grace := a.cfg.HTTP.ShutdownTimeout
		if grace <= 0 {
			grace = defaultShutdownGrace
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		a.logger.Info("shutdown signal received", "grace", grace)
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		a.logger.Info("http server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		a.logger.Error("http server failed", "address", a.cfg.HTTP.Address, "error", err)
		return err
	}
}
