package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/city-weather/internal/domain/weather"
)

// Handler wires the HTTP transport to the weather domain.
type Handler struct {
	weatherSvc weather.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

type weatherQuery struct {
	City string `form:"city"`
}

// Weather serves the hourly forecast for the requested city.
func (h *Handler) Weather(c *gin.Context) {
	var query weatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(query.City) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "city query parameter is required", nil))
		return
	}

	report, err := h.weatherSvc.Forecast(c.Request.Context(), query.City)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// Stats lists the most recently resolved cities. It sits behind authMiddleware.
func (h *Handler) Stats(c *gin.Context) {
	cities, err := h.weatherSvc.RecentCities(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	principal, _ := getPrincipal(c)
	h.logger.Debug("stats served", "principal", principal, "cities", len(cities))
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
