package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/city-weather/internal/domain/access"
)

// authMiddleware enforces the static Basic credential. Rejections are written here in
// their mandated plain-text shape rather than through errorHandlingMiddleware.
func authMiddleware(gate *access.Gate, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := gate.Authorize(c.Request.Header)
		if !decision.Authorized {
			logger.Warn("access denied", "path", c.Request.URL.Path, "ip", c.ClientIP(), "request_id", getRequestID(c))
			c.Header("WWW-Authenticate", decision.Challenge)
			c.String(decision.Status, decision.Body)
			c.Abort()
			return
		}
		setPrincipal(c, decision.Principal)
		c.Next()
	}
}
