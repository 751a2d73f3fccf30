package http

import (
	"github.com/gin-gonic/gin"
)

const (
	principalKey = "auth_principal"
	requestIDKey = "request_id"
)

func setPrincipal(c *gin.Context, principal string) {
	c.Set(principalKey, principal)
}

func getPrincipal(c *gin.Context) (string, bool) {
	return stringValue(c, principalKey)
}

func setRequestID(c *gin.Context, id string) {
	c.Set(requestIDKey, id)
}

func getRequestID(c *gin.Context) string {
	id, _ := stringValue(c, requestIDKey)
	return id
}

func stringValue(c *gin.Context, key string) (string, bool) {
	value, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
