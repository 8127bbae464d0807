package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gas-inventory-service/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with a UUID, honoring one
// supplied by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func RequestLoggingMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		logger.Infof("Request: %s %s, Status: %d, Latency: %v, RequestID: %s",
			method, path, status, latency, c.GetString("request_id"))
	}
}
