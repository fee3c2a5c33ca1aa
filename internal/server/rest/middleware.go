package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/authorizer/internal/common"
	"github.com/dmitrijs2005/authorizer/internal/logging"
)

const requestIDKey = "request_id"

// RequestIDMiddleware attaches a correlation id to every request. An id
// supplied by the gateway is reused; otherwise a new one is generated.
// The id is echoed back in the response headers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

// AccessLogMiddleware logs one line per request. Credentials never
// appear here: only method, path, status, duration and the correlation
// id.
func AccessLogMiddleware(l logging.Logger) gin.HandlerFunc {
	log := l.With("module", "rest")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c, "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"request_id", c.GetString(requestIDKey),
		)
	}
}
