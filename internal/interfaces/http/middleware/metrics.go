package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
)

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// HTTPMetrics records request count and latency per route template.
// A nil recorder yields a pass-through middleware.
func HTTPMetrics(m *telemetry.HTTPMetrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.RecordRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
