package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/observability"
)

// Metrics creates a middleware that records request counts and durations.
// The path label uses the matched route pattern, not the raw URL, so
// parameterized routes collapse into a single series.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// No route matched (404); group them under one label
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
