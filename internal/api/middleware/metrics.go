package middleware

import (
	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		done := metrics.RequestStarted(c.Request.Method, route)
		c.Next()
		done(c.Writer.Status())
	}
}
