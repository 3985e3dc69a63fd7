package middleware

import (
	"strconv"
	"time"

	"alertdesk-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Prometheus records request count and latency per route pattern.
func Prometheus() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			ctx.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
