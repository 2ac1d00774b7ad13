package middleware

import (
	"log"
	"strconv"
	"time"

	"windfarm-analytics/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request and records request metrics under the
// matched route pattern.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.ObserveHTTP(route, strconv.Itoa(status), elapsed)
		log.Printf("API: %s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), status, elapsed.Round(time.Microsecond))
	}
}
