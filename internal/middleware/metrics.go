package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-api/internal/metrics"
)

// Metrics records one observation per request, labelled by route pattern so
// ids in paths do not explode label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
