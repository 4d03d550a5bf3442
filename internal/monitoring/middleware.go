package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Instrument returns a gin middleware recording request counts and latency.
//
// The route template (c.FullPath) is used as the path label so metric
// cardinality stays bounded regardless of parameter values.
func Instrument(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
