package monitoring

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	activeHTTPRequests atomic.Int64
	totalHTTPRequests  atomic.Uint64

	// Indexed by status/100; anything outside 1xx-5xx lands in slot 0.
	statusClassCounts [6]atomic.Uint64
)

// RequestMetricsMiddleware tracks basic HTTP request counters.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		activeHTTPRequests.Add(1)
		totalHTTPRequests.Add(1)
		defer activeHTTPRequests.Add(-1)
		c.Next()

		class := c.Writer.Status() / 100
		if class < 1 || class > 5 {
			class = 0
		}
		statusClassCounts[class].Add(1)
	}
}

func getHTTPStats() (active int64, total uint64) {
	return activeHTTPRequests.Load(), totalHTTPRequests.Load()
}

func getStatusClassCounts() (ok2xx, client4xx, server5xx uint64) {
	return statusClassCounts[2].Load(), statusClassCounts[4].Load(), statusClassCounts[5].Load()
}
