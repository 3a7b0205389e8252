package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Slow enough to matter on a chat round trip, which already carries an
// artificial think delay of up to 800ms.
const slowRequestThreshold = 500 * time.Millisecond

// PerformanceLogger times every request against the matched route
// template so parameterized paths aggregate under one name.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path // unmatched, e.g. 404s
		}

		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			route,
			c.Writer.Status(),
			latency)

		if latency > slowRequestThreshold {
			log.Printf("🐌 SLOW REQUEST: %s %s from %s took %v",
				c.Request.Method, route, c.ClientIP(), latency)
		}
	}
}
