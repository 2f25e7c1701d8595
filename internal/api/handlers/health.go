package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

const version = "1.0.0"

// TableCounter reports how many tables are live.
type TableCounter interface {
	Count() int
}

// HealthCheck returns server health status
func HealthCheck(tables TableCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "cuesim-api",
			"version": version,
			"uptime":  time.Since(startTime).String(),
			"tables":  tables.Count(),
		})
	}
}
