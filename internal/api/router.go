package api

import (
	"time"

	"gorandtest/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RouterConfig selects the optional routes
type RouterConfig struct {
	Metrics bool
}

// NewRouter wires the battery routes, the event stream and, when enabled,
// the metrics endpoint onto a gin engine
func NewRouter(handler *BatteryHandler, hub *SSEHub, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Metrics {
		router.Use(metricsMiddleware())
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.Health)
		v1.GET("/tests", handler.ListTests)
		v1.POST("/battery", handler.RunBattery)
		if hub != nil {
			v1.GET("/events", hub.HandleSSE)
		}
	}

	if cfg.Metrics {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	return router
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(route, c.Writer.Status(), time.Since(started))
	}
}
