package container

import (
	"context"
	"fmt"
	"log"

	statsrand "gorandtest/adapters/stats/randomness"
	"gorandtest/app"
	"gorandtest/domain/randomness"
	"gorandtest/internal"
	"gorandtest/internal/api"
	"gorandtest/internal/config"
	"gorandtest/internal/metrics"
	"gorandtest/ports"

	"github.com/gin-gonic/gin"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Observability
	Metrics ports.MetricsRecorder
	Tracer  *statsrand.LogTracer

	// Battery execution
	BatteryService *app.BatteryService
	SSEHub         *api.SSEHub

	// HTTP
	Router *gin.Engine
}

// New wires the battery service, event hub and router from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: internal.NewLogger(internal.ParseLevel(cfg.LogLevel)),
	}

	c.initObservability()
	c.initBattery()
	c.initHTTP()

	tests := len(cfg.Battery.Tests)
	if tests == 0 {
		tests = len(randomness.AllTests)
	}
	log.Printf("Container initialized: alpha=%.4f intervals=%d tests=%d metrics=%v",
		cfg.Battery.Alpha, cfg.Battery.Intervals, tests, cfg.Metrics.Enabled)
	return c, nil
}

func (c *Container) initObservability() {
	c.Metrics = ports.NopMetrics{}
	if c.Config.Metrics.Enabled {
		c.Metrics = metrics.Recorder{}
	}
	c.Tracer = statsrand.NewLogTracer(c.Logger)
}

func (c *Container) initBattery() {
	c.BatteryService = app.NewBatteryService(app.ServiceConfig{
		Alpha:         c.Config.Battery.Alpha,
		Intervals:     c.Config.Battery.Intervals,
		Tests:         c.Config.Battery.Tests,
		MaxConcurrent: int64(c.Config.Battery.MaxConcurrent),
		MaxSamples:    c.Config.Input.MaxSamples,
	}, c.Metrics, c.Tracer)

	c.SSEHub = api.NewSSEHub()
	c.BatteryService.WithEvents(c.SSEHub)
}

func (c *Container) initHTTP() {
	gin.SetMode(c.Config.Server.GinMode)
	c.Router = api.NewRouter(api.NewBatteryHandler(c.BatteryService), c.SSEHub, api.RouterConfig{
		Metrics: c.Config.Metrics.Enabled,
	})
}

// Shutdown releases background resources
func (c *Container) Shutdown(_ context.Context) error {
	if c.SSEHub != nil {
		c.SSEHub.Close()
	}
	return nil
}
