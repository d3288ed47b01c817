// Package metrics registers and records Prometheus metrics for battery runs,
// individual test outcomes and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"gorandtest/domain/randomness"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BatteriesRun    prometheus.Counter
	BatterySamples  prometheus.Histogram
	BatteryDuration prometheus.Histogram
	TestOutcomes    *prometheus.CounterVec
	TestDuration    *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec

	metricsMu         sync.RWMutex
	currentRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
	currentGatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
)

func init() {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	initializeMetrics(prometheus.DefaultRegisterer)
}

// SetRegistry moves every collector to registry and returns the previous
// registerer. Tests use it to get an isolated registry.
func SetRegistry(registry *prometheus.Registry) prometheus.Registerer {
	return setRegisterer(registry, registry)
}

// ResetDefault moves the collectors back to the default registry
func ResetDefault() {
	setRegisterer(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func setRegisterer(registerer prometheus.Registerer, gatherer prometheus.Gatherer) prometheus.Registerer {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	previous := currentRegisterer
	if currentRegisterer != nil {
		unregisterAll(currentRegisterer)
	}

	currentRegisterer = registerer
	currentGatherer = gatherer
	initializeMetrics(registerer)
	return previous
}

// initializeMetrics creates all metrics using the provided registerer.
// This function must be called while holding metricsMu.
func initializeMetrics(registerer prometheus.Registerer) {
	factory := promauto.With(registerer)

	BatteriesRun = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "randtest_batteries_total",
			Help: "Total number of battery runs",
		},
	)

	BatterySamples = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "randtest_battery_samples",
			Help:    "Distribution of sample sequence lengths per battery run",
			Buckets: prometheus.ExponentialBuckets(10, 4, 10),
		},
	)

	BatteryDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "randtest_battery_duration_seconds",
			Help:    "Wall-clock duration of a battery run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	TestOutcomes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randtest_test_outcomes_total",
			Help: "Test executions by test and outcome (accepted, rejected, error)",
		},
		[]string{"test", "outcome"},
	)

	TestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "randtest_test_duration_seconds",
			Help:    "Duration of a single test execution",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"test"},
	)

	HTTPRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "randtest_http_requests_total",
			Help: "HTTP API requests by route and status code",
		},
		[]string{"route", "code"},
	)

	HTTPLatency = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "randtest_http_request_duration_seconds",
			Help:    "HTTP API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
}

func unregisterAll(registerer prometheus.Registerer) {
	for _, c := range []prometheus.Collector{
		BatteriesRun, BatterySamples, BatteryDuration,
		TestOutcomes, TestDuration, HTTPRequests, HTTPLatency,
	} {
		if c != nil {
			registerer.Unregister(c)
		}
	}
}

// RecordBattery records one completed battery run
func RecordBattery(samples int, duration time.Duration) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	BatteriesRun.Inc()
	BatterySamples.Observe(float64(samples))
	BatteryDuration.Observe(duration.Seconds())
}

// RecordTest records the outcome of one test execution
func RecordTest(name randomness.TestName, outcome string, duration time.Duration) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	TestOutcomes.WithLabelValues(string(name), outcome).Inc()
	TestDuration.WithLabelValues(string(name)).Observe(duration.Seconds())
}

// RecordHTTPRequest records one API request
func RecordHTTPRequest(route string, code int, duration time.Duration) {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	HTTPLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler serves the current registry in the Prometheus exposition format
func Handler() http.Handler {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return promhttp.HandlerFor(currentGatherer, promhttp.HandlerOpts{})
}

// Recorder adapts the package-level functions to a MetricsRecorder
type Recorder struct{}

// RecordBattery records one completed battery run
func (Recorder) RecordBattery(samples int, duration time.Duration) {
	RecordBattery(samples, duration)
}

// RecordTest records the outcome of one test execution
func (Recorder) RecordTest(name randomness.TestName, outcome string, duration time.Duration) {
	RecordTest(name, outcome, duration)
}
