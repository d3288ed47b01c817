package ports

import (
	"time"

	"gorandtest/domain/randomness"
)

// MetricsRecorder receives battery and per-test outcomes
type MetricsRecorder interface {
	RecordBattery(samples int, duration time.Duration)
	RecordTest(name randomness.TestName, outcome string, duration time.Duration)
}

// NopMetrics discards every observation
type NopMetrics struct{}

func (NopMetrics) RecordBattery(int, time.Duration)                      {}
func (NopMetrics) RecordTest(randomness.TestName, string, time.Duration) {}
