package randomness

import (
	"gorandtest/domain/randomness"
	"gorandtest/internal"
)

// LogTracer writes test lifecycle events to a leveled logger
type LogTracer struct {
	logger *internal.Logger
}

// NewLogTracer creates a tracer over logger, or the default logger when nil
func NewLogTracer(logger *internal.Logger) *LogTracer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &LogTracer{logger: logger}
}

// OnConstruct logs test construction
func (t *LogTracer) OnConstruct(test randomness.TestName, sampleSize int, alpha float64) {
	t.logger.Debug("[%s] constructed with n=%d alpha=%.4f", test, sampleSize, alpha)
}

// OnFrequencies logs the observed and expected columns
func (t *LogTracer) OnFrequencies(test randomness.TestName, observed, expected []float64) {
	t.logger.Trace("[%s] observed=%v expected=%v", test, observed, expected)
}

// OnDecision logs the final verdict
func (t *LogTracer) OnDecision(test randomness.TestName, v randomness.Verdict) {
	t.logger.Debug("[%s] statistic=%.6f critical=%.6f p=%.6f reject=%v",
		test, v.Statistic, v.CriticalValue, v.PValue, v.RejectNull)
}
