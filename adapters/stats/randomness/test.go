// Package randomness implements the six independence and uniformity tests
// and the battery that runs a selection of them over one sample sequence.
package randomness

import (
	"context"

	"gorandtest/domain/randomness"
)

// DefaultAlpha is the significance level used when none is given
const DefaultAlpha = 0.05

// DefaultIntervals is the interval count of the two bucket-based tests
const DefaultIntervals = 10

// Threshold splits samples into above/below categories in the threshold tests
const Threshold = 0.5

// Test is the contract every randomness test satisfies
type Test interface {
	Name() randomness.TestName
	Description() string
	Run(ctx context.Context) (randomness.Result, error)
}

// Option customises a test at construction
type Option func(*settings)

type settings struct {
	tracer randomness.Tracer
}

// WithTracer routes construction, frequency and decision events to tracer
func WithTracer(tracer randomness.Tracer) Option {
	return func(s *settings) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func applyOptions(opts []Option) settings {
	s := settings{tracer: randomness.NopTracer{}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// verdict assembles the common result base
func verdict(name randomness.TestName, alpha float64, n int, statistic, critical, p float64, df int, reject bool) randomness.Verdict {
	return randomness.Verdict{
		TestName:         name,
		Alpha:            alpha,
		SampleSize:       n,
		Statistic:        statistic,
		DegreesOfFreedom: df,
		CriticalValue:    critical,
		PValue:           p,
		RejectNull:       reject,
	}
}

func toFloats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}
