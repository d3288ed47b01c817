package randomness

import (
	"context"

	"gorandtest/adapters/stats/gof"
	"gorandtest/domain/randomness"

	"gonum.org/v1/gonum/stat"
)

// UniformityTest checks that samples fall evenly into equal-width intervals
// of [0,1) using a chi-square goodness-of-fit statistic
type UniformityTest struct {
	samples   []float64
	intervals int
	alpha     float64
	tracer    randomness.Tracer
}

// NewUniformityTest creates a chi-square uniformity test
func NewUniformityTest(samples []float64, intervals int, alpha float64, opts ...Option) *UniformityTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestUniformityChiSquare, len(samples), alpha)
	return &UniformityTest{samples: samples, intervals: intervals, alpha: alpha, tracer: s.tracer}
}

// Name returns the test identifier
func (t *UniformityTest) Name() randomness.TestName {
	return randomness.TestUniformityChiSquare
}

// Description returns a human-readable description
func (t *UniformityTest) Description() string {
	return "Chi-square goodness of fit of interval counts against a uniform distribution on [0,1)"
}

// Run executes the test behind the generic interface
func (t *UniformityTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Execute buckets the samples, compares each bucket with n/m and decides
// against the chi-square distribution with m-1 degrees of freedom
func (t *UniformityTest) Execute(ctx context.Context) (*randomness.UniformityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := randomness.ValidateAlpha(t.alpha); err != nil {
		return nil, err
	}
	if t.intervals < 2 {
		return nil, randomness.NewParameterError("intervals", t.intervals)
	}
	n := len(t.samples)
	if n < 1 {
		return nil, randomness.NewSampleSizeError(t.Name(), n, 1)
	}

	bounds := IntervalBounds(t.intervals)
	counts, excluded := Histogram(t.samples, bounds)

	expected := float64(n) / float64(t.intervals)
	observed := toFloats(counts)
	expectedAll := make([]float64, t.intervals)
	contributions := make([]float64, t.intervals)
	for i := range expectedAll {
		expectedAll[i] = expected
		d := observed[i] - expected
		contributions[i] = d * d / expected
	}
	t.tracer.OnFrequencies(t.Name(), observed, expectedAll)

	statistic := stat.ChiSquare(observed, expectedAll)
	decision, err := gof.DecideChiSquareTabulated(statistic, t.intervals-1, t.alpha)
	if err != nil {
		return nil, err
	}

	result := &randomness.UniformityResult{
		Base: verdict(t.Name(), t.alpha, n, decision.Statistic, decision.CriticalValue,
			decision.PValue, decision.DegreesOfFreedom, decision.Reject),
		Bounds:        bounds,
		Observed:      counts,
		Expected:      expected,
		Contributions: contributions,
		Excluded:      excluded,
		Tabulated:     decision.Tabulated,
	}
	t.tracer.OnDecision(t.Name(), result.Base)
	return result, nil
}
