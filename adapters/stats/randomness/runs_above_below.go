package randomness

import (
	"context"
	"math"

	"gorandtest/adapters/stats/gof"
	"gorandtest/adapters/stats/sequence"
	"gorandtest/domain/randomness"
)

// RunsAboveBelowTest counts runs of samples on the same side of 0.5 and
// compares the count with its normal approximation
type RunsAboveBelowTest struct {
	samples []float64
	signs   []randomness.Sign
	alpha   float64
	tracer  randomness.Tracer
}

// NewRunsAboveBelowTest creates the run-count test; samples equal to the
// threshold are classified above
func NewRunsAboveBelowTest(samples []float64, alpha float64, opts ...Option) *RunsAboveBelowTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestRunsAboveBelow, len(samples), alpha)
	return &RunsAboveBelowTest{
		samples: samples,
		signs:   sequence.FromThreshold(samples, Threshold, sequence.TieGoesUp),
		alpha:   alpha,
		tracer:  s.tracer,
	}
}

// Name returns the test identifier
func (t *RunsAboveBelowTest) Name() randomness.TestName {
	return randomness.TestRunsAboveBelow
}

// Description returns a human-readable description
func (t *RunsAboveBelowTest) Description() string {
	return "Number of runs above and below 0.5 against its expected count"
}

// Run executes the test behind the generic interface
func (t *RunsAboveBelowTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Execute computes Z = (R - E(R)) / sqrt(Var(R)) and decides two-tailed
func (t *RunsAboveBelowTest) Execute(ctx context.Context) (*randomness.RunsAboveBelowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := randomness.ValidateAlpha(t.alpha); err != nil {
		return nil, err
	}
	n := len(t.samples)
	if n < 1 {
		return nil, randomness.NewSampleSizeError(t.Name(), n, 1)
	}
	n1, n2, err := sequence.RequireBothSigns(t.Name(), t.signs)
	if err != nil {
		return nil, err
	}

	runs := sequence.CountRuns(t.signs)
	mean, variance := runsMoments(float64(n1), float64(n2))

	z := 0.0
	if variance > 0 {
		z = (float64(runs) - mean) / math.Sqrt(variance)
	}
	t.tracer.OnFrequencies(t.Name(), []float64{float64(runs)}, []float64{mean})

	decision, err := gof.DecideNormal(z, t.alpha)
	if err != nil {
		return nil, err
	}

	result := &randomness.RunsAboveBelowResult{
		Base: verdict(t.Name(), t.alpha, n, decision.Statistic, decision.CriticalValue,
			decision.PValue, 0, decision.Reject),
		Threshold:    Threshold,
		Above:        n1,
		Below:        n2,
		Runs:         runs,
		ExpectedRuns: mean,
		Variance:     variance,
	}
	t.tracer.OnDecision(t.Name(), result.Base)
	return result, nil
}

// runsMoments returns E(R) and Var(R) for n1 and n2 observations per category
func runsMoments(n1, n2 float64) (mean, variance float64) {
	total := n1 + n2
	mean = 2*n1*n2/total + 1
	if total <= 1 {
		return mean, 0
	}
	variance = 2 * n1 * n2 * (2*n1*n2 - n1 - n2) / (total * total * (total - 1))
	return mean, variance
}
