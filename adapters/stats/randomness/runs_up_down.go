package randomness

import (
	"context"
	"math"

	"gorandtest/adapters/stats/gof"
	"gorandtest/adapters/stats/sequence"
	"gorandtest/domain/randomness"
)

// RunsUpDownTest counts ascending and descending runs. A tie continues the
// previous direction instead of being dropped.
type RunsUpDownTest struct {
	samples []float64
	signs   []randomness.Sign
	alpha   float64
	tracer  randomness.Tracer
}

// NewRunsUpDownTest creates the up/down run-count test
func NewRunsUpDownTest(samples []float64, alpha float64, opts ...Option) *RunsUpDownTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestRunsUpDown, len(samples), alpha)
	return &RunsUpDownTest{
		samples: samples,
		signs:   sequence.FromConsecutiveDirections(samples),
		alpha:   alpha,
		tracer:  s.tracer,
	}
}

// Name returns the test identifier
func (t *RunsUpDownTest) Name() randomness.TestName {
	return randomness.TestRunsUpDown
}

// Description returns a human-readable description
func (t *RunsUpDownTest) Description() string {
	return "Number of ascending and descending runs against (2n-1)/3"
}

// Run executes the test behind the generic interface
func (t *RunsUpDownTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Execute computes Z = |A - mu| / sigma and rejects when it exceeds the
// two-tailed normal critical value
func (t *RunsUpDownTest) Execute(ctx context.Context) (*randomness.RunsUpDownResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := randomness.ValidateAlpha(t.alpha); err != nil {
		return nil, err
	}
	n := len(t.samples)
	if n < 2 {
		return nil, randomness.NewSampleSizeError(t.Name(), n, 2)
	}

	lengths := sequence.RunLengths(t.signs)
	runs := len(lengths)

	mean := (2*float64(n) - 1) / 3
	variance := (16*float64(n) - 29) / 90
	stdDev := math.Sqrt(variance)
	z := math.Abs(float64(runs)-mean) / stdDev
	t.tracer.OnFrequencies(t.Name(), []float64{float64(runs)}, []float64{mean})

	decision, err := gof.DecideNormal(z, t.alpha)
	if err != nil {
		return nil, err
	}

	sum := 0
	for _, l := range lengths {
		sum += l
	}

	result := &randomness.RunsUpDownResult{
		Base: verdict(t.Name(), t.alpha, n, decision.Statistic, decision.CriticalValue,
			decision.PValue, 0, decision.Reject),
		Runs:          runs,
		Mean:          mean,
		Variance:      variance,
		StdDev:        stdDev,
		MaxRunLength:  sequence.MaxLength(lengths),
		LengthCounts:  sequence.LengthHistogram(lengths),
		RunLengthsSum: sum,
	}
	t.tracer.OnDecision(t.Name(), result.Base)
	return result, nil
}
