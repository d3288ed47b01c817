package randomness

import (
	"context"
	"math"

	"gorandtest/adapters/stats/sequence"
	"gorandtest/domain/randomness"
)

// RunLengthAboveBelowTest compares the distribution of run lengths on each
// side of 0.5 with geometric expected frequencies
type RunLengthAboveBelowTest struct {
	samples []float64
	signs   []randomness.Sign
	alpha   float64
	tracer  randomness.Tracer
}

// NewRunLengthAboveBelowTest creates the threshold run-length test; only
// samples strictly greater than the threshold are classified above
func NewRunLengthAboveBelowTest(samples []float64, alpha float64, opts ...Option) *RunLengthAboveBelowTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestRunLengthAboveBelow, len(samples), alpha)
	return &RunLengthAboveBelowTest{
		samples: samples,
		signs:   sequence.FromThreshold(samples, Threshold, sequence.TieGoesDown),
		alpha:   alpha,
		tracer:  s.tracer,
	}
}

// Name returns the test identifier
func (t *RunLengthAboveBelowTest) Name() randomness.TestName {
	return randomness.TestRunLengthAboveBelow
}

// Description returns a human-readable description
func (t *RunLengthAboveBelowTest) Description() string {
	return "Chi-square of above/below 0.5 run lengths against geometric expectation"
}

// Run executes the test behind the generic interface
func (t *RunLengthAboveBelowTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Frequencies returns the observed/expected table for lengths 1..max
func (t *RunLengthAboveBelowTest) Frequencies() []randomness.Category {
	n1, n2 := sequence.CountSigns(t.signs)
	return sequence.FrequencyTable(sequence.RunLengths(t.signs), func(i int) float64 {
		return ExpectedAboveBelowRunLength(n1, n2, i)
	})
}

// Execute groups the run-length table and decides with chi-square
func (t *RunLengthAboveBelowTest) Execute(ctx context.Context) (*randomness.RunLengthResult, error) {
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
	n1, n2 := sequence.CountSigns(t.signs)
	if n2 == 0 {
		return nil, randomness.NewDegenerateError(t.Name(), "no samples at or below the threshold")
	}

	result, err := decideRunLengths(t.Name(), t.alpha, n, len(t.signs), t.Frequencies(), t.tracer)
	if result != nil {
		result.Above, result.Below = n1, n2
	}
	return result, err
}

// ExpectedAboveBelowRunLength returns E(L_i) = 2N (n1/N)^i (n2/N)^2 with N = n1+n2
func ExpectedAboveBelowRunLength(n1, n2, i int) float64 {
	N := float64(n1 + n2)
	if N == 0 {
		return 0
	}
	p1 := float64(n1) / N
	p2 := float64(n2) / N
	return 2 * N * math.Pow(p1, float64(i)) * p2 * p2
}
