package randomness

import (
	"context"
	"math"

	"gorandtest/adapters/stats/sequence"
	"gorandtest/domain/randomness"
)

// RunLengthUpDownTest compares the distribution of ascending/descending run
// lengths with its exact expected frequencies. Ties between neighbours are
// dropped from the sign sequence.
type RunLengthUpDownTest struct {
	samples []float64
	signs   []randomness.Sign
	alpha   float64
	tracer  randomness.Tracer
}

// NewRunLengthUpDownTest creates the up/down run-length distribution test
func NewRunLengthUpDownTest(samples []float64, alpha float64, opts ...Option) *RunLengthUpDownTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestRunLengthUpDown, len(samples), alpha)
	return &RunLengthUpDownTest{
		samples: samples,
		signs:   sequence.FromConsecutiveComparisons(samples),
		alpha:   alpha,
		tracer:  s.tracer,
	}
}

// Name returns the test identifier
func (t *RunLengthUpDownTest) Name() randomness.TestName {
	return randomness.TestRunLengthUpDown
}

// Description returns a human-readable description
func (t *RunLengthUpDownTest) Description() string {
	return "Chi-square of ascending/descending run lengths against their exact expectation"
}

// Run executes the test behind the generic interface
func (t *RunLengthUpDownTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Frequencies returns the observed/expected table for lengths 1..max and the
// lengths whose expected value overflowed and was set to zero
func (t *RunLengthUpDownTest) Frequencies() ([]randomness.Category, []int) {
	n := len(t.samples)
	var overflowed []int
	table := sequence.FrequencyTable(sequence.RunLengths(t.signs), func(i int) float64 {
		e, err := ExpectedUpDownRunLength(n, i)
		if err != nil {
			overflowed = append(overflowed, i)
			return 0
		}
		return e
	})
	return table, overflowed
}

// Execute groups the run-length table and decides with chi-square
func (t *RunLengthUpDownTest) Execute(ctx context.Context) (*randomness.RunLengthResult, error) {
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
	if len(t.signs) == 0 {
		return nil, randomness.NewDegenerateError(t.Name(), "all samples are equal")
	}

	table, overflowed := t.Frequencies()
	result, err := decideRunLengths(t.Name(), t.alpha, n, len(t.signs), table, t.tracer)
	if result != nil {
		result.Overflowed = overflowed
	}
	return result, err
}

// ExpectedUpDownRunLength returns E(L_i) = 2/(i+3)! * [N(i^2+3i+1) - (i^3+3i^2-i-4)]
// for n total samples. It fails with ErrNumericOverflow when (i+3)! is not
// representable.
func ExpectedUpDownRunLength(n, i int) (float64, error) {
	fact := math.Gamma(float64(i + 4))
	if math.IsInf(fact, 0) || math.IsNaN(fact) {
		return 0, randomness.NewOverflowError(randomness.TestRunLengthUpDown, i)
	}
	fi := float64(i)
	N := float64(n)
	return 2 / fact * (N*(fi*fi+3*fi+1) - (fi*fi*fi + 3*fi*fi - fi - 4)), nil
}
