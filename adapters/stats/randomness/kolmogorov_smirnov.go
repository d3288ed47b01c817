package randomness

import (
	"context"
	"math"

	"gorandtest/adapters/stats/gof"
	"gorandtest/domain/randomness"

	"github.com/montanaflynn/stats"
)

// KolmogorovSmirnovTest compares the interval-bucketed empirical CDF with the
// uniform CDF on [0,1)
type KolmogorovSmirnovTest struct {
	samples   []float64
	intervals int
	alpha     float64
	tracer    randomness.Tracer
}

// NewKolmogorovSmirnovTest creates a KS uniformity test
func NewKolmogorovSmirnovTest(samples []float64, intervals int, alpha float64, opts ...Option) *KolmogorovSmirnovTest {
	s := applyOptions(opts)
	s.tracer.OnConstruct(randomness.TestKolmogorovSmirnov, len(samples), alpha)
	return &KolmogorovSmirnovTest{samples: samples, intervals: intervals, alpha: alpha, tracer: s.tracer}
}

// Name returns the test identifier
func (t *KolmogorovSmirnovTest) Name() randomness.TestName {
	return randomness.TestKolmogorovSmirnov
}

// Description returns a human-readable description
func (t *KolmogorovSmirnovTest) Description() string {
	return "Maximum gap between the empirical and uniform CDF at interval boundaries"
}

// Run executes the test behind the generic interface
func (t *KolmogorovSmirnovTest) Run(ctx context.Context) (randomness.Result, error) {
	res, err := t.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Execute computes D over interval boundaries and rejects when it exceeds
// K_alpha/sqrt(n). The p-value comes from the exact one-sample statistic over
// the min-max normalised samples and does not drive the decision.
func (t *KolmogorovSmirnovTest) Execute(ctx context.Context) (*randomness.KolmogorovSmirnovResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := randomness.ValidateAlpha(t.alpha); err != nil {
		return nil, err
	}
	if t.intervals < 1 {
		return nil, randomness.NewParameterError("intervals", t.intervals)
	}
	n := len(t.samples)
	if n < 1 {
		return nil, randomness.NewSampleSizeError(t.Name(), n, 1)
	}

	bounds := IntervalBounds(t.intervals)
	counts, _ := Histogram(t.samples, bounds)

	// Cumulative observed fraction vs upper interval bound
	cumObserved := make([]float64, t.intervals)
	cumTheoretical := make([]float64, t.intervals)
	differences := make([]float64, t.intervals)
	running := 0
	maxDiff, maxIdx := 0.0, 0
	for i, c := range counts {
		running += c
		cumObserved[i] = float64(running) / float64(n)
		cumTheoretical[i] = bounds[i+1]
		differences[i] = math.Abs(cumObserved[i] - cumTheoretical[i])
		if differences[i] > maxDiff {
			maxDiff, maxIdx = differences[i], i
		}
	}
	t.tracer.OnFrequencies(t.Name(), cumObserved, cumTheoretical)

	k := gof.KolmogorovK(t.alpha)
	critical := k / math.Sqrt(float64(n))

	sampleD, err := t.normalisedStatistic()
	if err != nil {
		return nil, err
	}

	result := &randomness.KolmogorovSmirnovResult{
		Base: verdict(t.Name(), t.alpha, n, maxDiff, critical,
			gof.KolmogorovPValue(n, sampleD), 0, maxDiff > critical),
		Bounds:                bounds,
		Observed:              counts,
		CumulativeObserved:    cumObserved,
		CumulativeTheoretical: cumTheoretical,
		Differences:           differences,
		MaxDifferenceIndex:    maxIdx,
		KAlpha:                k,
		SampleStatistic:       sampleD,
	}
	t.tracer.OnDecision(t.Name(), result.Base)
	return result, nil
}

// normalisedStatistic rescales the samples onto [0,1] and returns the
// one-sample KS statistic against the uniform CDF. Constant input maps to 0.
func (t *KolmogorovSmirnovTest) normalisedStatistic() (float64, error) {
	lo, err := stats.Min(t.samples)
	if err != nil {
		return 0, randomness.NewSampleSizeError(t.Name(), 0, 1)
	}
	hi, err := stats.Max(t.samples)
	if err != nil {
		return 0, randomness.NewSampleSizeError(t.Name(), 0, 1)
	}

	normalised := make([]float64, len(t.samples))
	if span := hi - lo; span > 0 {
		for i, x := range t.samples {
			normalised[i] = (x - lo) / span
		}
	}
	return gof.UniformStatistic(normalised), nil
}
