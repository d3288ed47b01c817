package randomness

import (
	"context"
	"fmt"
	"time"

	"gorandtest/domain/randomness"

	"golang.org/x/sync/semaphore"
)

// BatteryConfig selects and parameterises the tests a battery runs
type BatteryConfig struct {
	Alpha         float64
	Intervals     int
	Tests         []randomness.TestName // empty selects every test
	MaxConcurrent int64
	Tracer        randomness.Tracer
	// OnEntry, when set, is called from the collecting goroutine as each
	// test finishes, in completion order.
	OnEntry func(Entry)
}

// Entry is the outcome of one test in a battery run. Result is nil when the
// test failed; Summary then carries the error message.
type Entry struct {
	Name     randomness.TestName `json:"test_name"`
	Result   randomness.Result   `json:"result,omitempty"`
	Summary  randomness.Summary  `json:"summary"`
	Err      error               `json:"-"`
	Duration time.Duration       `json:"duration_ns"`
}

// Failed reports whether the test returned an error
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Battery runs a selection of tests over one sample sequence
type Battery struct {
	tests   []Test
	alpha   float64
	sem     *semaphore.Weighted
	onEntry func(Entry)
}

// NewTest constructs the named test over samples
func NewTest(name randomness.TestName, samples []float64, alpha float64, intervals int, opts ...Option) (Test, error) {
	switch name {
	case randomness.TestUniformityChiSquare:
		return NewUniformityTest(samples, intervals, alpha, opts...), nil
	case randomness.TestKolmogorovSmirnov:
		return NewKolmogorovSmirnovTest(samples, intervals, alpha, opts...), nil
	case randomness.TestRunsAboveBelow:
		return NewRunsAboveBelowTest(samples, alpha, opts...), nil
	case randomness.TestRunsUpDown:
		return NewRunsUpDownTest(samples, alpha, opts...), nil
	case randomness.TestRunLengthUpDown:
		return NewRunLengthUpDownTest(samples, alpha, opts...), nil
	case randomness.TestRunLengthAboveBelow:
		return NewRunLengthAboveBelowTest(samples, alpha, opts...), nil
	default:
		return nil, randomness.NewParameterError("test", name)
	}
}

// NewBattery builds the configured tests over samples. Test order follows
// cfg.Tests, or battery order when no selection is given.
func NewBattery(samples []float64, cfg BatteryConfig) (*Battery, error) {
	if cfg.Alpha == 0 {
		cfg.Alpha = DefaultAlpha
	}
	if cfg.Intervals == 0 {
		cfg.Intervals = DefaultIntervals
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = int64(len(randomness.AllTests))
	}
	names := cfg.Tests
	if len(names) == 0 {
		names = randomness.AllTests
	}

	opts := []Option{WithTracer(cfg.Tracer)}
	seen := make(map[randomness.TestName]bool, len(names))
	tests := make([]Test, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		t, err := NewTest(name, samples, cfg.Alpha, cfg.Intervals, opts...)
		if err != nil {
			return nil, fmt.Errorf("battery: %w", err)
		}
		tests = append(tests, t)
	}

	return &Battery{
		tests:   tests,
		alpha:   cfg.Alpha,
		sem:     semaphore.NewWeighted(cfg.MaxConcurrent),
		onEntry: cfg.OnEntry,
	}, nil
}

// Tests returns the selected test names in run order
func (b *Battery) Tests() []randomness.TestName {
	names := make([]randomness.TestName, len(b.tests))
	for i, t := range b.tests {
		names[i] = t.Name()
	}
	return names
}

// Run executes every selected test concurrently. A failing test never stops
// the others; entries come back in selection order.
func (b *Battery) Run(ctx context.Context) []Entry {
	entries := make([]Entry, len(b.tests))

	type entryWithIndex struct {
		entry Entry
		index int
	}
	resultChan := make(chan entryWithIndex, len(b.tests))

	for i, test := range b.tests {
		go func(test Test, idx int) {
			resultChan <- entryWithIndex{entry: b.runOne(ctx, test), index: idx}
		}(test, i)
	}

	for i := 0; i < len(b.tests); i++ {
		res := <-resultChan
		entries[res.index] = res.entry
		if b.onEntry != nil {
			b.onEntry(res.entry)
		}
	}
	return entries
}

func (b *Battery) runOne(ctx context.Context, test Test) (entry Entry) {
	entry.Name = test.Name()
	started := time.Now()
	defer func() {
		entry.Duration = time.Since(started)
	}()

	if err := b.sem.Acquire(ctx, 1); err != nil {
		entry.Err = err
		entry.Summary = randomness.FailedSummary(entry.Name, b.alpha, err)
		return entry
	}
	defer b.sem.Release(1)

	result, err := test.Run(ctx)
	if err != nil {
		entry.Err = err
		entry.Summary = randomness.FailedSummary(entry.Name, b.alpha, err)
		return entry
	}
	entry.Result = result
	entry.Summary = result.Summary()
	return entry
}

// Catalog lists every available test with its description
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(randomness.AllTests))
	for _, name := range randomness.AllTests {
		t, _ := NewTest(name, nil, DefaultAlpha, DefaultIntervals)
		out = append(out, CatalogEntry{
			Name:        name,
			Title:       name.DisplayName(),
			Description: t.Description(),
		})
	}
	return out
}

// CatalogEntry describes one available test
type CatalogEntry struct {
	Name        randomness.TestName `json:"name"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
}
