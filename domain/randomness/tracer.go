package randomness

// Tracer receives structured events at the three extension points every
// test passes through. Implementations must be safe for concurrent use
// when a battery runs tests in parallel.
type Tracer interface {
	OnConstruct(test TestName, sampleSize int, alpha float64)
	OnFrequencies(test TestName, observed, expected []float64)
	OnDecision(test TestName, verdict Verdict)
}

// NopTracer discards all events
type NopTracer struct{}

func (NopTracer) OnConstruct(TestName, int, float64)           {}
func (NopTracer) OnFrequencies(TestName, []float64, []float64) {}
func (NopTracer) OnDecision(TestName, Verdict)                 {}
