package randomness

import (
	"sync"

	"gorandtest/domain/randomness"
	"gorandtest/internal/testkit"
)

var (
	fortySamples = testkit.FortySamples()
	increasing   = testkit.Increasing
	alternating  = testkit.Alternating
	seeded       = testkit.Seeded
	constant     = testkit.Constant
)

type recordingTracer struct {
	mu          sync.Mutex
	constructed []randomness.TestName
	frequencies []randomness.TestName
	decisions   []randomness.Verdict
}

func (r *recordingTracer) OnConstruct(test randomness.TestName, _ int, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructed = append(r.constructed, test)
}

func (r *recordingTracer) OnFrequencies(test randomness.TestName, _, _ []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frequencies = append(r.frequencies, test)
}

func (r *recordingTracer) OnDecision(_ randomness.TestName, v randomness.Verdict) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, v)
}
