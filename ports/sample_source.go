package ports

import (
	"context"

	"gorandtest/domain/randomness"
)

// SampleSource provides a sample sequence to the battery service.
// Spreadsheet files and remote JSON documents both implement it.
type SampleSource interface {
	LoadSamples(ctx context.Context) (*randomness.SampleSet, error)
}

// StaticSource serves an in-memory sample sequence
type StaticSource struct {
	Name   string
	Values []float64
}

// LoadSamples returns the wrapped values
func (s StaticSource) LoadSamples(ctx context.Context) (*randomness.SampleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &randomness.SampleSet{Source: s.Name, Values: s.Values}, nil
}
