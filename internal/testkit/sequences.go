// Package testkit provides sample sequences with known test outcomes and
// file fixtures for the readers.
package testkit

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// fortySamples has no ties. At alpha 0.05 only the above/below run-length
// test rejects it.
var fortySamples = []float64{
	0.811, 0.781, 0.046, 0.376, 0.502, 0.313, 0.318, 0.226,
	0.468, 0.319, 0.939, 0.547, 0.011, 0.981, 0.684, 0.839,
	0.047, 0.107, 0.609, 0.131, 0.461, 0.145, 0.208, 0.491,
	0.321, 0.775, 0.608, 0.342, 0.576, 0.598, 0.493, 0.156,
	0.344, 0.214, 0.195, 0.883, 0.18, 0.348, 0.285, 0.494,
}

// FortySamples returns a fresh copy of the 40-value reference fixture
func FortySamples() []float64 {
	return append([]float64(nil), fortySamples...)
}

// Increasing returns 1, 2, ..., n
func Increasing(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// Alternating returns pairs of low/high values mirrored around 0.5, so every
// consecutive comparison changes direction
func Alternating(pairs int) []float64 {
	out := make([]float64, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		lo := 0.1 + 0.3*float64(i)/float64(pairs)
		out = append(out, lo, 1-lo)
	}
	return out
}

// Seeded returns n uniform values from a deterministic source
func Seeded(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// Constant returns n copies of v
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// WriteCSV writes an id column and a value column named column into dir and
// returns the file path
func WriteCSV(dir, column string, values []float64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "id,%s\n", column)
	for i, v := range values {
		fmt.Fprintf(&b, "%d,%v\n", i+1, v)
	}
	path := filepath.Join(dir, "samples.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fixture: %w", err)
	}
	return path, nil
}
