package randomness

import (
	"sort"
)

// IntervalBounds returns the m+1 edges of m equal-width intervals over [0,1)
func IntervalBounds(m int) []float64 {
	bounds := make([]float64, m+1)
	for i := range bounds {
		bounds[i] = float64(i) / float64(m)
	}
	return bounds
}

// Histogram counts samples per half-open interval [bounds[i], bounds[i+1]).
// Values outside [0,1), including 1.0 itself, are not counted; their number
// is returned as excluded. This truncation is intentional.
func Histogram(samples []float64, bounds []float64) (counts []int, excluded int) {
	m := len(bounds) - 1
	counts = make([]int, m)
	for _, x := range samples {
		if !(x >= 0 && x < 1) {
			excluded++
			continue
		}
		idx := sort.Search(len(bounds), func(i int) bool { return bounds[i] > x }) - 1
		if idx >= m {
			idx = m - 1
		}
		counts[idx]++
	}
	return counts, excluded
}
