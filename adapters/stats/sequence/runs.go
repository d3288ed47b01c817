package sequence

import (
	"sort"

	"gorandtest/domain/randomness"
)

// ComputeRuns splits a sign sequence into maximal runs in a single
// left-to-right scan. The final run is always flushed.
func ComputeRuns(signs []randomness.Sign) []randomness.Run {
	if len(signs) == 0 {
		return nil
	}

	var runs []randomness.Run
	current := randomness.Run{Sign: signs[0], Length: 1}
	for _, s := range signs[1:] {
		if s == current.Sign {
			current.Length++
			continue
		}
		runs = append(runs, current)
		current = randomness.Run{Sign: s, Length: 1}
	}
	return append(runs, current)
}

// RunLengths returns only the lengths of the runs of signs, in order
func RunLengths(signs []randomness.Sign) []int {
	runs := ComputeRuns(signs)
	lengths := make([]int, len(runs))
	for i, r := range runs {
		lengths[i] = r.Length
	}
	return lengths
}

// CountRuns counts maximal runs by counting sign transitions
func CountRuns(signs []randomness.Sign) int {
	if len(signs) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(signs); i++ {
		if signs[i] != signs[i-1] {
			count++
		}
	}
	return count
}

// LengthHistogram counts how many runs have each length
func LengthHistogram(lengths []int) map[int]int {
	hist := make(map[int]int, len(lengths))
	for _, l := range lengths {
		hist[l]++
	}
	return hist
}

// MaxLength returns the longest run length, or 0 for no runs
func MaxLength(lengths []int) int {
	max := 0
	for _, l := range lengths {
		if l > max {
			max = l
		}
	}
	return max
}

// FrequencyTable builds categories 1..max observed length, filling the
// expected column with expected(i). Lengths that never occur are kept with
// Observed=0 so the key domain is contiguous.
func FrequencyTable(lengths []int, expected func(length int) float64) []randomness.Category {
	hist := LengthHistogram(lengths)
	max := MaxLength(lengths)
	table := make([]randomness.Category, 0, max)
	for i := 1; i <= max; i++ {
		table = append(table, randomness.Category{
			Length:   i,
			Observed: hist[i],
			Expected: expected(i),
		})
	}
	return table
}

// SortedLengths returns the distinct observed lengths in ascending order
func SortedLengths(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
