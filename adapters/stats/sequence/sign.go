// Package sequence derives +/- sign sequences from samples and decomposes
// them into maximal runs.
package sequence

import (
	"gorandtest/domain/randomness"
)

// TieRule decides how a sample exactly equal to the threshold is classified
type TieRule int

const (
	// TieGoesUp classifies value >= threshold as Plus
	TieGoesUp TieRule = iota
	// TieGoesDown classifies only value > threshold as Plus
	TieGoesDown
)

// FromConsecutiveComparisons emits Plus when a sample exceeds its predecessor
// and Minus when it is smaller. Equal neighbours are omitted, so the result
// has at most len(samples)-1 signs.
func FromConsecutiveComparisons(samples []float64) []randomness.Sign {
	if len(samples) < 2 {
		return nil
	}
	signs := make([]randomness.Sign, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		switch {
		case samples[i] > samples[i-1]:
			signs = append(signs, randomness.Plus)
		case samples[i] < samples[i-1]:
			signs = append(signs, randomness.Minus)
		}
	}
	return signs
}

// FromConsecutiveDirections is like FromConsecutiveComparisons but a tie
// repeats the previous direction instead of being dropped. A tie at the
// first comparison counts as ascending. The result always has
// len(samples)-1 signs.
func FromConsecutiveDirections(samples []float64) []randomness.Sign {
	if len(samples) < 2 {
		return nil
	}
	signs := make([]randomness.Sign, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		switch {
		case samples[i] > samples[i-1]:
			signs = append(signs, randomness.Plus)
		case samples[i] < samples[i-1]:
			signs = append(signs, randomness.Minus)
		case len(signs) > 0:
			signs = append(signs, signs[len(signs)-1])
		default:
			signs = append(signs, randomness.Plus)
		}
	}
	return signs
}

// FromThreshold classifies every sample against a fixed threshold
func FromThreshold(samples []float64, threshold float64, rule TieRule) []randomness.Sign {
	signs := make([]randomness.Sign, len(samples))
	for i, v := range samples {
		above := v > threshold
		if rule == TieGoesUp {
			above = v >= threshold
		}
		if above {
			signs[i] = randomness.Plus
		} else {
			signs[i] = randomness.Minus
		}
	}
	return signs
}

// CountSigns returns the number of Plus and Minus signs
func CountSigns(signs []randomness.Sign) (plus, minus int) {
	for _, s := range signs {
		if s == randomness.Plus {
			plus++
		} else {
			minus++
		}
	}
	return plus, minus
}

// RequireBothSigns fails with ErrDegenerateInput when either category is empty
func RequireBothSigns(test randomness.TestName, signs []randomness.Sign) (plus, minus int, err error) {
	plus, minus = CountSigns(signs)
	if plus == 0 || minus == 0 {
		return plus, minus, randomness.NewDegenerateError(test, "all samples fall on one side of the threshold")
	}
	return plus, minus, nil
}
