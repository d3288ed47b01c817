package sequence

import (
	"testing"

	"gorandtest/domain/randomness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func signs(s string) []randomness.Sign {
	out := make([]randomness.Sign, len(s))
	for i := range s {
		out[i] = randomness.Sign(s[i])
	}
	return out
}

func TestFromConsecutiveComparisons_OmitsTies(t *testing.T) {
	got := FromConsecutiveComparisons([]float64{0.1, 0.5, 0.5, 0.2, 0.3})
	assert.Equal(t, signs("+-+"), got)
}

func TestFromConsecutiveComparisons_StrictlyIncreasing(t *testing.T) {
	samples := make([]float64, 15)
	for i := range samples {
		samples[i] = float64(i + 1)
	}

	got := FromConsecutiveComparisons(samples)
	require.Len(t, got, 14)
	runs := ComputeRuns(got)
	require.Len(t, runs, 1)
	assert.Equal(t, randomness.Run{Sign: randomness.Plus, Length: 14}, runs[0])
}

func TestFromConsecutiveDirections_TiesContinue(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    string
	}{
		{"leading tie defaults up", []float64{0.4, 0.4, 0.1}, "+-"},
		{"tie repeats descent", []float64{0.9, 0.5, 0.5, 0.7}, "--+"},
		{"no ties", []float64{0.1, 0.2, 0.1}, "+-"},
		{"single sample", []float64{0.3}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromConsecutiveDirections(tt.samples)
			assert.Equal(t, tt.want, string(toBytes(got)))
		})
	}
}

func toBytes(s []randomness.Sign) []byte {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = byte(v)
	}
	return b
}

func TestFromThreshold_TieRules(t *testing.T) {
	samples := []float64{0.2, 0.5, 0.7}

	assert.Equal(t, signs("-++"), FromThreshold(samples, 0.5, TieGoesUp))
	assert.Equal(t, signs("--+"), FromThreshold(samples, 0.5, TieGoesDown))
}

func TestRequireBothSigns(t *testing.T) {
	_, _, err := RequireBothSigns(randomness.TestRunsAboveBelow, signs("+++"))
	assert.ErrorIs(t, err, randomness.ErrDegenerateInput)

	plus, minus, err := RequireBothSigns(randomness.TestRunsAboveBelow, signs("+-+"))
	require.NoError(t, err)
	assert.Equal(t, 2, plus)
	assert.Equal(t, 1, minus)
}

func TestComputeRuns_Empty(t *testing.T) {
	assert.Empty(t, ComputeRuns(nil))
	assert.Equal(t, 0, CountRuns(nil))
}

func TestComputeRuns_FlushesFinalRun(t *testing.T) {
	runs := ComputeRuns(signs("++-+++"))
	assert.Equal(t, []randomness.Run{
		{Sign: randomness.Plus, Length: 2},
		{Sign: randomness.Minus, Length: 1},
		{Sign: randomness.Plus, Length: 3},
	}, runs)
}

func TestFrequencyTable_ContiguousKeys(t *testing.T) {
	table := FrequencyTable([]int{1, 3, 1}, func(i int) float64 { return float64(i) })
	require.Len(t, table, 3)
	assert.Equal(t, randomness.Category{Length: 1, Observed: 2, Expected: 1}, table[0])
	assert.Equal(t, randomness.Category{Length: 2, Observed: 0, Expected: 2}, table[1])
	assert.Equal(t, randomness.Category{Length: 3, Observed: 1, Expected: 3}, table[2])
}

func signGen() *rapid.Generator[[]randomness.Sign] {
	return rapid.Map(rapid.SliceOf(rapid.Bool()), func(bs []bool) []randomness.Sign {
		out := make([]randomness.Sign, len(bs))
		for i, b := range bs {
			if b {
				out[i] = randomness.Plus
			} else {
				out[i] = randomness.Minus
			}
		}
		return out
	})
}

func TestProperty_RunLengthsSumToSequenceLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seq := signGen().Draw(rt, "signs")

		total := 0
		for _, l := range RunLengths(seq) {
			total += l
		}
		require.Equal(rt, len(seq), total)
	})
}

func TestProperty_AdjacentRunsDiffer(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seq := signGen().Draw(rt, "signs")

		runs := ComputeRuns(seq)
		for i := 1; i < len(runs); i++ {
			require.NotEqual(rt, runs[i-1].Sign, runs[i].Sign)
		}
		require.Equal(rt, len(runs), CountRuns(seq))
		for _, r := range runs {
			require.GreaterOrEqual(rt, r.Length, 1)
		}
	})
}
