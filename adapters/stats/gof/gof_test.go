package gof

import (
	"fmt"
	"math"
	"testing"

	"gorandtest/domain/randomness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGroupFrequencies_NoGroupReachesThreshold(t *testing.T) {
	table := []randomness.Category{
		{Length: 1, Observed: 2, Expected: 1.5},
		{Length: 2, Observed: 1, Expected: 1.0},
		{Length: 3, Observed: 1, Expected: 0.5},
	}

	groups, err := GroupFrequencies(table)
	require.ErrorIs(t, err, randomness.ErrInsufficientGroups)
	require.Len(t, groups, 1)
	assert.Equal(t, 4.0, groups[0].Observed)
	assert.InDelta(t, 3.0, groups[0].Expected, 1e-12)
	assert.Equal(t, 1, groups[0].FromLength)
	assert.Equal(t, 3, groups[0].ToLength)
}

func TestGroupFrequencies_RemainderMergesIntoLowestGroup(t *testing.T) {
	table := []randomness.Category{
		{Length: 1, Observed: 3, Expected: 2},
		{Length: 2, Observed: 6, Expected: 6},
		{Length: 3, Observed: 4, Expected: 3},
		{Length: 4, Observed: 1, Expected: 2},
	}

	groups, err := GroupFrequencies(table)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, randomness.Group{FromLength: 1, ToLength: 2, Observed: 9, Expected: 8}, groups[0])
	assert.Equal(t, randomness.Group{FromLength: 3, ToLength: 4, Observed: 5, Expected: 5}, groups[1])
}

func TestGroupFrequencies_Empty(t *testing.T) {
	groups, err := GroupFrequencies(nil)
	assert.Empty(t, groups)
	assert.ErrorIs(t, err, randomness.ErrInsufficientGroups)
}

func tableGen() *rapid.Generator[[]randomness.Category] {
	return rapid.Custom(func(t *rapid.T) []randomness.Category {
		n := rapid.IntRange(1, 20).Draw(t, "categories")
		table := make([]randomness.Category, n)
		for i := range table {
			table[i] = randomness.Category{
				Length:   i + 1,
				Observed: rapid.IntRange(0, 30).Draw(t, fmt.Sprintf("o%d", i)),
				Expected: rapid.Float64Range(0, 12).Draw(t, fmt.Sprintf("e%d", i)),
			}
		}
		return table
	})
}

func TestProperty_GroupingConservesTotals(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		table := tableGen().Draw(rt, "table")

		groups, _ := GroupFrequencies(table)

		var wantO, wantE, gotO, gotE float64
		for _, c := range table {
			wantO += float64(c.Observed)
			wantE += c.Expected
		}
		below := 0
		for _, g := range groups {
			gotO += g.Observed
			gotE += g.Expected
			if g.Expected < MinExpected {
				below++
			}
		}

		require.Equal(rt, wantO, gotO)
		require.InDelta(rt, wantE, gotE, 1e-9)
		require.LessOrEqual(rt, below, 1)
	})
}

func TestProperty_ChiSquareNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "groups")
		groups := make([]randomness.Group, n)
		for i := range groups {
			groups[i].Observed = float64(rapid.IntRange(0, 50).Draw(rt, fmt.Sprintf("o%d", i)))
			groups[i].Expected = rapid.Float64Range(0.1, 50).Draw(rt, fmt.Sprintf("e%d", i))
		}
		require.GreaterOrEqual(rt, ChiSquareStatistic(groups), 0.0)
	})
}

func TestChiSquareStatistic_ZeroWhenObservedMatchesExpected(t *testing.T) {
	groups := []randomness.Group{
		{Observed: 5, Expected: 5},
		{Observed: 7, Expected: 7},
	}
	assert.Equal(t, 0.0, ChiSquareStatistic(groups))

	groups[1].Observed = 8
	assert.Greater(t, ChiSquareStatistic(groups), 0.0)
}

func TestChiSquareStatistic_SkipsEmptyExpected(t *testing.T) {
	groups := []randomness.Group{
		{Observed: 3, Expected: 0},
		{Observed: 4, Expected: 2},
	}
	assert.Equal(t, 2.0, ChiSquareStatistic(groups))
}

func TestDecideChiSquare(t *testing.T) {
	d, err := DecideChiSquare(3.0, 9, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 16.919, d.CriticalValue, 1e-3)
	assert.False(t, d.Reject)
	assert.InDelta(t, 0.9643, d.PValue, 1e-3)

	_, err = DecideChiSquare(3.0, 0, 0.05)
	assert.ErrorIs(t, err, randomness.ErrInsufficientGroups)

	_, err = DecideChiSquare(3.0, 2, 1.5)
	assert.ErrorIs(t, err, randomness.ErrInvalidParameter)
}

func TestDecideChiSquareTabulated(t *testing.T) {
	d, err := DecideChiSquareTabulated(17.0, 9, 0.05)
	require.NoError(t, err)
	assert.True(t, d.Tabulated)
	assert.Equal(t, 16.92, d.CriticalValue)
	assert.True(t, d.Reject)

	d, err = DecideChiSquareTabulated(17.0, 12, 0.05)
	require.NoError(t, err)
	assert.False(t, d.Tabulated)
	assert.InDelta(t, 21.026, d.CriticalValue, 1e-3)
}

func TestCriticalValuesDecreaseWithAlpha(t *testing.T) {
	alphas := []float64{0.001, 0.01, 0.05, 0.1, 0.2}
	for df := 1; df <= 15; df++ {
		prevChi, prevZ := math.Inf(1), math.Inf(1)
		for _, a := range alphas {
			d, err := DecideChiSquare(1, df, a)
			require.NoError(t, err)
			assert.Less(t, d.CriticalValue, prevChi)
			prevChi = d.CriticalValue

			z := TwoTailedCritical(a)
			assert.Less(t, z, prevZ)
			prevZ = z
		}
	}
}

func TestDecideNormal(t *testing.T) {
	d, err := DecideNormal(-2.5, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 1.95996, d.CriticalValue, 1e-4)
	assert.True(t, d.Reject)
	assert.InDelta(t, 0.01242, d.PValue, 1e-4)

	d, err = DecideNormal(0, 0.05)
	require.NoError(t, err)
	assert.False(t, d.Reject)
	assert.InDelta(t, 1.0, d.PValue, 1e-12)
}

func TestKolmogorovK(t *testing.T) {
	tests := []struct {
		alpha float64
		want  float64
	}{
		{0.05, 1.36},
		{0.10, 1.22},
		{0.001, 1.95},
		{0.03, 1.48},
		{0.20, 1.22},
		{0.0001, 1.95},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KolmogorovK(tt.alpha), "alpha=%v", tt.alpha)
	}
}

func TestKolmogorovCDF_KnownValues(t *testing.T) {
	// Marsaglia, Tsang and Wang (2003), Table 1
	assert.InDelta(t, 0.6284796154565043, KolmogorovCDF(10, 0.274), 1e-10)

	// n=1: P(D < d) = 2d - 1
	assert.InDelta(t, 0.5, KolmogorovCDF(1, 0.75), 1e-12)

	assert.Equal(t, 0.0, KolmogorovCDF(10, 0))
	assert.Equal(t, 1.0, KolmogorovCDF(10, 1))
}

func TestKolmogorovPValue_Monotone(t *testing.T) {
	prev := 1.0
	for _, d := range []float64{0.05, 0.1, 0.15, 0.2, 0.3} {
		p := KolmogorovPValue(100, d)
		assert.LessOrEqual(t, p, prev)
		prev = p
	}
}

func TestUniformStatistic(t *testing.T) {
	assert.InDelta(t, 0.25, UniformStatistic([]float64{0.25, 0.5, 0.75}), 1e-12)
	assert.InDelta(t, 1.0, UniformStatistic([]float64{0, 0, 0}), 1e-12)
	assert.Equal(t, 0.0, UniformStatistic(nil))
}
