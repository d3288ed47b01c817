// Package profiling computes descriptive statistics of a sample sequence for
// report headers.
package profiling

import (
	"math"

	"gorandtest/domain/core"
	"gorandtest/domain/randomness"

	"github.com/montanaflynn/stats"
)

// Profile describes a sample set. Statistics that cannot be computed for the
// sample size are left at zero.
func Profile(set *randomness.SampleSet) randomness.SampleProfile {
	data := stats.Float64Data(set.Values)
	p := randomness.SampleProfile{
		Count:   len(data),
		Dropped: set.Dropped,
		Hash:    core.SampleHash(set.Values),
	}
	for _, x := range data {
		if x < 0 || x >= 1 {
			p.OutOfRange++
		}
	}
	if len(data) == 0 {
		return p
	}

	p.Mean, _ = data.Mean()
	p.Variance, _ = data.Variance()
	p.StdDev, _ = data.StandardDeviation()
	p.Min, _ = data.Min()
	p.Max, _ = data.Max()
	p.Median, _ = data.Median()

	// Quartiles for IQR-based outlier detection
	p.Q25, _ = data.Percentile(25)
	p.Q75, _ = data.Percentile(75)
	p.Outliers = detectOutliers(data, p.Q25, p.Q75)

	if p.StdDev > 0 {
		p.Skewness = calculateSkewness(data, p.Mean, p.StdDev)
		p.Kurtosis = calculateKurtosis(data, p.Mean, p.StdDev)
	}
	return p
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// calculateKurtosis computes bias-corrected sample excess kurtosis. A
// uniform sequence has excess kurtosis near -1.2.
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	excessKurtosis := sumFourthDeviations/n - 3
	correction := (n - 1) / ((n - 2) * (n - 3))
	return correction * ((n+1)*excessKurtosis + 6)
}

// detectOutliers counts values outside the 1.5 IQR fences
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}
