package gof

import (
	"math"

	"gorandtest/domain/randomness"

	"gonum.org/v1/gonum/stat/distuv"
)

// TwoTailedCritical returns the standard normal quantile at 1-alpha/2
func TwoTailedCritical(alpha float64) float64 {
	return distuv.UnitNormal.Quantile(1 - alpha/2)
}

// TwoTailedPValue returns 2*(1-Phi(|z|))
func TwoTailedPValue(z float64) float64 {
	return clampProbability(2 * distuv.UnitNormal.Survival(math.Abs(z)))
}

// DecideNormal rejects when |z| exceeds the two-tailed critical value
func DecideNormal(z, alpha float64) (Decision, error) {
	if err := randomness.ValidateAlpha(alpha); err != nil {
		return Decision{}, err
	}
	critical := TwoTailedCritical(alpha)
	return Decision{
		Statistic:     z,
		CriticalValue: critical,
		PValue:        TwoTailedPValue(z),
		Reject:        math.Abs(z) > critical,
	}, nil
}
