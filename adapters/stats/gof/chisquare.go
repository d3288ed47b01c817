package gof

import (
	"gorandtest/domain/randomness"

	"gonum.org/v1/gonum/stat/distuv"
)

// Decision is the outcome of comparing a statistic to its critical value
type Decision struct {
	Statistic        float64
	DegreesOfFreedom int
	CriticalValue    float64
	PValue           float64
	Reject           bool
	Tabulated        bool
}

// Contributions returns (O-E)^2/E for each group and their sum. Groups with
// a non-positive expected count contribute nothing.
func Contributions(groups []randomness.Group) ([]float64, float64) {
	contrib := make([]float64, len(groups))
	total := 0.0
	for i, g := range groups {
		if g.Expected <= 0 {
			continue
		}
		d := g.Observed - g.Expected
		contrib[i] = d * d / g.Expected
		total += contrib[i]
	}
	return contrib, total
}

// ChiSquareStatistic returns the sum of (O-E)^2/E over groups with E > 0
func ChiSquareStatistic(groups []randomness.Group) float64 {
	_, total := Contributions(groups)
	return total
}

// DecideChiSquare compares a statistic against the chi-square distribution
// with df degrees of freedom at significance alpha.
func DecideChiSquare(statistic float64, df int, alpha float64) (Decision, error) {
	if df <= 0 {
		return Decision{}, randomness.NewGroupsError(df + 1)
	}
	if err := randomness.ValidateAlpha(alpha); err != nil {
		return Decision{}, err
	}

	dist := distuv.ChiSquared{K: float64(df)}
	critical := dist.Quantile(1 - alpha)
	return Decision{
		Statistic:        statistic,
		DegreesOfFreedom: df,
		CriticalValue:    critical,
		PValue:           clampProbability(dist.Survival(statistic)),
		Reject:           statistic > critical,
	}, nil
}

// DecideChiSquareTabulated behaves like DecideChiSquare but uses the printed
// table value when both df and alpha appear in it.
func DecideChiSquareTabulated(statistic float64, df int, alpha float64) (Decision, error) {
	d, err := DecideChiSquare(statistic, df, alpha)
	if err != nil {
		return d, err
	}
	if v, ok := TabulatedChiSquare(df, alpha); ok {
		d.CriticalValue = v
		d.Reject = statistic > v
		d.Tabulated = true
	}
	return d, nil
}

// TestGroups computes the statistic over grouped frequencies, fills in each
// group's contribution and decides with df = k-1.
func TestGroups(groups []randomness.Group, alpha float64) (Decision, error) {
	if len(groups) < 2 {
		return Decision{}, randomness.NewGroupsError(len(groups))
	}
	contrib, statistic := Contributions(groups)
	for i := range groups {
		groups[i].Contribution = contrib[i]
	}
	return DecideChiSquare(statistic, len(groups)-1, alpha)
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
