package randomness

import (
	"gorandtest/adapters/stats/gof"
	"gorandtest/domain/randomness"
)

// decideRunLengths groups a run-length frequency table and applies the
// chi-square decision. On a grouping failure the partially filled result is
// returned alongside the error so the tables can still be inspected.
func decideRunLengths(name randomness.TestName, alpha float64, n, signs int, table []randomness.Category, tracer randomness.Tracer) (*randomness.RunLengthResult, error) {
	total := 0
	observed := make([]float64, len(table))
	expected := make([]float64, len(table))
	for i, c := range table {
		total += c.Observed
		observed[i] = float64(c.Observed)
		expected[i] = c.Expected
	}
	tracer.OnFrequencies(name, observed, expected)

	result := &randomness.RunLengthResult{
		Base:        randomness.Verdict{TestName: name, Alpha: alpha, SampleSize: n},
		Categories:  table,
		TotalRuns:   total,
		SampleCount: n,
		SignCount:   signs,
	}

	groups, err := gof.GroupFrequencies(table)
	result.Groups = groups
	if err != nil {
		return result, err
	}

	decision, err := gof.TestGroups(groups, alpha)
	if err != nil {
		return result, err
	}
	result.Base = verdict(name, alpha, n, decision.Statistic, decision.CriticalValue,
		decision.PValue, decision.DegreesOfFreedom, decision.Reject)
	tracer.OnDecision(name, result.Base)
	return result, nil
}
