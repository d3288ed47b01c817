// Package gof implements the goodness-of-fit machinery shared by the
// randomness tests: sparse-bucket grouping, the chi-square decision, the
// two-tailed normal decision and the Kolmogorov distribution.
package gof

import (
	"gorandtest/domain/randomness"
)

// MinExpected is the smallest expected count a closed group may hold
const MinExpected = 5.0

// pending accumulates categories until the expected count reaches the threshold
type pending struct {
	from, to int
	observed float64
	expected float64
}

func (p pending) empty() bool {
	return p.observed == 0 && p.expected == 0
}

func (p pending) group() randomness.Group {
	return randomness.Group{
		FromLength: p.from,
		ToLength:   p.to,
		Observed:   p.observed,
		Expected:   p.expected,
	}
}

// GroupFrequencies merges sparse categories so each group's expected count
// reaches MinExpected. Categories must be ordered by ascending length. The
// fold runs from the longest length down; a group is closed as soon as its
// accumulated expected count reaches the threshold. A leftover remainder is
// merged into the lowest-key closed group, or becomes the only group when no
// group ever closed. The returned groups are in ascending key order.
//
// Fewer than two groups is reported as ErrInsufficientGroups; the groups are
// still returned so callers can show them.
func GroupFrequencies(table []randomness.Category) ([]randomness.Group, error) {
	var closed []randomness.Group // built high-to-low, reversed at the end
	acc := pending{}

	for i := len(table) - 1; i >= 0; i-- {
		c := table[i]
		if acc.to == 0 {
			acc.to = c.Length
		}
		acc.from = c.Length
		acc.observed += float64(c.Observed)
		acc.expected += c.Expected

		if acc.expected >= MinExpected {
			closed = append(closed, acc.group())
			acc = pending{}
		}
	}

	groups := make([]randomness.Group, len(closed))
	for i, g := range closed {
		groups[len(closed)-1-i] = g
	}

	if acc.to != 0 {
		switch {
		case len(groups) > 0:
			groups[0].FromLength = acc.from
			groups[0].Observed += acc.observed
			groups[0].Expected += acc.expected
		case !acc.empty():
			groups = append(groups, acc.group())
		}
	}

	if len(groups) < 2 {
		return groups, randomness.NewGroupsError(len(groups))
	}
	return groups, nil
}
