package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gorandtest/domain/randomness"
)

// table is a titled grid of preformatted cells
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// field is one labelled value in a test's detail block
type field struct {
	Label string
	Value string
}

// detail is the renderer-neutral view of one test's intermediate values
type detail struct {
	Title  string
	Fields []field
	Tables []table
}

func num(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'f', -1, 64)
	case v == 0 || math.Abs(v) >= 1e-3:
		return strconv.FormatFloat(v, 'f', 4, 64)
	default:
		return strconv.FormatFloat(v, 'e', 4, 64)
	}
}

func decision(s randomness.Summary) string {
	switch {
	case s.Error != "":
		return "error"
	case s.RejectNull:
		return "reject H0"
	default:
		return "do not reject H0"
	}
}

func summaryTable(r *randomness.Report) table {
	t := table{
		Title:   "Summary",
		Headers: []string{"Test", "Statistic", "Critical", "p-value", "Decision"},
	}
	for _, s := range r.Summaries() {
		if s.Error != "" {
			t.Rows = append(t.Rows, []string{s.Title, "-", "-", "-", "error: " + s.Error})
			continue
		}
		t.Rows = append(t.Rows, []string{
			s.Title, num(s.Statistic), num(s.CriticalValue), num(s.PValue), decision(s),
		})
	}
	return t
}

func profileFields(r *randomness.Report) []field {
	p := r.Profile
	fields := []field{
		{"Run", r.RunID.String()},
		{"Started", r.StartedAt.String()},
		{"Source", r.Source},
	}
	if r.Column != "" {
		fields = append(fields, field{"Column", r.Column})
	}
	return append(fields,
		field{"Samples", strconv.Itoa(p.Count)},
		field{"Dropped", strconv.Itoa(p.Dropped)},
		field{"Out of range", strconv.Itoa(p.OutOfRange)},
		field{"Mean", num(p.Mean)},
		field{"Std dev", num(p.StdDev)},
		field{"Min / Max", num(p.Min) + " / " + num(p.Max)},
		field{"Quartiles", num(p.Q25) + " / " + num(p.Median) + " / " + num(p.Q75)},
		field{"Skewness", num(p.Skewness)},
		field{"Excess kurtosis", num(p.Kurtosis)},
		field{"Alpha", num(r.Alpha)},
		field{"Intervals", strconv.Itoa(r.Intervals)},
		field{"Sample hash", p.Hash.Short()},
		field{"Fingerprint", r.Fingerprint.Short()},
	)
}

func interval(bounds []float64, i int) string {
	return fmt.Sprintf("[%s, %s)", num(bounds[i]), num(bounds[i+1]))
}

// details builds the detail block of every successful entry
func details(r *randomness.Report) []detail {
	var out []detail
	for _, e := range r.Entries {
		if e.Result == nil {
			continue
		}
		out = append(out, describe(e.Result))
	}
	return out
}

func verdictFields(v randomness.Verdict) []field {
	fields := []field{
		{"Sample size", strconv.Itoa(v.SampleSize)},
		{"Statistic", num(v.Statistic)},
		{"Critical value", num(v.CriticalValue)},
		{"p-value", num(v.PValue)},
	}
	if v.DegreesOfFreedom > 0 {
		fields = append(fields, field{"Degrees of freedom", strconv.Itoa(v.DegreesOfFreedom)})
	}
	return fields
}

func describe(res randomness.Result) detail {
	v := res.Verdict()
	d := detail{Title: v.TestName.DisplayName(), Fields: verdictFields(v)}

	switch r := res.(type) {
	case *randomness.UniformityResult:
		d.Fields = append(d.Fields,
			field{"Expected per interval", num(r.Expected)},
			field{"Excluded", strconv.Itoa(r.Excluded)},
		)
		t := table{Title: "Intervals", Headers: []string{"Interval", "Observed", "Expected", "(O-E)^2/E"}}
		for i, o := range r.Observed {
			t.Rows = append(t.Rows, []string{interval(r.Bounds, i), strconv.Itoa(o), num(r.Expected), num(r.Contributions[i])})
		}
		d.Tables = append(d.Tables, t)

	case *randomness.KolmogorovSmirnovResult:
		d.Fields = append(d.Fields,
			field{"K(alpha)", num(r.KAlpha)},
			field{"Max difference at", interval(r.Bounds, r.MaxDifferenceIndex)},
			field{"Sample statistic", num(r.SampleStatistic)},
		)
		t := table{Title: "Cumulative frequencies", Headers: []string{"Interval", "Observed", "F_obs", "F_theo", "|diff|"}}
		for i, o := range r.Observed {
			t.Rows = append(t.Rows, []string{
				interval(r.Bounds, i), strconv.Itoa(o),
				num(r.CumulativeObserved[i]), num(r.CumulativeTheoretical[i]), num(r.Differences[i]),
			})
		}
		d.Tables = append(d.Tables, t)

	case *randomness.RunsAboveBelowResult:
		d.Fields = append(d.Fields,
			field{"Threshold", num(r.Threshold)},
			field{"n1 (above)", strconv.Itoa(r.Above)},
			field{"n2 (below)", strconv.Itoa(r.Below)},
			field{"Runs", strconv.Itoa(r.Runs)},
			field{"Expected runs", num(r.ExpectedRuns)},
			field{"Variance", num(r.Variance)},
		)

	case *randomness.RunsUpDownResult:
		d.Fields = append(d.Fields,
			field{"Runs", strconv.Itoa(r.Runs)},
			field{"Mean", num(r.Mean)},
			field{"Variance", num(r.Variance)},
			field{"Std dev", num(r.StdDev)},
			field{"Longest run", strconv.Itoa(r.MaxRunLength)},
		)
		lengths := make([]int, 0, len(r.LengthCounts))
		for l := range r.LengthCounts {
			lengths = append(lengths, l)
		}
		sort.Ints(lengths)
		t := table{Title: "Run lengths", Headers: []string{"Length", "Runs"}}
		for _, l := range lengths {
			t.Rows = append(t.Rows, []string{strconv.Itoa(l), strconv.Itoa(r.LengthCounts[l])})
		}
		d.Tables = append(d.Tables, t)

	case *randomness.RunLengthResult:
		d.Fields = append(d.Fields,
			field{"Total runs", strconv.Itoa(r.TotalRuns)},
			field{"Samples (N)", strconv.Itoa(r.SampleCount)},
			field{"Signs", strconv.Itoa(r.SignCount)},
		)
		if v.TestName == randomness.TestRunLengthAboveBelow {
			d.Fields = append(d.Fields,
				field{"n1 (above)", strconv.Itoa(r.Above)},
				field{"n2 (not above)", strconv.Itoa(r.Below)},
			)
		}
		if len(r.Overflowed) > 0 {
			d.Fields = append(d.Fields, field{"Overflowed lengths", fmt.Sprint(r.Overflowed)})
		}
		cats := table{Title: "Categories", Headers: []string{"Length", "Observed", "Expected"}}
		for _, c := range r.Categories {
			cats.Rows = append(cats.Rows, []string{strconv.Itoa(c.Length), strconv.Itoa(c.Observed), num(c.Expected)})
		}
		groups := table{Title: "Groups", Headers: []string{"Lengths", "Observed", "Expected", "(O-E)^2/E"}}
		for _, g := range r.Groups {
			span := strconv.Itoa(g.FromLength)
			if g.ToLength != g.FromLength {
				span += "-" + strconv.Itoa(g.ToLength)
			}
			groups.Rows = append(groups.Rows, []string{span, num(g.Observed), num(g.Expected), num(g.Contribution)})
		}
		d.Tables = append(d.Tables, cats, groups)
	}
	return d
}
