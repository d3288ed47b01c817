package randomness

import (
	"gorandtest/domain/core"
)

// SampleProfile describes the sample sequence a report was computed on
type SampleProfile struct {
	Count      int       `json:"count"`
	Dropped    int       `json:"dropped"`
	OutOfRange int       `json:"out_of_range"`
	Mean       float64   `json:"mean"`
	Variance   float64   `json:"variance"`
	StdDev     float64   `json:"std_dev"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Median     float64   `json:"median"`
	Q25        float64   `json:"q25"`
	Q75        float64   `json:"q75"`
	Skewness   float64   `json:"skewness"`
	Kurtosis   float64   `json:"excess_kurtosis"`
	Outliers   int       `json:"outliers"`
	Hash       core.Hash `json:"hash"`
}

// ReportEntry is one test in a report. Result is nil when Summary.Error is set.
type ReportEntry struct {
	Name       TestName `json:"test_name"`
	Summary    Summary  `json:"summary"`
	Result     Result   `json:"result,omitempty"`
	DurationMs float64  `json:"duration_ms"`
}

// Report is the complete outcome of one battery run. Fingerprint is equal
// for runs over the same samples with the same parameters.
type Report struct {
	RunID       core.RunID     `json:"run_id"`
	Fingerprint core.Hash      `json:"fingerprint"`
	StartedAt   core.Timestamp `json:"started_at"`
	DurationMs  float64        `json:"duration_ms"`
	Source      string         `json:"source"`
	Column      string         `json:"column,omitempty"`
	Alpha       float64        `json:"alpha"`
	Intervals   int            `json:"intervals"`
	Profile     SampleProfile  `json:"profile"`
	Entries     []ReportEntry  `json:"entries"`
}

// Summaries returns the summary row of every entry in order
func (r *Report) Summaries() []Summary {
	out := make([]Summary, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Summary
	}
	return out
}

// Rejected counts the tests that rejected the null hypothesis
func (r *Report) Rejected() int {
	n := 0
	for _, e := range r.Entries {
		if e.Summary.Error == "" && e.Summary.RejectNull {
			n++
		}
	}
	return n
}

// Failed counts the tests that returned an error
func (r *Report) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Summary.Error != "" {
			n++
		}
	}
	return n
}
