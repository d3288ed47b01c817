package randomness

// ============================================================================
// SEQUENCE PRIMITIVES
// ============================================================================

// Sign is one element of a +/- sequence derived from samples
type Sign byte

const (
	Plus  Sign = '+'
	Minus Sign = '-'
)

// String returns the sign as a one-character string
func (s Sign) String() string {
	return string(rune(s))
}

// Run is a maximal contiguous block of identical signs
type Run struct {
	Sign   Sign `json:"sign"`
	Length int  `json:"length"`
}

// ============================================================================
// FREQUENCY TABLES
// ============================================================================

// Category is one row of a run-length frequency table
type Category struct {
	Length   int     `json:"length"`
	Observed int     `json:"observed"`
	Expected float64 `json:"expected"`
}

// Group is one row of a grouped frequency table. FromLength and ToLength
// give the inclusive range of run lengths merged into the group.
type Group struct {
	FromLength   int     `json:"from_length"`
	ToLength     int     `json:"to_length"`
	Observed     float64 `json:"observed"`
	Expected     float64 `json:"expected"`
	Contribution float64 `json:"contribution"`
}

// ============================================================================
// TEST IDENTIFIERS
// ============================================================================

// TestName identifies one of the six tests in the battery
type TestName string

const (
	TestUniformityChiSquare TestName = "uniformity_chi_square"
	TestKolmogorovSmirnov   TestName = "kolmogorov_smirnov"
	TestRunsAboveBelow      TestName = "runs_above_below"
	TestRunsUpDown          TestName = "runs_up_down"
	TestRunLengthUpDown     TestName = "run_length_up_down"
	TestRunLengthAboveBelow TestName = "run_length_above_below"
)

// AllTests lists every test in battery order
var AllTests = []TestName{
	TestUniformityChiSquare,
	TestKolmogorovSmirnov,
	TestRunsUpDown,
	TestRunsAboveBelow,
	TestRunLengthUpDown,
	TestRunLengthAboveBelow,
}

// DisplayName returns the human-readable test title used in reports
func (t TestName) DisplayName() string {
	switch t {
	case TestUniformityChiSquare:
		return "Chi-Square Uniformity"
	case TestKolmogorovSmirnov:
		return "Kolmogorov-Smirnov"
	case TestRunsAboveBelow:
		return "Runs Above/Below 0.5"
	case TestRunsUpDown:
		return "Runs Up/Down"
	case TestRunLengthUpDown:
		return "Run Length Up/Down"
	case TestRunLengthAboveBelow:
		return "Run Length Above/Below 0.5"
	default:
		return string(t)
	}
}

// ParseTestName resolves a test identifier, returning false if unknown
func ParseTestName(s string) (TestName, bool) {
	for _, t := range AllTests {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ============================================================================
// RESULTS
// ============================================================================

// Verdict is the common base shared by every test result.
// DegreesOfFreedom is zero for tests that are not chi-square based.
type Verdict struct {
	TestName         TestName `json:"test_name"`
	Alpha            float64  `json:"alpha"`
	SampleSize       int      `json:"sample_size"`
	Statistic        float64  `json:"statistic"`
	DegreesOfFreedom int      `json:"degrees_of_freedom,omitempty"`
	CriticalValue    float64  `json:"critical_value"`
	PValue           float64  `json:"p_value"`
	RejectNull       bool     `json:"reject_null"`
}

// Result is implemented by every per-test result payload
type Result interface {
	Verdict() Verdict
	Summary() Summary
}

// Summary is the flat projection consumed by the summary view and reports
type Summary struct {
	TestName      TestName `json:"test_name"`
	Title         string   `json:"title"`
	Alpha         float64  `json:"alpha"`
	Statistic     float64  `json:"statistic"`
	CriticalValue float64  `json:"critical_value"`
	PValue        float64  `json:"p_value"`
	RejectNull    bool     `json:"reject_null"`
	Error         string   `json:"error,omitempty"`
}

// SummaryOf projects a verdict into a summary row
func SummaryOf(v Verdict) Summary {
	return Summary{
		TestName:      v.TestName,
		Title:         v.TestName.DisplayName(),
		Alpha:         v.Alpha,
		Statistic:     v.Statistic,
		CriticalValue: v.CriticalValue,
		PValue:        v.PValue,
		RejectNull:    v.RejectNull,
	}
}

// FailedSummary builds the summary row for a test that returned an error
func FailedSummary(name TestName, alpha float64, err error) Summary {
	return Summary{
		TestName: name,
		Title:    name.DisplayName(),
		Alpha:    alpha,
		Error:    err.Error(),
	}
}

// UniformityResult holds the chi-square uniformity test outcome
type UniformityResult struct {
	Base          Verdict   `json:"verdict"`
	Bounds        []float64 `json:"bounds"`
	Observed      []int     `json:"observed"`
	Expected      float64   `json:"expected"`
	Contributions []float64 `json:"contributions"`
	Excluded      int       `json:"excluded"`
	Tabulated     bool      `json:"tabulated"`
}

func (r *UniformityResult) Verdict() Verdict { return r.Base }
func (r *UniformityResult) Summary() Summary { return SummaryOf(r.Base) }

// KolmogorovSmirnovResult holds the KS test outcome. Statistic is the
// interval-bucketed D; SampleStatistic and PValue come from the full
// empirical CDF of the min-max normalised samples.
type KolmogorovSmirnovResult struct {
	Base                  Verdict   `json:"verdict"`
	Bounds                []float64 `json:"bounds"`
	Observed              []int     `json:"observed"`
	CumulativeObserved    []float64 `json:"cumulative_observed"`
	CumulativeTheoretical []float64 `json:"cumulative_theoretical"`
	Differences           []float64 `json:"differences"`
	MaxDifferenceIndex    int       `json:"max_difference_index"`
	KAlpha                float64   `json:"k_alpha"`
	SampleStatistic       float64   `json:"sample_statistic"`
}

func (r *KolmogorovSmirnovResult) Verdict() Verdict { return r.Base }
func (r *KolmogorovSmirnovResult) Summary() Summary { return SummaryOf(r.Base) }

// RunsAboveBelowResult holds the run-count test around the 0.5 threshold
type RunsAboveBelowResult struct {
	Base         Verdict `json:"verdict"`
	Threshold    float64 `json:"threshold"`
	Above        int     `json:"n1"`
	Below        int     `json:"n2"`
	Runs         int     `json:"runs"`
	ExpectedRuns float64 `json:"expected_runs"`
	Variance     float64 `json:"variance"`
}

func (r *RunsAboveBelowResult) Verdict() Verdict { return r.Base }

// Summary reports |Z| as the statistic
func (r *RunsAboveBelowResult) Summary() Summary {
	s := SummaryOf(r.Base)
	if s.Statistic < 0 {
		s.Statistic = -s.Statistic
	}
	return s
}

// RunsUpDownResult holds the ascending/descending run-count test
type RunsUpDownResult struct {
	Base          Verdict     `json:"verdict"`
	Runs          int         `json:"runs"`
	Mean          float64     `json:"mean"`
	Variance      float64     `json:"variance"`
	StdDev        float64     `json:"std_dev"`
	MaxRunLength  int         `json:"max_run_length"`
	LengthCounts  map[int]int `json:"length_counts"`
	RunLengthsSum int         `json:"run_lengths_sum"`
}

func (r *RunsUpDownResult) Verdict() Verdict { return r.Base }
func (r *RunsUpDownResult) Summary() Summary { return SummaryOf(r.Base) }

// RunLengthResult holds either run-length distribution test. SampleCount is
// the N used in the expected frequencies; SignCount is the length of the
// sign sequence the runs were taken from, which is shorter than SampleCount
// for the comparison variant. Above and Below are only populated by the
// threshold variant. Overflowed lists the
// run lengths whose expected frequency could not be represented and was
// taken as zero.
type RunLengthResult struct {
	Base        Verdict    `json:"verdict"`
	Categories  []Category `json:"categories"`
	Groups      []Group    `json:"groups"`
	TotalRuns   int        `json:"total_runs"`
	SampleCount int        `json:"sample_count"`
	SignCount   int        `json:"sign_count"`
	Above       int        `json:"n1,omitempty"`
	Below       int        `json:"n2,omitempty"`
	Overflowed  []int      `json:"overflowed,omitempty"`
}

func (r *RunLengthResult) Verdict() Verdict { return r.Base }
func (r *RunLengthResult) Summary() Summary { return SummaryOf(r.Base) }
