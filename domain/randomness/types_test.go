package randomness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTestName(t *testing.T) {
	for _, name := range AllTests {
		got, ok := ParseTestName(string(name))
		assert.True(t, ok)
		assert.Equal(t, name, got)
	}

	_, ok := ParseTestName("poker")
	assert.False(t, ok)
}

func TestSummaryOf(t *testing.T) {
	v := Verdict{
		TestName:      TestRunsUpDown,
		Alpha:         0.05,
		Statistic:     1.2,
		CriticalValue: 1.96,
		PValue:        0.23,
	}
	s := SummaryOf(v)
	assert.Equal(t, "Runs Up/Down", s.Title)
	assert.Equal(t, 1.2, s.Statistic)
	assert.False(t, s.RejectNull)
	assert.Empty(t, s.Error)
}

func TestRunsAboveBelowSummaryUsesAbsoluteZ(t *testing.T) {
	r := &RunsAboveBelowResult{Base: Verdict{TestName: TestRunsAboveBelow, Statistic: -2.5}}
	assert.Equal(t, -2.5, r.Verdict().Statistic)
	assert.Equal(t, 2.5, r.Summary().Statistic)
}

func TestFailedSummary(t *testing.T) {
	err := NewGroupsError(1)
	s := FailedSummary(TestRunLengthUpDown, 0.05, err)
	assert.Equal(t, err.Error(), s.Error)
	assert.Equal(t, "Run Length Up/Down", s.Title)
}

func TestErrorConstructorsWrapSentinels(t *testing.T) {
	assert.True(t, errors.Is(NewSampleSizeError(TestRunsUpDown, 1, 2), ErrInsufficientSampleSize))
	assert.True(t, errors.Is(NewDegenerateError(TestRunsAboveBelow, "x"), ErrDegenerateInput))
	assert.True(t, errors.Is(NewGroupsError(1), ErrInsufficientGroups))
	assert.True(t, errors.Is(NewOverflowError(TestRunLengthUpDown, 200), ErrNumericOverflow))
	assert.True(t, errors.Is(NewParameterError("alpha", 2.0), ErrInvalidParameter))
}

func TestValidateAlpha(t *testing.T) {
	assert.NoError(t, ValidateAlpha(0.05))
	assert.Error(t, ValidateAlpha(0))
	assert.Error(t, ValidateAlpha(1))
	assert.Error(t, ValidateAlpha(-0.1))
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "+", Plus.String())
	assert.Equal(t, "-", Minus.String())
}
