package randomness

import (
	"errors"
	"fmt"
)

// Test errors - every failure returned by a test wraps one of these
var (
	ErrInsufficientSampleSize = errors.New("insufficient sample size")
	ErrDegenerateInput        = errors.New("degenerate input")
	ErrInsufficientGroups     = errors.New("insufficient frequency groups")
	ErrNumericOverflow        = errors.New("numeric overflow")
	ErrInvalidParameter       = errors.New("invalid parameter")
)

// NewSampleSizeError reports fewer observations than a test requires
func NewSampleSizeError(test TestName, got, min int) error {
	return fmt.Errorf("%w: %s needs at least %d samples, got %d", ErrInsufficientSampleSize, test, min, got)
}

// NewDegenerateError reports a sign category that is empty when both are required
func NewDegenerateError(test TestName, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrDegenerateInput, test, reason)
}

// NewGroupsError reports fewer than two frequency groups after grouping
func NewGroupsError(groups int) error {
	return fmt.Errorf("%w: chi-square needs at least 2 groups, have %d", ErrInsufficientGroups, groups)
}

// NewParameterError reports an out-of-range test parameter
func NewParameterError(name string, value interface{}) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidParameter, name, value)
}

// ValidateAlpha checks that a significance level lies in (0,1)
func ValidateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return NewParameterError("alpha", alpha)
	}
	return nil
}

// NewOverflowError reports an expected-frequency term that exceeded float range
func NewOverflowError(test TestName, length int) error {
	return fmt.Errorf("%w: %s expected frequency for run length %d", ErrNumericOverflow, test, length)
}
