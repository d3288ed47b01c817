package core

import (
	"testing"
	"time"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	// Generate many IDs
	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{"run-123", RunID("run-123"), false},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseRunID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestSampleHash tests that sample fingerprints depend on order and value
func TestSampleHash(t *testing.T) {
	a := SampleHash([]float64{0.1, 0.2})
	if a != SampleHash([]float64{0.1, 0.2}) {
		t.Error("Expected identical samples to hash identically")
	}
	if a == SampleHash([]float64{0.2, 0.1}) {
		t.Error("Expected reordered samples to hash differently")
	}
	if len(a.Short()) != 12 {
		t.Errorf("Expected short hash of 12 characters, got %d", len(a.Short()))
	}
}

// TestTimestampJSON tests timestamp round trip through JSON
func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	data, err := ts.MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var back Timestamp
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !back.Time().Equal(ts.Time()) {
		t.Errorf("Expected %s, got %s", ts, back)
	}
}
