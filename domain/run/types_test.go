package run

import (
	"testing"

	"gorandtest/domain/core"
	"gorandtest/domain/randomness"
)

var baseTests = []randomness.TestName{randomness.TestRunsUpDown, randomness.TestKolmogorovSmirnov}

func TestRunFingerprint_Deterministic(t *testing.T) {
	sampleHash := core.SampleHash([]float64{0.1, 0.2, 0.3})

	fp1 := NewRunFingerprint(sampleHash, 0.05, 10, baseTests, "1.0.0")
	fp2 := NewRunFingerprint(sampleHash, 0.05, 10, baseTests, "1.0.0")

	if fp1.Fingerprint != fp2.Fingerprint {
		t.Errorf("Fingerprints not identical: %s vs %s", fp1.Fingerprint, fp2.Fingerprint)
	}
	if fp1.SampleHash != sampleHash {
		t.Errorf("SampleHash mismatch: %s vs %s", fp1.SampleHash, sampleHash)
	}
	if fp1.Intervals != 10 || fp1.Alpha != 0.05 {
		t.Errorf("parameters not recorded: %+v", fp1)
	}
	if err := fp1.Validate(); err != nil {
		t.Errorf("Fingerprint validation failed: %v", err)
	}
}

func TestRunFingerprint_Unique(t *testing.T) {
	sampleHash := core.SampleHash([]float64{0.1, 0.2, 0.3})
	base := NewRunFingerprint(sampleHash, 0.05, 10, baseTests, "1.0.0")

	testCases := []struct {
		name string
		fp   RunFingerprint
	}{
		{"different samples", NewRunFingerprint(core.SampleHash([]float64{0.1, 0.3, 0.2}), 0.05, 10, baseTests, "1.0.0")},
		{"different alpha", NewRunFingerprint(sampleHash, 0.01, 10, baseTests, "1.0.0")},
		{"different intervals", NewRunFingerprint(sampleHash, 0.05, 20, baseTests, "1.0.0")},
		{"different test order", NewRunFingerprint(sampleHash, 0.05, 10,
			[]randomness.TestName{randomness.TestKolmogorovSmirnov, randomness.TestRunsUpDown}, "1.0.0")},
		{"different version", NewRunFingerprint(sampleHash, 0.05, 10, baseTests, "1.0.1")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.fp.Fingerprint == base.Fingerprint {
				t.Errorf("Fingerprint should be different for %s", tc.name)
			}
		})
	}
}

func TestRunFingerprint_Validate(t *testing.T) {
	if err := (RunFingerprint{}).Validate(); err == nil {
		t.Error("empty fingerprint should not validate")
	}
	fp := NewRunFingerprint(core.SampleHash(nil), 0.05, 10, nil, "1.0.0")
	if err := fp.Validate(); err == nil {
		t.Error("fingerprint without tests should not validate")
	}
}
