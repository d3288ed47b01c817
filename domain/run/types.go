package run

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"gorandtest/domain/core"
	"gorandtest/domain/randomness"
)

// RunFingerprint identifies the inputs that fully determine a battery report.
// Two runs with equal fingerprints produce identical statistics.
type RunFingerprint struct {
	SampleHash  core.Hash             `json:"sample_hash"`
	Alpha       float64               `json:"alpha"`
	Intervals   int                   `json:"intervals"`
	Tests       []randomness.TestName `json:"tests"`
	CodeVersion string                `json:"code_version"`
	Fingerprint core.Hash             `json:"fingerprint"` // Hash of all above
}

// NewRunFingerprint creates a fingerprint from determinism parameters
func NewRunFingerprint(sampleHash core.Hash, alpha float64, intervals int,
	tests []randomness.TestName, codeVersion string) RunFingerprint {

	fingerprint := computeRunFingerprint(sampleHash, alpha, intervals, tests, codeVersion)

	return RunFingerprint{
		SampleHash:  sampleHash,
		Alpha:       alpha,
		Intervals:   intervals,
		Tests:       append([]randomness.TestName(nil), tests...),
		CodeVersion: codeVersion,
		Fingerprint: fingerprint,
	}
}

// computeRunFingerprint hashes the parameters in a fixed textual layout.
// Test order is significant since it fixes the entry order of the report.
func computeRunFingerprint(sampleHash core.Hash, alpha float64, intervals int,
	tests []randomness.TestName, codeVersion string) core.Hash {

	names := make([]string, len(tests))
	for i, t := range tests {
		names[i] = string(t)
	}
	data := fmt.Sprintf("samples:%s|alpha:%g|intervals:%d|tests:%s|code:%s",
		sampleHash, alpha, intervals, strings.Join(names, ","), codeVersion)

	hash := sha256.Sum256([]byte(data))
	return core.Hash(fmt.Sprintf("%x", hash))
}

// Validate checks if the fingerprint is complete
func (f RunFingerprint) Validate() error {
	if f.SampleHash.IsEmpty() {
		return fmt.Errorf("run fingerprint: sample_hash cannot be empty")
	}
	if len(f.Tests) == 0 {
		return fmt.Errorf("run fingerprint: tests cannot be empty")
	}
	if f.CodeVersion == "" {
		return fmt.Errorf("run fingerprint: code_version cannot be empty")
	}
	return nil
}
