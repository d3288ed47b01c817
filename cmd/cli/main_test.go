package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gorandtest/domain/randomness"
	"gorandtest/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = testkit.FortySamples()

func writeSamplesCSV(t *testing.T) string {
	t.Helper()
	path, err := testkit.WriteCSV(t.TempDir(), "x_value", samples)
	require.NoError(t, err)
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TESTS", "")
	t.Setenv("LOG_LEVEL", "INFO")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand_Text(t *testing.T) {
	out, err := execute(t, "run", writeSamplesCSV(t), "--column", "x_value")
	require.NoError(t, err)
	assert.Contains(t, out, "RANDOMNESS TEST REPORT")
	assert.Contains(t, out, "x_value")
	assert.Contains(t, out, "1 of 6 tests rejected, 0 failed")
}

func TestRunCommand_JSONToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.json")
	_, err := execute(t, "run", writeSamplesCSV(t),
		"--format", "json", "--tests", "runs_up_down,kolmogorov_smirnov", "--alpha", "0.1", "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var rep struct {
		Alpha   float64 `json:"alpha"`
		Entries []struct {
			Name string `json:"test_name"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, 0.1, rep.Alpha)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, string(randomness.TestRunsUpDown), rep.Entries[0].Name)
}

func TestRunCommand_InputFileFromEnv(t *testing.T) {
	t.Setenv("INPUT_FILE", writeSamplesCSV(t))
	out, err := execute(t, "run", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Randomness Test Report")
}

func TestRunCommand_Errors(t *testing.T) {
	t.Setenv("INPUT_FILE", "")
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, "no input file")

	_, err = execute(t, "run", writeSamplesCSV(t), "--format", "pdf")
	assert.ErrorContains(t, err, "unknown report format")

	_, err = execute(t, "run", writeSamplesCSV(t), "--tests", "gap")
	assert.ErrorContains(t, err, "unknown test")

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFetchCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"samples": samples},
		})
	}))
	defer server.Close()

	out, err := execute(t, "fetch", server.URL, "--path", "data.samples", "--token", "secret", "--tests", "runs_above_below")
	require.NoError(t, err)
	assert.Contains(t, out, "Runs Above/Below 0.5")
	assert.Contains(t, out, "0 of 1 tests rejected")
}

func TestTestsCommand(t *testing.T) {
	out, err := execute(t, "tests")
	require.NoError(t, err)
	for _, name := range randomness.AllTests {
		assert.Contains(t, out, string(name))
	}
}
