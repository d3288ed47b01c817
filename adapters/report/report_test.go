package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	statsrand "gorandtest/adapters/stats/randomness"
	"gorandtest/domain/core"
	"gorandtest/domain/randomness"
	"gorandtest/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = testkit.FortySamples()

func fixtureReport(t *testing.T) *randomness.Report {
	t.Helper()
	battery, err := statsrand.NewBattery(samples, statsrand.BatteryConfig{})
	require.NoError(t, err)

	r := &randomness.Report{
		RunID:     core.NewRunID(),
		StartedAt: core.Now(),
		Source:    "fixture.csv",
		Column:    "x_value",
		Alpha:     0.05,
		Intervals: 10,
		Profile:   randomness.SampleProfile{Count: len(samples), Hash: core.SampleHash(samples)},
	}
	for _, e := range battery.Run(context.Background()) {
		r.Entries = append(r.Entries, randomness.ReportEntry{Name: e.Name, Summary: e.Summary, Result: e.Result})
	}
	failure := randomness.NewDegenerateError(randomness.TestRunsAboveBelow, "no samples below threshold")
	r.Entries = append(r.Entries, randomness.ReportEntry{
		Name:    randomness.TestRunsAboveBelow,
		Summary: randomness.FailedSummary(randomness.TestRunsAboveBelow, 0.05, failure),
	})
	return r
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":         FormatText,
		"TEXT":     FormatText,
		"json":     FormatJSON,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
		" html ":   FormatHTML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, "text/html; charset=utf-8", FormatHTML.ContentType())
}

func TestWriteText(t *testing.T) {
	r := fixtureReport(t)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "RANDOMNESS TEST REPORT")
	assert.Contains(t, out, "fixture.csv")
	for _, name := range randomness.AllTests {
		assert.Contains(t, out, name.DisplayName())
	}
	assert.Contains(t, out, "reject H0")
	assert.Contains(t, out, "error: degenerate input")
	assert.Contains(t, out, "== Chi-Square Uniformity ==")
	assert.Contains(t, out, "[0.3000, 0.4000)")
	assert.Contains(t, out, "1 of 7 tests rejected, 1 failed")
}

func TestMarkdown(t *testing.T) {
	r := fixtureReport(t)
	md := Markdown(r)

	assert.True(t, strings.HasPrefix(md, "# Randomness Test Report"))
	assert.Contains(t, md, "| Test | Statistic | Critical | p-value | Decision |")
	assert.Contains(t, md, "## Run Length Above/Below 0.5")
	assert.Contains(t, md, "### Groups")
	assert.Contains(t, md, `x\_value`)
	// failed entries get a summary row but no detail section
	assert.Equal(t, 1, strings.Count(md, "## Runs Above/Below 0.5\n"))
}

func TestHTML(t *testing.T) {
	r := fixtureReport(t)
	page := string(HTML(r))

	assert.Contains(t, page, "<html")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<h1")
	assert.Contains(t, page, r.RunID.String())
}

func TestRender_JSON(t *testing.T) {
	r := fixtureReport(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "fixture.csv", decoded["source"])
	entries, ok := decoded["entries"].([]interface{})
	require.True(t, ok)
	assert.Len(t, entries, 7)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, fixtureReport(t), Format("pdf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
