package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLevel("ERROR"))
	assert.Equal(t, LogLevelDebug, ParseLevel(" debug "))
	assert.Equal(t, LogLevelTrace, ParseLevel("TRACE"))
	assert.Equal(t, LogLevelInfo, ParseLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLevel("verbose"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LogLevelInfo, &buf)

	logger.Info("battery %d", 1)
	logger.Debug("hidden")
	logger.Error("failed: %s", "x")

	assert.Equal(t, "[INFO] battery 1\n[ERROR] failed: x\n", buf.String())
	assert.True(t, logger.Enabled(LogLevelWarn))
	assert.False(t, logger.Enabled(LogLevelTrace))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "INFO", LogLevel(42).String())
}
