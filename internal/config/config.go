package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gorandtest/domain/randomness"
	"gorandtest/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Battery  BatteryConfig
	Server   ServerConfig
	Input    InputConfig
	Metrics  MetricsConfig
	LogLevel string
}

// BatteryConfig holds the default test parameters
type BatteryConfig struct {
	Alpha         float64
	Intervals     int
	Tests         []randomness.TestName
	MaxConcurrent int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// InputConfig holds sample source settings
type InputConfig struct {
	File       string
	Sheet      string
	Column     string
	URL        string
	JSONPath   string
	Token      string
	MaxSamples int
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	batteryConfig, err := loadBatteryConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load battery configuration")
	}
	config.Battery = *batteryConfig

	config.Server = *loadServerConfig()
	config.Input = *loadInputConfig()
	config.Metrics = MetricsConfig{
		Enabled: getEnvBoolOrDefault("METRICS_ENABLED", true),
	}
	config.LogLevel = strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO"))

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadBatteryConfig() (*BatteryConfig, error) {
	tests, err := ParseTests(os.Getenv("TESTS"))
	if err != nil {
		return nil, err
	}

	return &BatteryConfig{
		Alpha:         getEnvFloatOrDefault("ALPHA", 0.05),
		Intervals:     getEnvIntOrDefault("INTERVALS", 10),
		Tests:         tests,
		MaxConcurrent: getEnvIntOrDefault("MAX_CONCURRENT_TESTS", len(randomness.AllTests)),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ReadTimeout:     getEnvDurationOrDefault("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvDurationOrDefault("HTTP_WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func loadInputConfig() *InputConfig {
	return &InputConfig{
		File:       getEnvOrDefault("INPUT_FILE", ""),
		Sheet:      getEnvOrDefault("INPUT_SHEET", ""),
		Column:     getEnvOrDefault("INPUT_COLUMN", ""),
		URL:        getEnvOrDefault("INPUT_URL", ""),
		JSONPath:   getEnvOrDefault("INPUT_JSON_PATH", ""),
		Token:      getEnvOrDefault("INPUT_TOKEN", ""),
		MaxSamples: getEnvIntOrDefault("MAX_SAMPLES", 1_000_000),
	}
}

// Validate checks value ranges that the environment parser cannot
func (c *Config) Validate() error {
	if err := randomness.ValidateAlpha(c.Battery.Alpha); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("ALPHA must be in (0,1), got %v", c.Battery.Alpha))
	}
	if c.Battery.Intervals < 2 {
		return errors.ConfigInvalid(fmt.Sprintf("INTERVALS must be at least 2, got %d", c.Battery.Intervals))
	}
	if c.Battery.MaxConcurrent < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("MAX_CONCURRENT_TESTS must be at least 1, got %d", c.Battery.MaxConcurrent))
	}
	if c.Input.MaxSamples < 0 {
		return errors.ConfigInvalid("MAX_SAMPLES cannot be negative")
	}
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	return nil
}

// ParseTests resolves a comma-separated list of test names. An empty list
// selects every test.
func ParseTests(list string) ([]randomness.TestName, error) {
	var tests []randomness.TestName
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		t, ok := randomness.ParseTestName(name)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("unknown test %q", name))
		}
		tests = append(tests, t)
	}
	return tests, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
