package api

import (
	"fmt"
	"time"
)

// APIAdapterConfig holds limits for remote sample ingestion
type APIAdapterConfig struct {
	DefaultTimeout   time.Duration `json:"default_timeout"`
	MaxResponseBytes int64         `json:"max_response_bytes"`
	MaxSamples       int           `json:"max_samples"`
}

// DefaultAPIAdapterConfig returns sensible defaults for remote ingestion
func DefaultAPIAdapterConfig() *APIAdapterConfig {
	return &APIAdapterConfig{
		DefaultTimeout:   30 * time.Second,
		MaxResponseBytes: 64 << 20,
		MaxSamples:       1_000_000,
	}
}

// Validate checks if the configuration is valid
func (c *APIAdapterConfig) Validate() error {
	if c.DefaultTimeout <= 0 {
		return &ValidationError{Field: "DefaultTimeout", Message: "must be positive"}
	}
	if c.MaxResponseBytes <= 0 {
		return &ValidationError{Field: "MaxResponseBytes", Message: "must be positive"}
	}
	if c.MaxSamples < 0 {
		return &ValidationError{Field: "MaxSamples", Message: "cannot be negative"}
	}
	return nil
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}
