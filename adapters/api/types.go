package api

import (
	"time"
)

// APIDataSource describes a remote JSON document holding a sample sequence
type APIDataSource struct {
	Name        string            `json:"name"`
	BaseURL     string            `json:"base_url"`
	Headers     map[string]string `json:"headers,omitempty"`
	QueryParams map[string]string `json:"query_params,omitempty"`

	AuthMethod string `json:"auth_method"` // "none", "bearer", "api_key", "basic"
	AuthToken  string `json:"-"`
	Username   string `json:"-"`
	Password   string `json:"-"`

	// DataPath is a gjson path to the samples array; "data.#.value" style
	// paths collect one field from an array of objects
	DataPath string        `json:"data_path"`
	Timeout  time.Duration `json:"timeout"`
}

// APIMetadata captures information about the last fetch
type APIMetadata struct {
	URL          string        `json:"url"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
	ContentType  string        `json:"content_type"`
	FetchedAt    time.Time     `json:"fetched_at"`
	RecordsCount int           `json:"records_count"`
}
