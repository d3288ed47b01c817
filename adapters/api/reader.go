package api

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"gorandtest/domain/randomness"
	apperrors "gorandtest/internal/errors"
)

const upstreamName = "sample API"

// APIReader fetches a sample sequence from a REST endpoint
type APIReader struct {
	config     *APIDataSource
	limits     *APIAdapterConfig
	httpClient *http.Client
	last       APIMetadata
}

// NewAPIReader creates a new API reader for a data source
func NewAPIReader(source *APIDataSource, limits *APIAdapterConfig) *APIReader {
	if limits == nil {
		limits = DefaultAPIAdapterConfig()
	}
	timeout := source.Timeout
	if timeout <= 0 {
		timeout = limits.DefaultTimeout
	}
	return &APIReader{
		config: source,
		limits: limits,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient replaces the underlying client
func (r *APIReader) WithHTTPClient(client *http.Client) *APIReader {
	r.httpClient = client
	return r
}

// Metadata returns details of the most recent fetch
func (r *APIReader) Metadata() APIMetadata {
	return r.last
}

// LoadSamples retrieves the document and extracts the samples at DataPath
func (r *APIReader) LoadSamples(ctx context.Context) (*randomness.SampleSet, error) {
	startTime := time.Now()

	target, err := r.buildURL()
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := r.buildRequest(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError(upstreamName, fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.limits.MaxResponseBytes+1))
	if err != nil {
		return nil, apperrors.ExternalServiceError(upstreamName, fmt.Errorf("failed to read response: %w", err))
	}
	if int64(len(body)) > r.limits.MaxResponseBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", r.limits.MaxResponseBytes)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalServiceError(upstreamName, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body)))
	}

	values, dropped, err := ExtractSamples(body, r.config.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if r.limits.MaxSamples > 0 && len(values) > r.limits.MaxSamples {
		return nil, fmt.Errorf("response holds %d samples, limit is %d", len(values), r.limits.MaxSamples)
	}

	r.last = APIMetadata{
		URL:          target,
		StatusCode:   resp.StatusCode,
		ResponseTime: time.Since(startTime),
		ContentType:  resp.Header.Get("Content-Type"),
		FetchedAt:    startTime,
		RecordsCount: len(values),
	}
	log.Printf("[APIReader] Fetched %d samples from %s in %v", len(values), target, r.last.ResponseTime)

	return &randomness.SampleSet{
		Source:  target,
		Column:  r.config.DataPath,
		Values:  values,
		Dropped: dropped,
	}, nil
}

// buildURL appends the configured query parameters to the base URL
func (r *APIReader) buildURL() (string, error) {
	u, err := url.Parse(r.config.BaseURL)
	if err != nil {
		return "", err
	}
	if len(r.config.QueryParams) > 0 {
		q := u.Query()
		for k, v := range r.config.QueryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// buildRequest creates an HTTP request with authentication
func (r *APIReader) buildRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	for k, v := range r.config.Headers {
		req.Header.Set(k, v)
	}

	switch r.config.AuthMethod {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+r.config.AuthToken)
	case "api_key":
		req.Header.Set("X-API-Key", r.config.AuthToken)
	case "basic":
		req.SetBasicAuth(r.config.Username, r.config.Password)
	}

	return req, nil
}
