package app

import (
	"context"
	"fmt"
	"log"
	"time"

	statsrand "gorandtest/adapters/stats/randomness"
	"gorandtest/domain/core"
	"gorandtest/domain/randomness"
	"gorandtest/domain/run"
	apperrors "gorandtest/internal/errors"
	"gorandtest/internal/profiling"
	"gorandtest/ports"
)

// Version is recorded in run fingerprints; set with -ldflags at build time
var Version = "dev"

// ServiceConfig holds battery defaults applied when a request leaves them unset
type ServiceConfig struct {
	Alpha         float64
	Intervals     int
	Tests         []randomness.TestName
	MaxConcurrent int64
	MaxSamples    int
}

// RunRequest overrides the service defaults for one run. Zero values keep
// the defaults.
type RunRequest struct {
	Alpha     float64
	Intervals int
	Tests     []randomness.TestName
}

// BatteryService loads samples, runs the battery and assembles a report
type BatteryService struct {
	config  ServiceConfig
	metrics ports.MetricsRecorder
	tracer  randomness.Tracer
	events  ports.EventPublisher
}

// NewBatteryService creates a battery service. A nil recorder or tracer
// disables that concern.
func NewBatteryService(cfg ServiceConfig, metrics ports.MetricsRecorder, tracer randomness.Tracer) *BatteryService {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if tracer == nil {
		tracer = randomness.NopTracer{}
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = statsrand.DefaultAlpha
	}
	if cfg.Intervals == 0 {
		cfg.Intervals = statsrand.DefaultIntervals
	}
	return &BatteryService{config: cfg, metrics: metrics, tracer: tracer, events: ports.NopPublisher{}}
}

// WithEvents sets the publisher that receives run progress events
func (s *BatteryService) WithEvents(events ports.EventPublisher) *BatteryService {
	if events != nil {
		s.events = events
	}
	return s
}

// Run loads samples from source and runs the battery over them
func (s *BatteryService) Run(ctx context.Context, source ports.SampleSource, req RunRequest) (*randomness.Report, error) {
	set, err := source.LoadSamples(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.WrapCode(apperrors.CodeInvalidInput, err, "failed to load samples")
	}
	return s.RunSamples(ctx, set, req)
}

// RunSamples runs the battery over an already loaded sample set. Individual
// test failures are reported in their entries; only invalid requests fail
// the whole run.
func (s *BatteryService) RunSamples(ctx context.Context, set *randomness.SampleSet, req RunRequest) (*randomness.Report, error) {
	cfg := s.resolve(req)
	if err := randomness.ValidateAlpha(cfg.Alpha); err != nil {
		return nil, apperrors.WrapCode(apperrors.CodeValidationError, err, "invalid alpha")
	}
	if cfg.Intervals < 2 {
		return nil, apperrors.ValidationError(fmt.Sprintf("intervals must be at least 2, got %d", cfg.Intervals))
	}
	if set.Len() == 0 {
		return nil, apperrors.InvalidInput("no samples to test")
	}
	if s.config.MaxSamples > 0 && set.Len() > s.config.MaxSamples {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%d samples exceeds limit %d", set.Len(), s.config.MaxSamples))
	}

	runID := core.NewRunID()
	completed := 0
	var total int
	battery, err := statsrand.NewBattery(set.Values, statsrand.BatteryConfig{
		Alpha:         cfg.Alpha,
		Intervals:     cfg.Intervals,
		Tests:         cfg.Tests,
		MaxConcurrent: cfg.MaxConcurrent,
		Tracer:        s.tracer,
		OnEntry: func(entry statsrand.Entry) {
			completed++
			summary := entry.Summary
			s.events.Publish(ports.RunEvent{
				RunID:     runID,
				EventType: ports.EventTestCompleted,
				Test:      entry.Name,
				Progress:  float64(completed) / float64(total),
				Summary:   &summary,
				Timestamp: core.Now(),
			})
		},
	})
	if err != nil {
		return nil, apperrors.WrapCode(apperrors.CodeValidationError, err, "invalid test selection")
	}
	total = len(battery.Tests())

	profile := profiling.Profile(set)
	fingerprint := run.NewRunFingerprint(profile.Hash, cfg.Alpha, cfg.Intervals, battery.Tests(), Version)

	report := &randomness.Report{
		RunID:       runID,
		Fingerprint: fingerprint.Fingerprint,
		StartedAt:   core.Now(),
		Source:      set.Source,
		Column:      set.Column,
		Alpha:       cfg.Alpha,
		Intervals:   cfg.Intervals,
		Profile:     profile,
	}

	log.Printf("[BatteryService] Run %s: %d samples, %d tests, alpha=%.4f",
		report.RunID, set.Len(), len(battery.Tests()), cfg.Alpha)

	s.events.Publish(ports.RunEvent{RunID: runID, EventType: ports.EventRunStarted, Timestamp: report.StartedAt})

	started := time.Now()
	for _, entry := range battery.Run(ctx) {
		report.Entries = append(report.Entries, randomness.ReportEntry{
			Name:       entry.Name,
			Summary:    entry.Summary,
			Result:     entry.Result,
			DurationMs: float64(entry.Duration.Microseconds()) / 1000,
		})
		s.metrics.RecordTest(entry.Name, outcome(entry), entry.Duration)
		if entry.Err != nil {
			log.Printf("[BatteryService] Run %s: %s failed: %v", runID, entry.Name, entry.Err)
		}
	}
	elapsed := time.Since(started)
	report.DurationMs = float64(elapsed.Microseconds()) / 1000
	s.metrics.RecordBattery(set.Len(), elapsed)

	s.events.Publish(ports.RunEvent{RunID: runID, EventType: ports.EventRunCompleted, Progress: 1, Timestamp: core.Now()})

	log.Printf("[BatteryService] Run %s completed in %v: %d rejected, %d failed",
		report.RunID, elapsed, report.Rejected(), report.Failed())

	return report, nil
}

func (s *BatteryService) resolve(req RunRequest) ServiceConfig {
	cfg := s.config
	if req.Alpha != 0 {
		cfg.Alpha = req.Alpha
	}
	if req.Intervals != 0 {
		cfg.Intervals = req.Intervals
	}
	if len(req.Tests) > 0 {
		cfg.Tests = req.Tests
	}
	return cfg
}

// Outcome labels used for metrics
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

func outcome(entry statsrand.Entry) string {
	switch {
	case entry.Failed():
		return OutcomeError
	case entry.Summary.RejectNull:
		return OutcomeRejected
	default:
		return OutcomeAccepted
	}
}
