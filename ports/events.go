package ports

import (
	"gorandtest/domain/core"
	"gorandtest/domain/randomness"
)

// Run event types
const (
	EventRunStarted    = "run_started"
	EventTestCompleted = "test_completed"
	EventRunCompleted  = "run_completed"
)

// RunEvent reports progress of one battery run
type RunEvent struct {
	RunID     core.RunID          `json:"run_id"`
	EventType string              `json:"event_type"`
	Test      randomness.TestName `json:"test,omitempty"`
	Progress  float64             `json:"progress"`
	Summary   *randomness.Summary `json:"summary,omitempty"`
	Timestamp core.Timestamp      `json:"timestamp"`
}

// EventPublisher receives run progress events. Publish must not block.
type EventPublisher interface {
	Publish(event RunEvent)
}

// NopPublisher discards every event
type NopPublisher struct{}

func (NopPublisher) Publish(RunEvent) {}
