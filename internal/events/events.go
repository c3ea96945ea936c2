// Package events carries pipeline progress notifications from the runner to
// whoever is watching (the CLI reporter, tests).
package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event.
type EventType string

const (
	EventStepStarted EventType = "step.started"
	EventStepSkipped EventType = "step.skipped"
	EventStepSaved   EventType = "step.saved"
	EventStepFailed  EventType = "step.failed"
	EventRunComplete EventType = "run.complete"
)

// EventPayload is the interface all typed payloads implement.
type EventPayload interface {
	EventType() EventType
}

// StepStartedPayload signals that a step has no checkpoint and is executing.
type StepStartedPayload struct {
	Ordinal int    `json:"ordinal"`
	Total   int    `json:"total"`
	Title   string `json:"title"`
}

func (StepStartedPayload) EventType() EventType { return EventStepStarted }

// StepSkippedPayload signals that an existing checkpoint was reused.
type StepSkippedPayload struct {
	Ordinal  int    `json:"ordinal"`
	Artifact string `json:"artifact"`
}

func (StepSkippedPayload) EventType() EventType { return EventStepSkipped }

// StepSavedPayload signals that a step executed and its checkpoint was written.
type StepSavedPayload struct {
	Ordinal  int           `json:"ordinal"`
	Artifact string        `json:"artifact"`
	Duration time.Duration `json:"duration"`
}

func (StepSavedPayload) EventType() EventType { return EventStepSaved }

// StepFailedPayload signals a failed step; the run aborts after this event.
type StepFailedPayload struct {
	Ordinal     int    `json:"ordinal"`
	Artifact    string `json:"artifact"` // error artifact name
	Error       string `json:"error"`
	RateLimited bool   `json:"rate_limited"`
}

func (StepFailedPayload) EventType() EventType { return EventStepFailed }

// RunCompletePayload signals a fully successful pass and the final artifact.
type RunCompletePayload struct {
	RunID    string `json:"run_id"`
	Artifact string `json:"artifact"`
	Steps    int    `json:"steps"`
}

func (RunCompletePayload) EventType() EventType { return EventRunComplete }

// Event is a typed progress notification.
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   EventPayload `json:"payload"`
}

// NewEvent wraps a payload with identity and timestamp.
func NewEvent(payload EventPayload) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      payload.EventType(),
		Timestamp: time.Now(),
		Payload:   payload,
	}
}
