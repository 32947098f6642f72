package notify

import (
	"context"
	"time"
)

// =============================================================================
// Notification Types
// =============================================================================

// EventType represents the type of resolution event.
type EventType string

// Event type constants.
const (
	EventResolutionStarted EventType = "resolution_started"
	EventResolutionSkipped EventType = "resolution_skipped"
	EventProjectLoaded     EventType = "project_loaded"
	EventResolutionBound   EventType = "resolution_bound"
	EventResolutionFailed  EventType = "resolution_failed"
	EventIDEReconciled     EventType = "ide_reconciled"
	EventSettingsChanged   EventType = "settings_changed"
)

// Severity constants for notifications.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes a resolution event for notification.
type Event struct {
	Type         EventType      `json:"type"`
	ResolutionID string         `json:"resolution_id"`
	Project      string         `json:"project,omitempty"`
	Source       string         `json:"source,omitempty"`
	Message      string         `json:"message"`
	Severity     string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp    time.Time      `json:"timestamp"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier sends notifications about resolution events.
type Notifier interface {
	// Notify sends a notification. A failing notifier must not fail the
	// resolution that emitted the event.
	Notify(ctx context.Context, event Event) error
}

// =============================================================================
// Context Injection
// =============================================================================

type serviceContextKey string

const notifierServiceKey serviceContextKey = "mvnsettings.notifier"

// WithNotifier adds a Notifier to the context.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierServiceKey, n)
}

// NotifierFromContext extracts the Notifier from context.
// Returns nil if no notifier is configured.
func NotifierFromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierServiceKey).(Notifier); ok {
		return n
	}
	return nil
}
