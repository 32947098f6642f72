package notify

import (
	"context"
	"errors"
	"log/slog"
)

// =============================================================================
// MultiNotifier
// =============================================================================

// MultiNotifier fans each event out to every notifier in order. A failing
// notifier does not stop the others; all failures are joined into the
// returned error.
type MultiNotifier struct {
	Notifiers []Notifier
	Logger    *slog.Logger
}

// NewMultiNotifier creates a fan-out notifier. Nil entries are dropped.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{Logger: slog.Default()}
	for _, n := range notifiers {
		m.Add(n)
	}
	return m
}

// Add appends a notifier. A nil notifier is ignored.
func (m *MultiNotifier) Add(notifier Notifier) {
	if notifier != nil {
		m.Notifiers = append(m.Notifiers, notifier)
	}
}

// Notify implements Notifier.
func (m *MultiNotifier) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m.Notifiers {
		err := n.Notify(ctx, event)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if m.Logger != nil {
			m.Logger.Warn("notifier failed", "error", err, "event_type", event.Type, "resolution_id", event.ResolutionID)
		}
	}
	return errors.Join(errs...)
}

// =============================================================================
// NopNotifier
// =============================================================================

// NopNotifier drops every event.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(context.Context, Event) error { return nil }
