package testutil

import (
	"context"
	"sync"

	"github.com/randalmurphal/mvnsettings/notify"
)

// RecordingNotifier records every event it receives.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
	Err    error
}

// Notify implements notify.Notifier.
func (r *RecordingNotifier) Notify(_ context.Context, event notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.Err
}

// Events returns a copy of the recorded events.
func (r *RecordingNotifier) Events() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in order.
func (r *RecordingNotifier) Types() []notify.EventType {
	events := r.Events()
	out := make([]notify.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}
