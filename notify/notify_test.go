package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Event Type Tests
// =============================================================================

func TestEventTypes(t *testing.T) {
	// Verify all event types are unique
	types := []EventType{
		EventResolutionStarted,
		EventResolutionSkipped,
		EventProjectLoaded,
		EventResolutionBound,
		EventResolutionFailed,
		EventIDEReconciled,
		EventSettingsChanged,
	}

	seen := make(map[EventType]bool)
	for _, et := range types {
		if seen[et] {
			t.Errorf("duplicate event type: %s", et)
		}
		seen[et] = true
	}
}

func TestSeverityLevels(t *testing.T) {
	// Verify severity levels are unique
	levels := []string{SeverityInfo, SeverityWarning, SeverityError}

	seen := make(map[string]bool)
	for _, s := range levels {
		if seen[s] {
			t.Errorf("duplicate severity: %s", s)
		}
		seen[s] = true
	}
}

// =============================================================================
// NopNotifier Tests
// =============================================================================

func TestNopNotifier(t *testing.T) {
	n := NopNotifier{}
	ctx := context.Background()

	err := n.Notify(ctx, Event{
		Type:    EventResolutionStarted,
		Message: "test",
	})

	if err != nil {
		t.Errorf("NopNotifier.Notify() error = %v, want nil", err)
	}
}

// =============================================================================
// LogNotifier Tests
// =============================================================================

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n := NewLogNotifier(logger)
	ctx := context.Background()

	event := Event{
		Type:         EventResolutionBound,
		ResolutionID: "res-123",
		Project:      "/work/app",
		Message:      "project settings bound",
		Severity:     SeverityInfo,
		Timestamp:    time.Now(),
	}

	err := n.Notify(ctx, event)
	if err != nil {
		t.Errorf("LogNotifier.Notify() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "project settings bound") {
		t.Errorf("Log output missing message: %s", output)
	}
	if !strings.Contains(output, "res-123") {
		t.Errorf("Log output missing resolution_id: %s", output)
	}
	if !strings.Contains(output, "project=/work/app") {
		t.Errorf("Log output missing project: %s", output)
	}
	if strings.Contains(output, "source=") {
		t.Errorf("Log output has empty source attribute: %s", output)
	}
}

func TestLogNotifier_Severity(t *testing.T) {
	tests := []struct {
		severity string
		wantLog  string
	}{
		{SeverityInfo, "level=INFO"},
		{SeverityWarning, "level=WARN"},
		{SeverityError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			n := NewLogNotifier(logger)

			err := n.Notify(context.Background(), Event{
				Type:     EventResolutionStarted,
				Message:  "test",
				Severity: tt.severity,
			})

			if err != nil {
				t.Errorf("Notify() error = %v", err)
			}

			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("Log output = %q, want to contain %q", buf.String(), tt.wantLog)
			}
		})
	}
}

func TestLogNotifier_NilLogger(t *testing.T) {
	n := NewLogNotifier(nil)
	if n.Logger == nil {
		t.Error("NewLogNotifier should use default logger when nil")
	}
}

// =============================================================================
// WebhookNotifier Tests
// =============================================================================

func TestWebhookNotifier(t *testing.T) {
	var receivedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}
		receivedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, nil)
	ctx := context.Background()

	event := Event{
		Type:         EventResolutionFailed,
		ResolutionID: "res-123",
		Source:       "/work/app/.mvn/settings.xml",
		Message:      "Webhook test",
		Severity:     SeverityError,
		Timestamp:    time.Now(),
	}

	err := n.Notify(ctx, event)
	if err != nil {
		t.Errorf("WebhookNotifier.Notify() error = %v", err)
	}

	var parsed Event
	if err := json.Unmarshal(receivedBody, &parsed); err != nil {
		t.Errorf("Failed to parse received body: %v", err)
	}
	if parsed.ResolutionID != "res-123" {
		t.Errorf("Received ResolutionID = %s, want res-123", parsed.ResolutionID)
	}
	if parsed.Type != EventResolutionFailed {
		t.Errorf("Received Type = %s, want %s", parsed.Type, EventResolutionFailed)
	}
}

func TestWebhookNotifier_CustomHeaders(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	headers := map[string]string{
		"Authorization": "Bearer test-token",
	}
	n := NewWebhookNotifier(server.URL, headers)

	err := n.Notify(context.Background(), Event{Type: EventResolutionStarted})
	if err != nil {
		t.Errorf("Notify() error = %v", err)
	}

	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q, want 'Bearer test-token'", receivedAuth)
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, nil)
	n.RetryWait = time.Millisecond
	err := n.Notify(context.Background(), Event{Type: EventResolutionStarted})

	if !errors.Is(err, ErrWebhookStatus) {
		t.Errorf("Notify() error = %v, want ErrWebhookStatus", err)
	}
	if got := attempts.Load(); got != DefaultWebhookRetries {
		t.Errorf("attempts = %d, want %d", got, DefaultWebhookRetries)
	}
}

func TestWebhookNotifier_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, nil)
	n.RetryWait = time.Millisecond
	err := n.Notify(context.Background(), Event{Type: EventResolutionStarted})

	if !errors.Is(err, ErrWebhookStatus) {
		t.Errorf("Notify() error = %v, want ErrWebhookStatus", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestWebhookNotifier_RecoversAfterRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, nil)
	if err := n.Notify(context.Background(), Event{Type: EventResolutionBound}); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestWebhookNotifier_NetworkError(t *testing.T) {
	n := NewWebhookNotifier("http://localhost:99999", nil) // Invalid port
	n.RetryWait = time.Millisecond
	err := n.Notify(context.Background(), Event{Type: EventResolutionStarted})

	if err == nil {
		t.Error("Notify() should return error for network failure")
	}
}

// =============================================================================
// MultiNotifier Tests
// =============================================================================

func TestMultiNotifier(t *testing.T) {
	var calls []string

	notifier1 := &mockNotifier{name: "n1", calls: &calls}
	notifier2 := &mockNotifier{name: "n2", calls: &calls}

	multi := NewMultiNotifier(notifier1, notifier2)

	err := multi.Notify(context.Background(), Event{Type: EventResolutionStarted})
	if err != nil {
		t.Errorf("MultiNotifier.Notify() error = %v", err)
	}

	if len(calls) != 2 {
		t.Errorf("Call count = %d, want 2", len(calls))
	}
	if calls[0] != "n1" || calls[1] != "n2" {
		t.Errorf("Calls = %v, want [n1, n2]", calls)
	}
}

func TestMultiNotifier_ContinuesOnError(t *testing.T) {
	var calls []string

	sinkDown := errors.New("sink down")
	notifier1 := &mockNotifier{name: "n1", calls: &calls, err: context.DeadlineExceeded}
	notifier2 := &mockNotifier{name: "n2", calls: &calls}
	notifier3 := &mockNotifier{name: "n3", calls: &calls, err: sinkDown}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	multi := NewMultiNotifier(notifier1, notifier2, notifier3)
	multi.Logger = logger

	err := multi.Notify(context.Background(), Event{Type: EventResolutionStarted})

	if !errors.Is(err, context.DeadlineExceeded) || !errors.Is(err, sinkDown) {
		t.Errorf("Notify() error = %v, want both failures joined", err)
	}
	if len(calls) != 3 {
		t.Errorf("Call count = %d, want 3 (all notifiers called)", len(calls))
	}
	if got := strings.Count(logBuf.String(), "notifier failed"); got != 2 {
		t.Errorf("logged %d failures, want 2", got)
	}
}

type mockNotifier struct {
	name  string
	calls *[]string
	err   error
}

func (m *mockNotifier) Notify(ctx context.Context, event Event) error {
	*m.calls = append(*m.calls, m.name)
	return m.err
}

// =============================================================================
// Context Injection Tests
// =============================================================================

func TestNotifierContextInjection(t *testing.T) {
	ctx := context.Background()

	// Without injection
	if NotifierFromContext(ctx) != nil {
		t.Error("NotifierFromContext should return nil without injection")
	}

	// With injection
	notifier := NopNotifier{}
	ctx = WithNotifier(ctx, notifier)

	if NotifierFromContext(ctx) == nil {
		t.Error("NotifierFromContext should not return nil after injection")
	}
}

func TestMultiNotifier_Add(t *testing.T) {
	var calls []string
	multi := NewMultiNotifier(nil)
	multi.Add(nil)
	multi.Add(&mockNotifier{name: "n1", calls: &calls})

	if err := multi.Notify(context.Background(), Event{Type: EventResolutionBound}); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
	if len(multi.Notifiers) != 1 || len(calls) != 1 {
		t.Errorf("Notifiers = %d, calls = %v, want 1 and [n1]", len(multi.Notifiers), calls)
	}
}
