package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrWebhookStatus is wrapped when the endpoint answers with an error status.
var ErrWebhookStatus = errors.New("webhook rejected event")

// Webhook delivery defaults.
const (
	DefaultWebhookTimeout    = 10 * time.Second
	DefaultWebhookRetries    = 3
	DefaultWebhookRetryWait  = 500 * time.Millisecond
	maxWebhookRetryAfterWait = 30 * time.Second
)

// =============================================================================
// WebhookNotifier
// =============================================================================

// WebhookNotifier posts each event as JSON to an HTTP endpoint. Network
// errors, 429 and 5xx answers are retried with exponential backoff.
type WebhookNotifier struct {
	URL     string
	Headers map[string]string
	Client  *http.Client

	// MaxRetries is the number of attempts per event.
	MaxRetries int

	// RetryWait is the wait before the second attempt; it doubles for
	// each further attempt unless the endpoint sends Retry-After.
	RetryWait time.Duration
}

// NewWebhookNotifier creates a webhook notifier.
func NewWebhookNotifier(url string, headers map[string]string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:        url,
		Headers:    headers,
		Client:     &http.Client{Timeout: DefaultWebhookTimeout},
		MaxRetries: DefaultWebhookRetries,
		RetryWait:  DefaultWebhookRetryWait,
	}
}

// Notify implements Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attempts := max(n.MaxRetries, 1)
	for attempt := range attempts {
		wait, err := n.send(ctx, event.Type, body, attempt)
		if err == nil {
			return nil
		}
		if wait < 0 || attempt == attempts-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// send makes one delivery attempt. A non-negative wait means the failure
// may be retried after it.
func (n *WebhookNotifier) send(ctx context.Context, typ EventType, body []byte, attempt int) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return -1, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range n.Headers {
		req.Header.Set(k, v)
	}

	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return n.backoff(attempt), fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 400 {
		return 0, nil
	}
	err = fmt.Errorf("webhook %s returned %d: %w", typ, resp.StatusCode, ErrWebhookStatus)
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
		return -1, err
	}
	if s := resp.Header.Get("Retry-After"); s != "" {
		if seconds, convErr := strconv.Atoi(s); convErr == nil {
			return min(time.Duration(seconds)*time.Second, maxWebhookRetryAfterWait), err
		}
	}
	return n.backoff(attempt), err
}

func (n *WebhookNotifier) backoff(attempt int) time.Duration {
	return n.RetryWait * time.Duration(1<<attempt)
}
