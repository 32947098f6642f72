// Package notify publishes settings resolution events.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: A resolution event with type, message and metadata
//   - EventType: Type of event (started, bound, failed, etc.)
//
// Implementations:
//   - LogNotifier: Logs events through slog
//   - WebhookNotifier: Posts events as JSON to an HTTP endpoint
//   - MultiNotifier: Fans out to several notifiers
//   - NopNotifier: Discards events
//
// Example usage:
//
//	notifier := notify.NewMultiNotifier(
//	    notify.NewLogNotifier(logger),
//	    notify.NewWebhookNotifier(url, map[string]string{"Authorization": token}),
//	)
//	injector := building.NewInjector(building.WithNotifier(notifier))
package notify
