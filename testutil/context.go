package testutil

import (
	"context"
	"testing"
)

// Context returns a context that ends with the test. When the test binary
// runs with -timeout the context also carries that deadline, so a blocked
// watcher or webhook fails the test instead of hanging it.
func Context(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if deadline, ok := t.Deadline(); ok {
		ctx, cancel = context.WithDeadline(context.Background(), deadline)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	t.Cleanup(cancel)

	return ctx, cancel
}
