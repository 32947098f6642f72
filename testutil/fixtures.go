// Package testutil provides helpers for settings tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempFileString writes content to name inside a fresh temp dir and returns
// the path.
func TempFileString(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), name, content)
}

// WriteFile writes content to dir/rel, creating parent directories.
// Returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}

	return path
}
