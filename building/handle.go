package building

import (
	"context"
	"log/slog"
	"time"

	"github.com/randalmurphal/mvnsettings/localrepo"
	"github.com/randalmurphal/mvnsettings/notify"
	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
	"github.com/randalmurphal/mvnsettings/source"
)

// Handle is the outcome of a successful resolution.
type Handle struct {
	*Context

	// State is the last state reached.
	State State

	// Binding is the slot that received the merged document.
	Binding Binding

	// Project is the project directory, empty if none was set.
	Project string

	// Merged is the effective project document, nil when nothing was
	// injected.
	Merged *settings.Settings

	// Result is the in-memory source bound into the request.
	Result *source.StringSource

	// LocalRepository is the local repository of the merged document, or
	// the default below the user home. Empty when nothing was injected.
	LocalRepository string

	warnings []problem.Problem
	attached bool

	logger   *slog.Logger
	notifier notify.Notifier
	now      func() time.Time
}

// Injected reports whether the request was modified.
func (h *Handle) Injected() bool {
	return h.Binding != BindingNone
}

// Warnings returns the problems recorded by a successful resolution.
func (h *Handle) Warnings() []problem.Problem {
	out := make([]problem.Problem, len(h.warnings))
	copy(out, h.warnings)
	return out
}

// AttachDiagnostics returns host with the resolution warnings inserted at
// the front. Only the first call inserts them; later calls return host
// unchanged.
func (h *Handle) AttachDiagnostics(host []problem.Problem) []problem.Problem {
	if h.attached || len(h.warnings) == 0 {
		return host
	}
	h.attached = true
	out := make([]problem.Problem, 0, len(h.warnings)+len(host))
	out = append(out, h.warnings...)
	return append(out, host...)
}

// Project is a module of the host build.
type Project struct {
	Coordinate localrepo.Coordinate

	// File is the POM file of a project that lives on disk; empty for
	// POMs resolved from a repository.
	File string

	Parent *Project
}

// ExecutionResult summarizes a finished host build.
type ExecutionResult struct {
	Projects []*Project
	Errors   []error
}

// ReconcileIDE makes parent POMs downloaded from remote repositories look
// locally installed, so IDE importers resolve them. It runs only inside an
// IDE, when not disabled, after a resolution that injected settings and a
// build without errors. Failures are logged and skipped. It returns the
// removed paths.
func (h *Handle) ReconcileIDE(ctx context.Context, result ExecutionResult) []string {
	if h.Context == nil || !h.IDEIntegration() || h.LocalRepository == "" || len(result.Errors) > 0 {
		return nil
	}
	h.logger.Debug("make IDE identify the parent poms downloaded from custom repositories")

	repo := localrepo.New(h.LocalRepository, h.logger)
	seen := map[localrepo.Coordinate]bool{}
	var removed []string
	for _, p := range result.Projects {
		for parent := p.Parent; parent != nil; parent = parent.Parent {
			if parent.File != "" || seen[parent.Coordinate] {
				continue
			}
			if ctx.Err() != nil {
				return removed
			}
			seen[parent.Coordinate] = true

			paths, err := repo.ForgetRemote(parent.Coordinate)
			if err != nil {
				h.logger.Warn("failed to forget remote origin",
					"artifact", parent.Coordinate.String(),
					"error", err,
				)
			}
			removed = append(removed, paths...)
		}
	}

	h.emit(ctx, notify.EventIDEReconciled, notify.SeverityInfo, "local repository reconciled for IDE",
		map[string]any{"removed": len(removed), "local_repository": h.LocalRepository})
	return removed
}

// finish ends a pass-through resolution.
func (h *Handle) finish(ctx context.Context, reason string) {
	h.State = StateDone
	h.emit(ctx, notify.EventResolutionSkipped, notify.SeverityInfo, reason, nil)
}

func (h *Handle) emit(ctx context.Context, typ notify.EventType, severity, message string, metadata map[string]any) {
	event := notify.Event{
		Type:         typ,
		ResolutionID: h.ID,
		Project:      h.Project,
		Message:      message,
		Severity:     severity,
		Timestamp:    h.now(),
		Metadata:     metadata,
	}
	if src, ok := metadata["source"].(string); ok {
		event.Source = src
	}
	if err := h.notifier.Notify(ctx, event); err != nil {
		h.logger.Warn("notification failed", "event_type", typ, "error", err)
	}
}
