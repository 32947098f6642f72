package building

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/randalmurphal/mvnsettings/localrepo"
	"github.com/randalmurphal/mvnsettings/merge"
	"github.com/randalmurphal/mvnsettings/notify"
	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
	"github.com/randalmurphal/mvnsettings/settingsxml"
	"github.com/randalmurphal/mvnsettings/source"
	"github.com/randalmurphal/mvnsettings/validation"
)

// ErrNilRequest is returned by Resolve when called without a request.
var ErrNilRequest = errors.New("nil settings building request")

// Merger combines the project document with the injected one.
type Merger interface {
	Merge(dominant, recessive *settings.Settings, level settings.SourceLevel) *settings.Settings
}

// Injector resolves project settings into building requests. It holds no
// per-resolution state and may be shared.
type Injector struct {
	merger   Merger
	logger   *slog.Logger
	notifier notify.Notifier
	now      func() time.Time
}

// Option configures Injector.
type Option func(*Injector)

// NewInjector creates an injector. By default it merges with a zero
// merge.Merger, logs to slog.Default() and notifies the Notifier found in
// the resolution context, if any.
func NewInjector(opts ...Option) *Injector {
	in := &Injector{
		merger: &merge.Merger{},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// WithMerger sets the document merger.
func WithMerger(m Merger) Option {
	return func(in *Injector) {
		if m != nil {
			in.merger = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(in *Injector) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithNotifier sets the notifier for resolution events.
func WithNotifier(n notify.Notifier) Option {
	return func(in *Injector) {
		in.notifier = n
	}
}

// Resolve injects the project settings of req into req.
//
// When nothing has to be injected the returned handle is in StateDone with
// BindingNone and req is unchanged. If any ERROR or FATAL problem was found,
// Resolve returns a *problem.BuildingError carrying every problem and req is
// unchanged.
func (in *Injector) Resolve(ctx context.Context, req *Request) (*Handle, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	rc, err := NewContext(req)
	if err != nil {
		return nil, err
	}
	h := &Handle{
		Context:  rc,
		logger:   in.logger.With("resolution_id", rc.ID),
		notifier: in.notifierFor(ctx),
		now:      in.now,
	}
	h.emit(ctx, notify.EventResolutionStarted, notify.SeverityInfo, "resolving project settings", nil)

	if req.skipped() {
		h.logger.Debug("skip loading project settings", "property", SkipProperty)
		h.finish(ctx, "project settings skipped")
		return h, nil
	}

	root, ok := req.Property(ProjectDirProperty)
	if !ok || root == "" {
		h.logger.Debug("property is not set while searching project settings", "property", ProjectDirProperty)
		h.finish(ctx, "no project directory")
		return h, nil
	}
	h.Project = root

	projectFile := filepath.Join(root, filepath.FromSlash(ProjectSettingsPath))
	if !source.Exists(projectFile) {
		h.logger.Debug("no project settings", "path", projectFile)
		h.finish(ctx, "no project settings")
		return h, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var problems problem.List

	h.logger.Debug("reading project settings", "path", projectFile)
	projectSrc := source.NewFile(projectFile)
	project := Read(projectSrc, &problems)
	h.State = StateProjectLoaded
	h.emit(ctx, notify.EventProjectLoaded, notify.SeverityInfo, "project settings loaded",
		map[string]any{"source": projectSrc.Location()})

	userSrc := req.User.resolve()
	injectSrc, level := userSrc, settings.LevelUser
	if injectSrc == nil {
		if globalSrc := req.Global.resolve(); globalSrc != nil {
			injectSrc, level = globalSrc, settings.LevelGlobal
		}
	}
	injected := Read(injectSrc, &problems)
	h.State = StateInjectSourceSelected

	merged := in.merger.Merge(project, injected, level)
	h.State = StateMerged

	location := "memory(:" + projectSrc.Location()
	if injectSrc != nil {
		location += ":" + injectSrc.Location()
	}
	location += ")"
	result := source.NewString(writeSettings(merged), location)

	if problems.HasErrors() {
		h.State = StateFailed
		err := &problem.BuildingError{Problems: problems.Problems()}
		h.emit(ctx, notify.EventResolutionFailed, notify.SeverityError, err.Error(),
			map[string]any{"problems": len(err.Problems)})
		return nil, err
	}

	if injectSrc == nil || userSrc != nil {
		req.User.SetSource(result)
		h.Binding = BindingUser
	} else {
		req.Global.SetSource(result)
		h.Binding = BindingGlobal
	}
	h.State = StateBound

	h.Merged = merged
	h.Result = result
	h.warnings = problems.Problems()
	h.LocalRepository = merged.LocalRepository
	if h.LocalRepository == "" {
		h.LocalRepository = localrepo.DefaultRoot(rc.UserHome)
	}

	h.logger.Info("project settings injected",
		"project", projectSrc.Location(),
		"binding", h.Binding.String(),
		"location", location,
		"warnings", len(h.warnings),
	)
	h.emit(ctx, notify.EventResolutionBound, notify.SeverityInfo, "project settings bound",
		map[string]any{"binding": h.Binding.String(), "source": location, "warnings": len(h.warnings)})
	h.State = StateDone
	return h, nil
}

func (in *Injector) notifierFor(ctx context.Context) notify.Notifier {
	if in.notifier != nil {
		return in.notifier
	}
	if n := notify.NotifierFromContext(ctx); n != nil {
		return n
	}
	return notify.NopNotifier{}
}

// Read parses src strictly, retrying leniently on a parse error, and
// validates the result. A nil src, or a file removed before it could be
// opened, yields an empty document. Failures are recorded in problems and
// yield an empty document.
func Read(src source.Source, problems *problem.List) *settings.Settings {
	if src == nil {
		return settings.New()
	}
	add := problems.For(src.Location())

	s, err := parseSource(src, true)
	var strictErr *settingsxml.ParseError
	if errors.As(err, &strictErr) {
		s, err = parseSource(src, false)
		if err == nil {
			add.Add(problem.SeverityWarning, strictErr.Message, 0, 0, strictErr)
		}
	}

	var perr *settingsxml.ParseError
	switch {
	case err == nil:
	case source.IsNotExist(err):
		return settings.New()
	case errors.As(err, &perr):
		add.Add(problem.SeverityFatal,
			"Non-parseable settings "+src.Location()+": "+perr.Message, 0, 0, perr)
		return settings.New()
	default:
		add.Add(problem.SeverityFatal,
			"Non-readable settings "+src.Location()+": "+err.Error(), -1, -1, err)
		return settings.New()
	}

	validation.Validate(s, add)
	return s
}

func parseSource(src source.Source, strict bool) (*settings.Settings, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return settingsxml.Read(rc, settingsxml.ReadOptions{Strict: strict})
}

// writeSettings serializes s. Writing to memory cannot fail for a valid
// document, so a failure is an invariant violation.
func writeSettings(s *settings.Settings) string {
	data, err := settingsxml.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("failed to serialize settings to memory: %v", err))
	}
	return string(data)
}
