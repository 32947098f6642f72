package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/mvnsettings/notify"
)

// DefaultDebounce is how long a Watcher waits for further events before
// resolving.
const DefaultDebounce = 200 * time.Millisecond

// ErrNoPaths is returned by Run when the watcher has nothing to observe.
var ErrNoPaths = errors.New("no settings files to watch")

// ResolveFunc re-runs a resolution after changed was modified.
type ResolveFunc func(ctx context.Context, changed string) error

// Watcher calls a ResolveFunc whenever one of its files changes.
type Watcher struct {
	resolve  ResolveFunc
	paths    map[string]bool
	dirs     []string
	debounce time.Duration
	logger   *slog.Logger
	notifier notify.Notifier
	ready    chan struct{}
}

// Option configures Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before resolving. Non-positive values
// resolve on every event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithNotifier sets the notifier that receives EventSettingsChanged.
func WithNotifier(n notify.Notifier) Option {
	return func(w *Watcher) {
		if n != nil {
			w.notifier = n
		}
	}
}

// New creates a watcher for paths. Empty paths are ignored.
func New(resolve ResolveFunc, paths []string, opts ...Option) *Watcher {
	w := &Watcher{
		resolve:  resolve,
		paths:    make(map[string]bool),
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		notifier: notify.NopNotifier{},
		ready:    make(chan struct{}),
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		w.paths[p] = true
		if dir := filepath.Dir(p); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready is closed once Run has installed its directory watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is canceled. Directories that cannot be watched,
// such as a missing ~/.m2, are logged and skipped; Run fails only when none
// can be watched. A failed resolution is logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.paths) == 0 {
		return ErrNoPaths
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	var watched int
	var lastErr error
	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("cannot watch settings directory", "dir", dir, "error", err)
			lastErr = fmt.Errorf("watch %s: %w", dir, err)
			continue
		}
		watched++
		w.logger.Info("watching settings", "dir", dir)
	}
	if watched == 0 {
		return lastErr
	}
	close(w.ready)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if !w.paths[name] || !relevant(event) {
				continue
			}
			w.logger.Debug("settings file event", "path", name, "op", event.Op.String())
			pending = name
			if w.debounce <= 0 {
				w.fire(ctx, pending)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.fire(ctx, pending)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (w *Watcher) fire(ctx context.Context, changed string) {
	event := notify.Event{
		Type:      notify.EventSettingsChanged,
		Source:    changed,
		Message:   "settings file changed",
		Severity:  notify.SeverityInfo,
		Timestamp: time.Now(),
	}
	if err := w.notifier.Notify(ctx, event); err != nil {
		w.logger.Warn("notification failed", "event_type", event.Type, "error", err)
	}

	if err := w.resolve(ctx, changed); err != nil {
		w.logger.Error("resolution failed after change", "path", changed, "error", err)
		return
	}
	w.logger.Info("settings re-resolved", "path", changed)
}
