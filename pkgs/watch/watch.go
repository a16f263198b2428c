// Package watch re-runs a callback whenever a configuration file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	hlerrors "github.com/tony-sol/zsh-ssh/pkgs/errors"
	"github.com/tony-sol/zsh-ssh/pkgs/invariant"
)

// Watcher observes a single file.
type Watcher struct {
	Path   string
	Logger *slog.Logger

	// ready is closed once the directory watch is registered or Run gave up.
	ready     chan struct{}
	readyOnce sync.Once
}

// New creates a watcher for path. A nil logger falls back to slog.Default().
// A Watcher runs once.
func New(path string, logger *slog.Logger) *Watcher {
	invariant.Precondition(path != "", "path must not be empty")
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{Path: path, Logger: logger, ready: make(chan struct{})}
}

// Ready is closed once Run has registered its watch, or when Run returns
// without ever getting that far.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *Watcher) markReady() {
	w.readyOnce.Do(func() { close(w.ready) })
}

// Run calls onChange once, then again after every write to the file, until
// ctx is cancelled. The parent directory is watched so that editors which
// replace the file on save are still observed.
//
// An error from the first onChange call is returned; later errors are logged
// and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	invariant.ContextNotBackground(ctx, "watch.Run")
	invariant.NotNil(onChange, "onChange")
	defer w.markReady()

	target, err := filepath.Abs(w.Path)
	if err != nil {
		return hlerrors.NewWatchError(w.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return hlerrors.NewWatchError(w.Path, err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return hlerrors.NewWatchError(w.Path, err)
	}
	w.markReady()

	if err := onChange(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.Logger.Debug("config changed", "path", ev.Name, "op", ev.Op.String())
			if err := onChange(); err != nil {
				w.Logger.Warn("reload failed", "path", w.Path, "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			return hlerrors.Wrap(hlerrors.ErrWatchEvent, "file watcher failed", err).
				WithContext("path", w.Path)
		}
	}
}
