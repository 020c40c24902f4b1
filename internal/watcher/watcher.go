// Package watcher monitors the run state file and delivers fresh snapshots
// as the game client rewrites it.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spirewatch/spire-companion/internal/run"
)

// DefaultDebounce collapses the write bursts editors and game clients
// produce when rewriting a file.
const DefaultDebounce = 250 * time.Millisecond

// Watcher tails a run state file and invokes a callback with each
// successfully parsed snapshot.
type Watcher struct {
	path     string
	debounce time.Duration
	onState  func(*run.State)
	onError  func(error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler installs a handler for parse and watch errors. Without
// one, errors are dropped and watching continues.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New creates a watcher for a run state file.
func New(path string, onState func(*run.State), opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("state file path cannot be empty")
	}
	if onState == nil {
		return nil, fmt.Errorf("state callback cannot be nil")
	}

	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		onState:  onState,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until the context is canceled. The parent directory is watched
// rather than the file itself, so atomic rename-into-place saves are seen.
// An initial load fires before the first event if the file already exists.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.load()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event := <-fw.Events:
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Restart the debounce window on every burst member.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.load()

		case err := <-fw.Errors:
			w.reportError(fmt.Errorf("file watcher: %w", err))
		}
	}
}

func (w *Watcher) load() {
	st, err := run.LoadFile(w.path)
	if err != nil {
		w.reportError(fmt.Errorf("load run state: %w", err))
		return
	}
	w.onState(st)
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
