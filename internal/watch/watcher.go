// SPDX-License-Identifier: MPL-2.0

// Package watch delivers coalesced change notifications for the scripts
// directory tree.
//
// The watcher monitors every registered directory and, after a short
// debounce, invokes a single consumer callback per burst of filesystem
// events. Event payloads are never inspected: the consumer performs a full
// resynchronization against the current directory state, so only the fact
// that something changed matters.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last filesystem event before
// the resync callback fires. Editors commonly write, rename, and chmod in
// quick succession when saving a script; the debounce folds such bursts into
// one resynchronization pass.
const defaultDebounce = 250 * time.Millisecond

// defaultIgnores are path patterns that never trigger a resync. They cover
// VCS metadata, editor swap files, and OS metadata files that generate
// high-frequency noise inside a scripts directory.
var defaultIgnores = []string{
	"**/.git/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Root is the scripts directory the watcher reports paths relative
		// to, for ignore matching. Required.
		Root string

		// OnChange is invoked once per coalesced burst of filesystem events.
		// It carries no payload; the consumer resynchronizes against the
		// current directory state. A nil callback is a no-op.
		OnChange func()

		// Debounce is the quiet period before OnChange fires. Zero or
		// negative values fall back to defaultDebounce.
		Debounce time.Duration

		// Ignore are additional doublestar glob patterns for paths that
		// never trigger OnChange, merged with the built-in defaults.
		Ignore []string

		// Logger receives registration failures and transient event-loop
		// errors. Nil falls back to the package default logger.
		Logger *log.Logger
	}

	// Watcher monitors registered directories and fires a debounced,
	// payload-free callback when anything under them changes. Run must be
	// called exactly once; Watch may be called at any time, from any
	// goroutine, including while Run is blocked receiving events.
	Watcher struct {
		fsw      *fsnotify.Watcher
		root     string
		onChange func()
		debounce time.Duration
		ignores  []string
		logger   *log.Logger
		started  atomic.Bool
	}
)

// New creates a Watcher. Only a failure to initialise the underlying
// notification service is returned as an error; everything after that is
// non-fatal. The root directory is not registered automatically; the tree
// synchronizer registers it along with every directory it discovers.
func New(cfg Config) (*Watcher, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve root directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	ignores := make([]string, 0, len(defaultIgnores)+len(cfg.Ignore))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, cfg.Ignore...)

	return &Watcher{
		fsw:      fsw,
		root:     root,
		onChange: cfg.OnChange,
		debounce: debounce,
		ignores:  ignores,
		logger:   logger,
	}, nil
}

// Watch registers path for change notifications. Registering an
// already-watched path is harmless, and registration failure only costs that
// subtree its live updates: the next full resynchronization pass, triggered
// from any other watched directory or from a manual refresh, still observes
// it correctly. fsnotify's Add is safe to call concurrently with event
// delivery, so Watch may be called from inside a resynchronization pass.
func (w *Watcher) Watch(path string) {
	if err := w.fsw.Add(path); err != nil {
		w.logger.Warn("watch registration failed, subtree loses live updates",
			"path", path, "err", err)
	}
}

// Run blocks until ctx is cancelled, draining filesystem events and firing
// the debounced OnChange callback. Transient errors are logged and the loop
// continues; only watch-service-level resource exhaustion (see
// isFatalNotifyError) ends the loop early. Run must be called exactly once.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	// fire may be scheduled by time.AfterFunc after cancellation; the ctx
	// check is a best-effort guard. The consumer's resynchronization entry
	// point serializes itself, so overlapping fires cannot corrupt the tree.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if w.onChange != nil {
			w.onChange()
		}
	}

	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("close fsnotify watcher", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed unexpectedly")
			}
			if w.isIgnored(evt.Name) {
				continue
			}
			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed unexpectedly")
			}
			if isFatalNotifyError(err) {
				return fmt.Errorf("watch: fatal notification error: %w", err)
			}
			w.logger.Warn("transient watch error", "err", err)
		}
	}
}

// isIgnored reports whether the event path matches any ignore pattern.
func (w *Watcher) isIgnored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}
