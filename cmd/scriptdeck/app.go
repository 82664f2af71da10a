// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"scriptdeck/internal/bootstrap"
	"scriptdeck/internal/config"
	"scriptdeck/internal/host"
	"scriptdeck/internal/menu"
	"scriptdeck/internal/script"
	"scriptdeck/internal/watch"
)

// App is the composition root: configuration, interpreter registry, script
// runner, command tree synchronizer, and (optionally) the directory watcher,
// wired together once per process.
type App struct {
	Config   *config.Config
	Registry *script.Registry
	Runner   *script.Runner
	Sync     *menu.Synchronizer
	Watcher  *watch.Watcher
	Logger   *log.Logger

	// changes receives one value per coalesced watcher burst. Buffered with
	// size 1 and sent non-blocking, so bursts coalesce further while the
	// consumer is busy.
	changes chan struct{}
}

// appOptions controls optional parts of App assembly.
type appOptions struct {
	// withWatcher arms the filesystem watcher. Commands that take a single
	// snapshot of the tree (tree, run) leave it off.
	withWatcher bool
	// ui is the opaque UI handle bound into script executions.
	ui any
}

// newApp assembles the application. The supported-extension set is computed
// here, once, from the interpreter registry; the synchronizer performs the
// initial full synchronization before newApp returns, so the tree is ready
// for use immediately.
func newApp(opts appOptions) (*App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if scriptsDirFlag != "" {
		cfg.ScriptsDir = scriptsDirFlag
	}

	if err := bootstrap.Ensure(cfg.ScriptsDir, logger); err != nil {
		return nil, err
	}

	interpreters := []script.Interpreter{
		script.NewShellInterpreter(nil, nil, nil),
		script.NewJSInterpreter(nil),
	}
	externals, err := script.LoadManifest(cfg.ScriptsDir)
	if err != nil {
		// A broken manifest costs the external interpreters, not the app.
		logger.Warn("interpreter manifest ignored", "err", err)
	}
	for _, e := range externals {
		interpreters = append(interpreters, e)
	}
	reg := script.NewRegistry(interpreters...)

	bindings := script.Bindings{
		Config:  cfg,
		Machine: host.Current(),
		UI:      opts.ui,
	}
	runner := script.NewRunner(reg, bindings, logger)

	app := &App{
		Config:   cfg,
		Registry: reg,
		Runner:   runner,
		Logger:   logger,
		changes:  make(chan struct{}, 1),
	}

	var watchFn menu.WatchFunc
	if opts.withWatcher {
		w, err := watch.New(watch.Config{
			Root:     cfg.ScriptsDir,
			Debounce: cfg.Debounce(),
			Ignore:   cfg.Ignore,
			Logger:   logger,
			OnChange: app.notifyChange,
		})
		if err != nil {
			// The tree still works from the initial synchronization and
			// manual refreshes; only live updates are lost.
			logger.Warn("filesystem watching unavailable", "err", err)
		} else {
			app.Watcher = w
			watchFn = w.Watch
		}
	}

	app.Sync = menu.NewSynchronizer(cfg.ScriptsDir, menu.Options{
		Extensions: reg.Extensions(),
		Invoke: func(path string) func(ctx context.Context) error {
			return func(ctx context.Context) error {
				return runner.Run(ctx, path)
			}
		},
		Watch:  watchFn,
		Logger: logger,
	})
	app.Sync.Sync()

	return app, nil
}

// notifyChange is the watcher's change callback. It only signals: the
// subscriber of Changes runs the resynchronization pass itself, on its own
// goroutine, so tree mutations never happen on the watcher's debounce
// goroutine while the UI is reading.
func (a *App) notifyChange() {
	select {
	case a.changes <- struct{}{}:
	default:
	}
}

// Changes exposes the coalesced change notifications. Each received value
// means the scripts directory changed since the subscriber's last
// resynchronization pass.
func (a *App) Changes() <-chan struct{} {
	return a.changes
}
