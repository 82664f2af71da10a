// SPDX-License-Identifier: MPL-2.0

package menu

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type (
	// InvokeFunc builds the invocation callback for a newly discovered script
	// file. It is called once per leaf, at leaf creation.
	InvokeFunc func(path string) func(ctx context.Context) error

	// WatchFunc registers a directory for filesystem change notifications.
	// Registration failures are the watcher's concern; the synchronizer never
	// sees them.
	WatchFunc func(path string)

	// Synchronizer reconciles the command tree with the scripts directory.
	// It owns the root group exclusively; every pass runs under a single
	// mutex so concurrent triggers from the watcher goroutine and the UI
	// cannot interleave on the mutable tree.
	Synchronizer struct {
		mu     sync.Mutex
		root   *Group
		exts   map[string]struct{}
		invoke InvokeFunc
		watch  WatchFunc
		logger *log.Logger
	}

	// Options configures a Synchronizer.
	Options struct {
		// Extensions are the supported script file extensions, without the
		// leading dot. Matching is case-insensitive; files whose extension is
		// not in the set never become leaves.
		Extensions []string

		// Invoke builds leaf invocation callbacks. Nil produces inert leaves.
		Invoke InvokeFunc

		// Watch registers newly discovered subdirectories with the directory
		// watcher. Nil disables registration; the tree then only changes on
		// explicit Sync calls.
		Watch WatchFunc

		// Logger receives non-fatal diagnostics from synchronization passes.
		// Nil falls back to the package default logger.
		Logger *log.Logger
	}
)

// NewSynchronizer creates a Synchronizer rooted at dir. The supported
// extension set is fixed at construction and never changes afterwards. The
// root directory itself is registered with the watch callback immediately;
// subdirectories are registered as synchronization passes discover them.
func NewSynchronizer(dir string, opts Options) *Synchronizer {
	exts := make(map[string]struct{}, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Synchronizer{
		root:   NewGroup(filepath.Base(dir), dir),
		exts:   exts,
		invoke: opts.Invoke,
		watch:  opts.Watch,
		logger: logger,
	}
	if s.watch != nil {
		s.watch(dir)
	}
	return s
}

// Root returns the root group. The pointer is stable for the synchronizer's
// lifetime.
func (s *Synchronizer) Root() *Group {
	return s.root
}

// Supported reports whether files with the given extension (without the
// leading dot, any case) become leaves.
func (s *Synchronizer) Supported(ext string) bool {
	_, ok := s.exts[strings.ToLower(ext)]
	return ok
}

// Sync runs one full resynchronization pass: every level of the tree is
// reconciled against the current directory listing. The pass is serialized
// against concurrent callers; each caller's pass observes the directory state
// current at the time it acquires the lock.
//
// Sync never inspects which filesystem event triggered it, only listings
// versus the tree, so it is idempotent and immune to event loss, coalescing,
// and reordering.
func (s *Synchronizer) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncGroup(s.root)
}

// syncGroup reconciles one directory level, then recurses into child groups.
func (s *Synchronizer) syncGroup(g *Group) {
	entries, err := os.ReadDir(g.path)
	if err != nil {
		// A directory that vanished mid-pass, or one we cannot list, counts
		// as empty: its children are pruned here and the group itself is
		// removed by the parent's prune on the next pass.
		if !os.IsNotExist(err) {
			s.logger.Warn("list scripts directory", "path", g.path, "err", err)
		}
		entries = nil
	}

	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e.Name()] = struct{}{}
	}

	// Deletions and renames-as-delete.
	g.prune(present)

	// New script files, inserted at their sorted position.
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if !s.Supported(ext) {
			continue
		}
		if g.Child(name) != nil {
			continue
		}
		path := filepath.Join(g.path, name)
		var invoke func(ctx context.Context) error
		if s.invoke != nil {
			invoke = s.invoke(path)
		}
		g.insertSorted(NewLeaf(name, path, invoke))
	}

	// New subdirectories become empty groups and are armed for watching the
	// moment they are created.
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if g.Child(name) != nil {
			continue
		}
		path := filepath.Join(g.path, name)
		g.insertSorted(NewGroup(name, path))
		if s.watch != nil {
			s.watch(path)
		}
	}

	for _, c := range g.children {
		switch child := c.(type) {
		case *Group:
			s.syncGroup(child)
		case *Leaf:
		}
	}
}
