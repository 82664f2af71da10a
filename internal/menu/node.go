// SPDX-License-Identifier: MPL-2.0

// Package menu maintains the command tree: a hierarchy of invokable script
// leaves and directory-backed groups that mirrors the scripts directory on
// disk. The Synchronizer keeps the tree consistent with the directory under
// concurrent triggering from the watcher and from manual refreshes.
package menu

import (
	"context"
	"slices"
	"sort"
	"strings"
)

type (
	// Node is a command tree entry: either a *Leaf (one script file) or a
	// *Group (one directory). The interface is sealed so traversal sites can
	// type-switch exhaustively over the two variants.
	Node interface {
		// Name is the entry's display name, identical to the backing file or
		// directory name. Name equality is case-sensitive; sibling ordering
		// compares names case-insensitively.
		Name() string

		node()
	}

	// Leaf is a command bound to a single script file.
	Leaf struct {
		name   string
		path   string
		invoke func(ctx context.Context) error
	}

	// Group is a command submenu bound to a directory. Children are kept in
	// case-insensitive lexicographic order at all times.
	Group struct {
		name     string
		path     string
		children []Node
	}
)

// NewLeaf creates a leaf named name, backed by the file at path, with invoke
// as its invocation callback. A nil invoke makes Invoke a no-op.
func NewLeaf(name, path string, invoke func(ctx context.Context) error) *Leaf {
	return &Leaf{name: name, path: path, invoke: invoke}
}

// NewGroup creates an empty group named name, backed by the directory at path.
func NewGroup(name, path string) *Group {
	return &Group{name: name, path: path}
}

func (l *Leaf) node() {}

// Name returns the leaf's display name (the script file name).
func (l *Leaf) Name() string { return l.name }

// Path returns the absolute path of the backing script file.
func (l *Leaf) Path() string { return l.path }

// Invoke runs the leaf's invocation callback.
func (l *Leaf) Invoke(ctx context.Context) error {
	if l.invoke == nil {
		return nil
	}
	return l.invoke(ctx)
}

func (g *Group) node() {}

// Name returns the group's display name (the directory name).
func (g *Group) Name() string { return g.name }

// Path returns the absolute path of the backing directory.
func (g *Group) Path() string { return g.path }

// Children returns a snapshot of the group's children in display order.
// Callers must not rely on the snapshot staying current across
// synchronization passes.
func (g *Group) Children() []Node {
	return slices.Clone(g.children)
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Child returns the direct child with exactly the given name, or nil.
func (g *Group) Child(name string) Node {
	for _, c := range g.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// insertSorted places n at its case-insensitive lexicographic position among
// the existing children. It never appends blindly, so sibling order holds
// after every individual insertion.
func (g *Group) insertSorted(n Node) {
	key := strings.ToLower(n.Name())
	i := sort.Search(len(g.children), func(i int) bool {
		return strings.ToLower(g.children[i].Name()) >= key
	})
	g.children = slices.Insert(g.children, i, n)
}

// prune removes every child whose name is not in keep. Surviving children are
// left untouched, preserving both their order and their identity.
func (g *Group) prune(keep map[string]struct{}) {
	g.children = slices.DeleteFunc(g.children, func(c Node) bool {
		_, ok := keep[c.Name()]
		return !ok
	})
}

// Walk visits every node under g in depth-first display order, calling fn
// with each node and its slash-separated name path relative to g. Walk does
// not visit g itself.
func (g *Group) Walk(fn func(path string, n Node)) {
	g.walk("", fn)
}

func (g *Group) walk(prefix string, fn func(path string, n Node)) {
	for _, c := range g.children {
		p := c.Name()
		if prefix != "" {
			p = prefix + "/" + c.Name()
		}
		fn(p, c)
		switch child := c.(type) {
		case *Group:
			child.walk(p, fn)
		case *Leaf:
		}
	}
}

// Resolve follows the given name segments from g, matching case-sensitively,
// and returns the node at the end of the path. It returns nil if any segment
// is missing or an intermediate segment is a leaf.
func (g *Group) Resolve(segments ...string) Node {
	if len(segments) == 0 {
		return nil
	}
	cur := g
	for i, seg := range segments {
		n := cur.Child(seg)
		if n == nil {
			return nil
		}
		if i == len(segments)-1 {
			return n
		}
		sub, ok := n.(*Group)
		if !ok {
			return nil
		}
		cur = sub
	}
	return nil
}
