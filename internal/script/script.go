// SPDX-License-Identifier: MPL-2.0

// Package script selects and runs script interpreters.
//
// A Registry maps lower-cased file extensions to Interpreter implementations;
// the Runner dispatches one script file to the interpreter registered for its
// extension, wiring in the host's execution bindings. Built-in interpreters
// cover POSIX shell (in-process, via mvdan/sh) and JavaScript (via goja);
// additional external interpreters can be declared in a manifest at the
// scripts root.
package script

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Bindings are the three opaque named handles the host application
	// exposes to every script invocation. The runner never inspects or
	// validates them; each interpreter decides how to surface them to the
	// script (engine globals for JavaScript, environment variables for
	// shell and external interpreters).
	Bindings struct {
		// Config is the host's global configuration object.
		Config any
		// Machine is the host's current machine/device handle.
		Machine any
		// UI is the host's top-level UI handle.
		UI any
	}

	// Interpreter evaluates script source for one or more file extensions.
	Interpreter interface {
		// Name identifies the interpreter in listings and logs.
		Name() string
		// Extensions returns the file extensions handled, without the
		// leading dot. Case is irrelevant; the registry lower-cases them.
		Extensions() []string
		// Eval runs the script. source is the file content as read for this
		// invocation; path is the backing file, for position info and for
		// interpreters that re-read the file themselves.
		Eval(ctx context.Context, source []byte, path string, b Bindings) error
	}

	// Registry maps file extensions to interpreters. It is populated once at
	// startup and read-only afterwards.
	Registry struct {
		byExt map[string]Interpreter
	}
)

// Named returns the bindings keyed by their exposed names.
func (b Bindings) Named() map[string]any {
	return map[string]any{
		"config":  b.Config,
		"machine": b.Machine,
		"ui":      b.UI,
	}
}

// Environ renders the bindings as SCRIPTDECK_* environment variables for
// interpreters that cannot hold Go values directly. Values are stringified
// with fmt.Sprint; richer access is only available to in-process engines.
func (b Bindings) Environ() []string {
	named := b.Named()
	keys := maps.Keys(named)
	slices.Sort(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, "SCRIPTDECK_"+strings.ToUpper(k)+"="+fmt.Sprint(named[k]))
	}
	return env
}

// NewRegistry creates a registry holding the given interpreters. A later
// interpreter claiming an extension already registered wins, matching the
// order interpreters are supplied in (built-ins first, manifest entries
// after, so user declarations override built-ins).
func NewRegistry(interpreters ...Interpreter) *Registry {
	r := &Registry{byExt: make(map[string]Interpreter)}
	for _, ip := range interpreters {
		r.Register(ip)
	}
	return r
}

// Register adds an interpreter, claiming all its extensions.
func (r *Registry) Register(ip Interpreter) {
	for _, ext := range ip.Extensions() {
		r.byExt[strings.ToLower(ext)] = ip
	}
}

// Lookup resolves the interpreter registered for ext (without the leading
// dot, any case).
func (r *Registry) Lookup(ext string) (Interpreter, bool) {
	ip, ok := r.byExt[strings.ToLower(ext)]
	return ip, ok
}

// Extensions returns the supported extension set: lower-cased, deduplicated,
// sorted. Computed from the registered interpreters; the command tree uses it
// to decide which files become leaves.
func (r *Registry) Extensions() []string {
	exts := maps.Keys(r.byExt)
	slices.Sort(exts)
	return exts
}

// Interpreters returns the distinct registered interpreters, ordered by name.
func (r *Registry) Interpreters() []Interpreter {
	seen := make(map[string]Interpreter)
	for _, ip := range r.byExt {
		seen[ip.Name()] = ip
	}
	names := maps.Keys(seen)
	slices.Sort(names)
	out := make([]Interpreter, 0, len(names))
	for _, n := range names {
		out = append(out, seen[n])
	}
	return out
}
