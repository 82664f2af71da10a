// SPDX-License-Identifier: MPL-2.0

package script

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellInterpreter evaluates POSIX shell scripts in-process with mvdan/sh,
// so .sh leaves work identically on every platform without relying on a
// system shell. Bindings are surfaced as SCRIPTDECK_* environment variables.
type ShellInterpreter struct {
	// Stdin, Stdout, Stderr are the script's standard streams. Nil values
	// default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellInterpreter creates a shell interpreter bound to the given streams.
func NewShellInterpreter(stdin io.Reader, stdout, stderr io.Writer) *ShellInterpreter {
	return &ShellInterpreter{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Name returns the interpreter name.
func (s *ShellInterpreter) Name() string { return "shell" }

// Extensions returns the handled extensions.
func (s *ShellInterpreter) Extensions() []string { return []string{"sh"} }

// Eval parses and runs the script. The working directory is the script's own
// directory, so sibling files resolve with relative paths.
func (s *ShellInterpreter) Eval(ctx context.Context, source []byte, path string, b Bindings) error {
	prog, err := syntax.NewParser().Parse(bytes.NewReader(source), path)
	if err != nil {
		return fmt.Errorf("parse shell script: %w", err)
	}

	stdin := s.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	env := append(os.Environ(), b.Environ()...)
	runner, err := interp.New(
		interp.Dir(filepath.Dir(path)),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdin, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("create shell runner: %w", err)
	}

	return runner.Run(ctx, prog)
}
