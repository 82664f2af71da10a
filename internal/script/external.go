// SPDX-License-Identifier: MPL-2.0

package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
)

// scriptPlaceholder marks where the script path is substituted into an
// external interpreter's argv. Argv entries without it get the path appended.
const scriptPlaceholder = "{script}"

// ExternalInterpreter runs scripts through an external command, e.g.
// python3 for .py files. The command receives the script path on its argv
// and the bindings as SCRIPTDECK_* environment variables; the interpreter
// process reads the file itself.
type ExternalInterpreter struct {
	name string
	exts []string
	argv []string

	// Stdin, Stdout, Stderr are the child's standard streams. Nil values
	// default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExternalInterpreter creates an external interpreter. argv is the command
// line to run, with {script} substituted by the script path; if no element
// contains the placeholder, the path is appended as the final argument.
func NewExternalInterpreter(name string, exts, argv []string) *ExternalInterpreter {
	return &ExternalInterpreter{name: name, exts: slices.Clone(exts), argv: slices.Clone(argv)}
}

// Name returns the interpreter name.
func (e *ExternalInterpreter) Name() string { return e.name }

// Extensions returns the handled extensions.
func (e *ExternalInterpreter) Extensions() []string { return slices.Clone(e.exts) }

// Command returns the configured argv template.
func (e *ExternalInterpreter) Command() []string { return slices.Clone(e.argv) }

// Eval runs the external command synchronously. source is unused; the child
// process reads the file at path, which also keeps the no-caching property.
func (e *ExternalInterpreter) Eval(ctx context.Context, _ []byte, path string, b Bindings) error {
	if len(e.argv) == 0 {
		return fmt.Errorf("external interpreter %q has no command", e.name)
	}

	argv := make([]string, 0, len(e.argv)+1)
	substituted := false
	for _, a := range e.argv {
		if a == scriptPlaceholder {
			argv = append(argv, path)
			substituted = true
			continue
		}
		argv = append(argv, a)
	}
	if !substituted {
		argv = append(argv, path)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), b.Environ()...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	return cmd.Run()
}
