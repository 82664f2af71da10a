// SPDX-License-Identifier: MPL-2.0

package script

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"
)

// JSInterpreter evaluates JavaScript scripts in-process with goja. The three
// execution bindings are set as engine globals under their exposed names
// (config, machine, ui), giving scripts direct access to the live host
// objects. A print(...) function writing to the configured output is also
// provided.
type JSInterpreter struct {
	// Stdout receives print() output. Nil defaults to the process stdout.
	Stdout io.Writer
}

// NewJSInterpreter creates a JavaScript interpreter writing print() output
// to stdout.
func NewJSInterpreter(stdout io.Writer) *JSInterpreter {
	return &JSInterpreter{Stdout: stdout}
}

// Name returns the interpreter name.
func (j *JSInterpreter) Name() string { return "javascript" }

// Extensions returns the handled extensions.
func (j *JSInterpreter) Extensions() []string { return []string{"js"} }

// Eval runs the script in a fresh VM. Each invocation gets its own engine,
// so scripts cannot leak state into one another.
func (j *JSInterpreter) Eval(ctx context.Context, source []byte, path string, b Bindings) error {
	stdout := j.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	vm := goja.New()
	for name, value := range b.Named() {
		if err := vm.Set(name, value); err != nil {
			return fmt.Errorf("set binding %q: %w", name, err)
		}
	}
	err := vm.Set("print", func(args ...goja.Value) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(stdout, " ")
			}
			fmt.Fprint(stdout, a.String())
		}
		fmt.Fprintln(stdout)
	})
	if err != nil {
		return fmt.Errorf("set print: %w", err)
	}

	_, err = vm.RunScript(path, string(source))
	return err
}
