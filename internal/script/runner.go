// SPDX-License-Identifier: MPL-2.0

package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner executes one script file per call, dispatching to the interpreter
// registered for the file's extension.
type Runner struct {
	reg      *Registry
	bindings Bindings
	logger   *log.Logger
}

// NewRunner creates a Runner. The bindings are fixed at construction and
// passed, unmodified, to every invocation.
func NewRunner(reg *Registry, b Bindings, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{reg: reg, bindings: b, logger: logger}
}

// Run executes the script at path. The file is re-read on every invocation,
// so edits take effect on the next run without a restart. It returns
// *UnsupportedTypeError when no interpreter handles the extension and
// *ExecError wrapping whatever the interpreter (or the read) raised;
// execution runs synchronously on the calling goroutine.
func (r *Runner) Run(ctx context.Context, path string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	ip, ok := r.reg.Lookup(ext)
	if !ok {
		return &UnsupportedTypeError{Path: path, Ext: ext}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return &ExecError{Path: path, Err: err}
	}

	r.logger.Debug("run script", "path", path, "interpreter", ip.Name())
	if err := ip.Eval(ctx, source, path, r.bindings); err != nil {
		return &ExecError{Path: path, Err: err}
	}
	return nil
}
