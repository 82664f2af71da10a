// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is the sentinel error wrapped by
	// UnsupportedTypeError, for errors.Is() compatibility.
	ErrUnsupportedType = errors.New("unsupported script type")

	// ErrExecFailed is the sentinel error wrapped by ExecError, for
	// errors.Is() compatibility.
	ErrExecFailed = errors.New("script execution failed")
)

type (
	// UnsupportedTypeError is returned when no interpreter is registered for
	// a script file's extension.
	UnsupportedTypeError struct {
		// Path is the script file whose invocation was attempted.
		Path string
		// Ext is the lower-cased extension with no registered interpreter.
		Ext string
	}

	// ExecError wraps whatever an interpreter raised while evaluating a
	// script. The runner never suppresses it; display is the caller's
	// responsibility.
	ExecError struct {
		// Path is the script file that failed.
		Path string
		// Err is the underlying interpreter error.
		Err error
	}
)

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("unsupported script type: %s has no extension", e.Path)
	}
	return fmt.Sprintf("unsupported script type %q: %s", e.Ext, e.Path)
}

// Is reports equivalence to the ErrUnsupportedType sentinel.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("script %s failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying interpreter error.
func (e *ExecError) Unwrap() error { return e.Err }

// Is reports equivalence to the ErrExecFailed sentinel.
func (e *ExecError) Is(target error) bool {
	return target == ErrExecFailed
}
