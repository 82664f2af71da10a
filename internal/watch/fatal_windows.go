// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"syscall"
)

// Windows system error codes from the Win32 API.
const (
	// ERROR_TOO_MANY_OPEN_FILES (4): per-process handle limit exceeded.
	// Analogous to EMFILE on Unix.
	errnoTooManyOpenFiles = syscall.Errno(4)
	// ERROR_NOT_ENOUGH_MEMORY (8): insufficient memory to allocate the
	// ReadDirectoryChangesW notification buffer.
	errnoNotEnoughMemory = syscall.Errno(8)
)

// isFatalNotifyError classifies notification errors that mean the watch
// service is fundamentally broken and cannot recover. Invalid-handle errors
// are deliberately not treated as fatal: they occur whenever a watched
// scripts subdirectory is deleted, which is a routine mutation of the tree,
// and the next resynchronization pass prunes the corresponding group.
func isFatalNotifyError(err error) bool {
	return errors.Is(err, errnoTooManyOpenFiles) ||
		errors.Is(err, errnoNotEnoughMemory)
}
