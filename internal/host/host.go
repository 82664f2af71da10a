// SPDX-License-Identifier: MPL-2.0

// Package host supplies the machine handle bound into script executions and
// small OS integration helpers.
package host

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Info describes the machine a script runs on. It is handed to scripts as
// the opaque "machine" binding.
type Info struct {
	Hostname string
	OS       string
	Arch     string
	PID      int
}

// String renders the handle the way shell and external interpreters see it
// through the SCRIPTDECK_MACHINE environment variable.
func (i Info) String() string {
	return fmt.Sprintf("%s (%s/%s, pid %d)", i.Hostname, i.OS, i.Arch, i.PID)
}

// Current returns the Info for the running process.
func Current() Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return Info{
		Hostname: hostname,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		PID:      os.Getpid(),
	}
}

// OpenFileBrowser asks the OS file browser to display path. The browser is
// started detached; only the failure to launch it is reported.
func OpenFileBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open file browser for %s: %w", path, err)
	}
	return nil
}
