// SPDX-License-Identifier: MPL-2.0

package host

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	t.Parallel()

	info := Current()
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if info.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", info.PID, os.Getpid())
	}
	if info.Hostname == "" {
		t.Error("Hostname is empty")
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	info := Info{Hostname: "box", OS: "linux", Arch: "amd64", PID: 42}
	s := info.String()
	for _, want := range []string{"box", "linux", "amd64", "42"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
