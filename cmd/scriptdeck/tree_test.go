// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptdeck/internal/menu"
)

func TestRenderTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, rel := range []string{"b.js", "Alpha/x.sh"} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// t"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := menu.NewSynchronizer(dir, menu.Options{Extensions: []string{"js", "sh"}})
	s.Sync()

	out := renderTree(s.Root())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Alpha/") {
		t.Errorf("line 0 = %q, want the Alpha group first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ") || !strings.Contains(lines[1], "x.sh") {
		t.Errorf("line 1 = %q, want indented x.sh", lines[1])
	}
	if !strings.Contains(lines[2], "b.js") {
		t.Errorf("line 2 = %q, want b.js", lines[2])
	}
}
