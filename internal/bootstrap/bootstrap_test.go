// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureCreatesAndSeeds(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scripts")
	if err := Ensure(dir, nil); err != nil {
		t.Fatal(err)
	}

	examples := filepath.Join(dir, ExamplesDirName)
	entries, err := os.ReadDir(examples)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no examples were seeded")
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}
	for _, want := range []string{"Hello_World.js", "Print_Script_Info.js", "List_Directory.sh"} {
		if !names[want] {
			t.Errorf("example %q missing, seeded: %v", want, names)
		}
	}
}

func TestEnsureLeavesExistingDirectoryAlone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mine := filepath.Join(dir, "mine.js")
	if err := os.WriteFile(mine, []byte("// mine"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Ensure(dir, nil); err != nil {
		t.Fatal(err)
	}

	// An existing directory is never seeded.
	if _, err := os.Stat(filepath.Join(dir, ExamplesDirName)); !os.IsNotExist(err) {
		t.Error("Examples must not be seeded into a pre-existing directory")
	}
	data, err := os.ReadFile(mine)
	if err != nil || string(data) != "// mine" {
		t.Error("existing files must be untouched")
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scripts")
	if err := Ensure(dir, nil); err != nil {
		t.Fatal(err)
	}

	// Scribble on a seeded example; a second Ensure must not restore it.
	hello := filepath.Join(dir, ExamplesDirName, "Hello_World.js")
	if err := os.WriteFile(hello, []byte("// edited"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Ensure(dir, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(hello)
	if err != nil || string(data) != "// edited" {
		t.Error("second Ensure must not overwrite user edits")
	}
}
