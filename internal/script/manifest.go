// SPDX-License-Identifier: MPL-2.0

package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the optional per-directory interpreter manifest, read from
// the scripts root. It lets users register external interpreters without
// rebuilding:
//
//	[[interpreter]]
//	name = "python"
//	extensions = ["py"]
//	command = ["python3", "{script}"]
const ManifestName = ".interpreters.toml"

type (
	// Manifest is the decoded interpreter manifest.
	Manifest struct {
		Interpreters []ManifestEntry `toml:"interpreter"`
	}

	// ManifestEntry declares one external interpreter.
	ManifestEntry struct {
		Name       string   `toml:"name"`
		Extensions []string `toml:"extensions"`
		Command    []string `toml:"command"`
	}
)

// LoadManifest reads the interpreter manifest from dir and returns the
// declared external interpreters. A missing manifest is not an error and
// yields no interpreters; a malformed one is an error so the caller can log
// it and continue with the built-ins.
func LoadManifest(dir string) ([]*ExternalInterpreter, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read interpreter manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse interpreter manifest: %w", err)
	}

	out := make([]*ExternalInterpreter, 0, len(m.Interpreters))
	for _, entry := range m.Interpreters {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("interpreter manifest: %w", err)
		}
		out = append(out, NewExternalInterpreter(entry.Name, entry.Extensions, entry.Command))
	}
	return out, nil
}

func (e ManifestEntry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry missing name")
	}
	if len(e.Extensions) == 0 {
		return fmt.Errorf("interpreter %q declares no extensions", e.Name)
	}
	if len(e.Command) == 0 {
		return fmt.Errorf("interpreter %q declares no command", e.Name)
	}
	return nil
}
