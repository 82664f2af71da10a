// SPDX-License-Identifier: MPL-2.0

// Package bootstrap performs first-run provisioning of the scripts
// directory: it creates the root and seeds an Examples subdirectory with
// embedded starter scripts. Seeding only happens when the root did not exist
// yet; existing files are never overwritten.
package bootstrap

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

//go:embed examples
var examplesFS embed.FS

// ExamplesDirName is the subdirectory the starter scripts are seeded into.
const ExamplesDirName = "Examples"

// Ensure makes sure the scripts root exists. When the root is created fresh,
// the embedded example scripts are copied into an Examples subdirectory.
// Failure to seed an individual example is logged and skipped; only failure
// to create the directories themselves is an error.
func Ensure(dir string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat scripts directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, ExamplesDirName), 0o755); err != nil {
		return fmt.Errorf("create scripts directory: %w", err)
	}
	logger.Info("created scripts directory", "path", dir)

	return seedExamples(filepath.Join(dir, ExamplesDirName), logger)
}

func seedExamples(dst string, logger *log.Logger) error {
	entries, err := fs.ReadDir(examplesFS, "examples")
	if err != nil {
		return fmt.Errorf("read embedded examples: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(examplesFS, "examples/"+e.Name())
		if err != nil {
			logger.Warn("read embedded example", "name", e.Name(), "err", err)
			continue
		}
		target := filepath.Join(dst, e.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		}
		if err := os.WriteFile(target, data, 0o755); err != nil {
			logger.Warn("seed example script", "name", e.Name(), "err", err)
		}
	}
	return nil
}
