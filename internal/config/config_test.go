// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	wantDir, err := DefaultScriptsDir()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScriptsDir != wantDir {
		t.Errorf("ScriptsDir = %q, want %q", cfg.ScriptsDir, wantDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Debounce() != 0 {
		t.Errorf("Debounce() = %v, want 0 (watcher default)", cfg.Debounce())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	scripts := filepath.Join(dir, "my-scripts")
	content := "scripts_dir = \"" + filepath.ToSlash(scripts) + "\"\n" +
		"debounce_ms = 750\n" +
		"log_level = \"debug\"\n" +
		"ignore = [\"**/tmp/**\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScriptsDir != scripts {
		t.Errorf("ScriptsDir = %q, want %q", cfg.ScriptsDir, scripts)
	}
	if cfg.Debounce() != 750*time.Millisecond {
		t.Errorf("Debounce() = %v, want 750ms", cfg.Debounce())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "**/tmp/**" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
}

func TestLoadExplicitConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("debounce_ms = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Debounce() != 100*time.Millisecond {
		t.Errorf("Debounce() = %v, want 100ms", cfg.Debounce())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	scripts := t.TempDir()
	t.Setenv("SCRIPTDECK_SCRIPTS_DIR", scripts)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScriptsDir != scripts {
		t.Errorf("ScriptsDir = %q, want env override %q", cfg.ScriptsDir, scripts)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("scripts_dir = [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected an error for malformed config")
	}
}
