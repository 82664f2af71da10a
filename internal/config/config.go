// SPDX-License-Identifier: MPL-2.0

// Package config loads scriptdeck's application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "scriptdeck"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config is the long-lived application configuration. It is loaded once at
// startup; the scripts directory path is fixed for the process lifetime.
type Config struct {
	// ScriptsDir is the root scripts directory the command tree mirrors.
	ScriptsDir string `mapstructure:"scripts_dir"`

	// DebounceMS is the watcher debounce window in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`

	// Ignore are additional glob patterns the watcher skips.
	Ignore []string `mapstructure:"ignore"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Debounce returns the configured watcher debounce window. Zero means the
// watcher default.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ConfigDir returns the scriptdeck configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultScriptsDir returns the default scripts root, a "scripts"
// subdirectory of the configuration directory.
func DefaultScriptsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scripts"), nil
}

// DefaultConfig returns the built-in defaults. ScriptsDir is left empty here
// and resolved by Load so that config-file and environment overrides win.
func DefaultConfig() *Config {
	return &Config{
		DebounceMS: 0,
		LogLevel:   "info",
	}
}

// Load reads configuration from the config file (if present), the
// environment (SCRIPTDECK_* variables), and the defaults, in descending
// precedence. cfgFile overrides the default config file location when
// non-empty. A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("scripts_dir", "")
	v.SetDefault("debounce_ms", defaults.DebounceMS)
	v.SetDefault("ignore", []string{})
	v.SetDefault("log_level", defaults.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ScriptsDir == "" {
		dir, err := DefaultScriptsDir()
		if err != nil {
			return nil, err
		}
		cfg.ScriptsDir = dir
	}

	abs, err := filepath.Abs(cfg.ScriptsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve scripts directory: %w", err)
	}
	cfg.ScriptsDir = abs

	return cfg, nil
}
