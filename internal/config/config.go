// Package config provides configuration types and defaults for slate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slate/internal/log"
)

// Config holds all configuration options for slate.
type Config struct {
	Interpreter string       `mapstructure:"interpreter"`
	AutoRefresh bool         `mapstructure:"auto_refresh"`
	UI          UIConfig     `mapstructure:"ui"`
	Theme       ThemeConfig  `mapstructure:"theme"`
	Run         RunConfig    `mapstructure:"run"`
	Cipher      CipherConfig `mapstructure:"cipher"`

	// Keywords overrides the built-in highlight word list when set.
	Keywords []string `mapstructure:"keywords"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar   bool `mapstructure:"show_status_bar"`
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	ShowHiddenFiles bool `mapstructure:"show_hidden_files"` // dotfiles in the explorer
}

// ThemeConfig holds theme selection.
type ThemeConfig struct {
	// Preset names a built-in palette. Valid values: "default",
	// "light", "midnight", "high-contrast". Unknown names fall back
	// to "default" at load time rather than failing startup.
	Preset string `mapstructure:"preset"`
}

// RunConfig holds run bridge options.
type RunConfig struct {
	// TimeoutSeconds bounds one run; zero means no timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Timeout returns the run timeout as a duration.
func (r RunConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// CipherConfig holds the XOR scrambling key.
type CipherConfig struct {
	Key int `mapstructure:"key"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Interpreter: "python3",
		AutoRefresh: true,
		UI: UIConfig{
			ShowStatusBar:   true,
			ShowLineNumbers: true,
			ShowHiddenFiles: false,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Run: RunConfig{
			TimeoutSeconds: 0,
		},
		Cipher: CipherConfig{
			Key: 67,
		},
	}
}

// Validate checks the configuration for errors. Empty values use
// defaults and are valid.
func Validate(cfg Config) error {
	if cfg.Cipher.Key < 0 || cfg.Cipher.Key > 255 {
		return fmt.Errorf("cipher.key must be between 0 and 255, got %d", cfg.Cipher.Key)
	}
	if cfg.Run.TimeoutSeconds < 0 {
		return fmt.Errorf("run.timeout_seconds must be >= 0, got %d", cfg.Run.TimeoutSeconds)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Slate Configuration

# Interpreter used to execute buffers (F5). Must accept a file path as
# its sole argument.
interpreter: python3

# Re-check open files when they change on disk
auto_refresh: true

# UI settings
ui:
  show_status_bar: true     # Show status bar at bottom
  show_line_numbers: true   # Show the line number gutter
  show_hidden_files: false  # Show dotfiles in the explorer

# Theme configuration
theme:
  # Use a preset (run 'slate themes' to see available presets):
  # preset: midnight
  #
  # Available presets:
  #   default        - Default slate dark theme
  #   light          - Light background palette
  #   midnight       - Deep blue dark palette
  #   high-contrast  - High contrast for accessibility

# Run settings
run:
  timeout_seconds: 0  # Kill runs after N seconds; 0 disables the limit

# XOR scrambling key used by the encrypt/decrypt actions (0-255)
cipher:
  key: 67

# Override the highlighted keyword list (defaults to Python reserved words)
# keywords:
#   - def
#   - class
#   - return
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
