package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config represents the notedoc configuration
type Config struct {
	NotesFile         string `json:"notes_file"`
	LogFile           string `json:"log_file"`
	LogLevel          string `json:"log_level,omitempty"`
	ExportDir         string `json:"export_dir"`
	PreviewLength     int    `json:"preview_length,omitempty"`
	CharsPerMinute    int    `json:"chars_per_minute,omitempty"`
	ExportFrontMatter bool   `json:"export_front_matter,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		NotesFile:      NotesFilePath(),
		LogFile:        filepath.Join(xdg.StateHome, "notedoc", "notedoc.log"),
		LogLevel:       "info",
		ExportDir:      filepath.Join(home, "Documents", "notedoc"),
		PreviewLength:  60,
		CharsPerMinute: 400,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notedoc", "config.json")
	}
	return filepath.Join(home, ".config", "notedoc", "config.json")
}

// NotesFilePath returns the default location of the note store
// Can be overridden for testing
var NotesFilePath = func() string {
	return filepath.Join(xdg.DataHome, "notedoc", "notes.json")
}

// Load reads configuration from the config directory.
// Fields missing from the file keep their defaults.
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.NotesFile == "" {
		return fmt.Errorf("notes_file cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir cannot be empty")
	}
	if c.PreviewLength < 0 {
		return fmt.Errorf("preview_length cannot be negative")
	}
	if c.CharsPerMinute < 0 {
		return fmt.Errorf("chars_per_minute cannot be negative")
	}

	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.NotesFile, err = expandPath(c.NotesFile)
	if err != nil {
		return fmt.Errorf("failed to expand notes_file: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	c.ExportDir, err = expandPath(c.ExportDir)
	if err != nil {
		return fmt.Errorf("failed to expand export_dir: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
