// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalogue overrides. Empty means the embedded defaults.
	VocabularyPath string `json:"vocabulary_path,omitempty"` // Path to skill vocabulary JSON
	RolesPath      string `json:"roles_path,omitempty"`      // Path to role catalogue JSON

	// Behavior
	TopN      int    `json:"top_n,omitempty"`      // Ranked roles to include in reports
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed report boxes
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level name
	LogFormat string `json:"log_format,omitempty"` // "json" or "pretty"
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}
	if c.RolesPath != "" {
		if _, err := os.Stat(c.RolesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: roles file not found: %s", c.RolesPath)
		}
	}

	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be \"json\" or \"pretty\"")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.RolesPath == "" {
		result.RolesPath = defaults.RolesPath
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
