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
	// Catalog
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty uses the in-memory catalog
	CareersFile string `json:"careers_file,omitempty"` // Path to a JSON career seed file for the in-memory catalog

	// Text generation
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty disables narrative sections

	// Behavior
	MatchLimit int  `json:"match_limit,omitempty"` // Maximum career matches per report
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
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
	if c.MatchLimit < 0 {
		return fmt.Errorf("config error: 'match_limit' must be non-negative")
	}

	if c.CareersFile != "" {
		if _, err := os.Stat(c.CareersFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: careers file not found: %s", c.CareersFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CareersFile == "" {
		result.CareersFile = defaults.CareersFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MatchLimit == 0 {
		result.MatchLimit = defaults.MatchLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
