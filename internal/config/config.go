// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to decoded resume text file
	Output string `json:"output,omitempty"` // Path to output JSON file ("-" or empty for stdout)

	// Behavior
	Pretty         bool `json:"pretty,omitempty"`          // Indent the output JSON
	Verbose        bool `json:"verbose,omitempty"`         // Print a human-readable summary
	JSONLogs       bool `json:"json_logs,omitempty"`       // Emit logs as JSON
	ValidateSchema bool `json:"validate_schema,omitempty"` // Check output against the ParsedResume schema

	// CurrentYear fixes the graduation-year plausibility bound. Zero means
	// "use the wall clock"; set it for reproducible output.
	CurrentYear int `json:"current_year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read, parsed, or validated.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for implausible values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
