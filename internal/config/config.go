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
	// Paths
	Candidate  string `json:"candidate,omitempty"`  // Path to candidate profile JSON
	Candidates string `json:"candidates,omitempty"` // Path to a JSON array of candidate profiles
	Job        string `json:"job,omitempty"`        // Path to a single job posting JSON
	Jobs       string `json:"jobs,omitempty"`       // Path to a JSON array of job postings
	Resume     string `json:"resume,omitempty"`     // Path to a resume document (PDF, DOCX, or text)
	Output     string `json:"output,omitempty"`     // Path to write JSON output; stdout when empty

	// Limits
	TopN int `json:"top_n,omitempty"` // Maximum ranked results to emit (0 means all)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed scoring breakdowns
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.Jobs != "" {
		return fmt.Errorf("config error: 'job' and 'jobs' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct {
		label string
		path  string
	}{
		{"candidate", c.Candidate},
		{"candidates", c.Candidates},
		{"job", c.Job},
		{"jobs", c.Jobs},
		{"resume", c.Resume},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.label, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
