package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/types"
)

// writeJSONOutput marshals v with indentation and writes it to path, creating
// parent directories as needed. An empty path writes to stdout.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonOutput)
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

// loadCandidate reads and unmarshals a candidate profile JSON file. Schema
// violations are reported on stderr but never block scoring.
func loadCandidate(path string) (types.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	if err := schemas.ValidateCandidate(string(content)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: candidate validation failed: %v\n", err)
	}

	var candidate types.Candidate
	if err := json.Unmarshal(content, &candidate); err != nil {
		return types.Candidate{}, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}

	return candidate, nil
}

// loadJob reads and unmarshals a single job posting JSON file.
func loadJob(path string) (types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Job{}, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if err := schemas.ValidateJob(string(content)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: job validation failed: %v\n", err)
	}

	var job types.Job
	if err := json.Unmarshal(content, &job); err != nil {
		return types.Job{}, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}

	return job, nil
}

// loadJobs reads and unmarshals a JSON array of job postings.
func loadJobs(path string) ([]types.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}

	return jobs, nil
}
