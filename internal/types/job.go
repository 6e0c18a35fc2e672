// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents the job-posting attributes the scoring engine consumes.
// The ID is only used for deterministic score jitter; everything else is
// optional and tolerated when absent.
type Job struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	NiceSkills      []string `json:"nice_skills,omitempty"`
	Remote          bool     `json:"remote,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}
