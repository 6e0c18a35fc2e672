// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate represents the seeker attributes the scoring engine consumes.
// All fields are optional; missing values simply contribute nothing to the
// scoring dimension that reads them.
type Candidate struct {
	Skills          []string `json:"skills,omitempty"`
	DesiredRoles    []string `json:"desired_roles,omitempty"`
	WorkPreferences []string `json:"work_preferences,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

// HasWorkPreference reports whether the candidate listed the given preference.
// Matching is exact; the preference vocabulary is "Remote", "Hybrid", "On-site".
func (c *Candidate) HasWorkPreference(pref string) bool {
	for _, p := range c.WorkPreferences {
		if p == pref {
			return true
		}
	}
	return false
}
