// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is the structured candidate profile produced by resume extraction.
// Fields the heuristics cannot plausibly infer from free text (desired roles,
// work preferences, salary range, industries) are always left empty.
type Profile struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Headline        string            `json:"headline"`
	Location        string            `json:"location"`
	Skills          []string          `json:"skills"`
	DesiredRoles    []string          `json:"desired_roles"`
	ExperienceLevel string            `json:"experience_level"`
	WorkPreferences []string          `json:"work_preferences"`
	SalaryRange     string            `json:"salary_range"`
	Industries      []string          `json:"industries"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Summary         string            `json:"summary"`
}

// ExperienceEntry is a single work-history item extracted from a resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is a single education item extracted from a resume.
type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// ParseResult bundles the extracted profile with the generated summary text.
type ParseResult struct {
	Profile   Profile `json:"profile"`
	AISummary string  `json:"ai_summary"`
}

// EmptyProfile returns a minimal default profile: every string field empty,
// every slice non-nil and empty, experience level at the bottom tier.
func EmptyProfile() Profile {
	return Profile{
		Skills:          []string{},
		DesiredRoles:    []string{},
		ExperienceLevel: LevelEntry,
		WorkPreferences: []string{},
		Industries:      []string{},
		Experience:      []ExperienceEntry{},
		Education:       []EducationEntry{},
	}
}
