// Package types provides type definitions for structured data used throughout the match-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Canonical experience-level tiers, ordered from lowest to highest.
const (
	LevelEntry     = "Entry Level (0-2 yrs)"
	LevelMid       = "Mid Level (3-5 yrs)"
	LevelSenior    = "Senior (6-9 yrs)"
	LevelStaff     = "Staff / Lead (10+ yrs)"
	LevelExecutive = "Executive / Director"
)

// ExperienceLevels is the fixed ordered vocabulary of experience tiers.
// Index distance between two levels is what the scoring engine uses for
// adjacent-tier partial credit.
var ExperienceLevels = []string{
	LevelEntry,
	LevelMid,
	LevelSenior,
	LevelStaff,
	LevelExecutive,
}

// LevelIndex returns the tier index of the given level string and whether it
// belongs to the vocabulary. Unrecognized strings are not an error; callers
// treat them as "no level specified".
func LevelIndex(level string) (int, bool) {
	for i, l := range ExperienceLevels {
		if l == level {
			return i, true
		}
	}
	return 0, false
}
