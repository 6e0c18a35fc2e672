package resume

import (
	"regexp"
	"strconv"
	"time"

	"github.com/jonathan/match-engine/internal/types"
)

// Tier thresholds for total years of experience.
const (
	staffYears  = 10
	seniorYears = 6
	midYears    = 3
)

var presentPattern = regexp.MustCompile(`(?i)\b(present|current|now)\b`)

// InferExperienceLevel maps the total years spanned by the extracted
// experience entries onto the fixed tier vocabulary.
func InferExperienceLevel(entries []types.ExperienceEntry) string {
	return inferExperienceLevel(entries, time.Now().Year())
}

// inferExperienceLevel sums (end - start) for durations carrying two 4-digit
// years, or (currentYear - start) for durations carrying one year plus a
// present/current/now token. Durations matching neither shape contribute
// nothing.
func inferExperienceLevel(entries []types.ExperienceEntry, currentYear int) string {
	totalYears := 0
	for _, entry := range entries {
		years := yearPattern.FindAllString(entry.Duration, -1)
		switch {
		case len(years) >= 2:
			start, _ := strconv.Atoi(years[0])
			end, _ := strconv.Atoi(years[len(years)-1])
			totalYears += end - start
		case len(years) == 1 && presentPattern.MatchString(entry.Duration):
			start, _ := strconv.Atoi(years[0])
			totalYears += currentYear - start
		}
	}

	switch {
	case totalYears >= staffYears:
		return types.LevelStaff
	case totalYears >= seniorYears:
		return types.LevelSenior
	case totalYears >= midYears:
		return types.LevelMid
	default:
		return types.LevelEntry
	}
}
