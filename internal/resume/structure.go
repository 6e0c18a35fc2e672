// Package resume turns unstructured resume text into a structured candidate
// profile using regex heuristics and the shared skill taxonomy. Every field
// rule is independent and best-effort: a rule that finds nothing yields an
// empty or default value, never an error.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/match-engine/internal/taxonomy"
	"github.com/jonathan/match-engine/internal/types"
)

const (
	// nameScanLines bounds how far into the document the name heuristic looks.
	nameScanLines = 5
	maxNameLen    = 60

	minExperienceTitleWords = 2
	maxExperienceTitleWords = 7
	minExperienceLineLen    = 10
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phonePattern = regexp.MustCompile(`(\+?1[\s.-]?)?(\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4})`)

	// One to five capitalized-ish words, optionally hyphen/apostrophe-joined.
	namePattern = regexp.MustCompile(`^[A-Za-z]+([\s\-'][A-Za-z]+){1,4}$`)

	// "Capitalized City, ST" or "Capitalized City, State".
	locationPattern = regexp.MustCompile(`\b([A-Z][a-zA-Z ]+),\s*([A-Z]{2}|[A-Z][a-z]+)\b`)

	// Skills and summary captures run to the next blank line (summary also
	// stops at an all-caps header); experience and education captures run to
	// the next known section header.
	skillsSectionPattern     = regexp.MustCompile(`(?is)(?:skills|technical skills|core competencies)[:\s]*\n?(.*?)(?:\n\n|\z)`)
	experienceSectionPattern = regexp.MustCompile(`(?is)(?:experience|work history|employment)[:\s]*\n(.*?)(?:\n(?:education|skills|projects|certifications)\b|\z)`)
	educationSectionPattern  = regexp.MustCompile(`(?is)(?:education|academic background)[:\s]*\n(.*?)(?:\n(?:experience|skills|projects|certifications)\b|\z)`)
	summaryPattern           = regexp.MustCompile(`(?is)(?:summary|objective|profile|about)[:\s]*\n?(.*?)(?:\n\n|\n(?:[A-Z][A-Z\s]{3,}:)|\z)`)

	// "Title at Company" per line, with an optional "| date range" capture and
	// an optional discarded separator tail (e.g. "- Mountain View" after the
	// company, or "| NYC" after the dates).
	experiencePattern = regexp.MustCompile(`(?m)([A-Z][A-Za-z /,]+?)\s+at\s+([A-Z][A-Za-z &,.]+?)(?:\s*[|–-]\s*([\w ,–-]+\d{4}[\w ,–-]*))?\s*(?:[|–-][^\n]*)?$`)

	degreePattern       = regexp.MustCompile(`(?i)(?:B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|MBA|Ph\.?D\.?|Bachelor|Master|Doctor|Associate)`)
	inlineDegreePattern = regexp.MustCompile(`(?i)((?:B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|MBA|Ph\.?D\.?|Bachelor|Master|Doctor|Associate)[^,\n]{0,60})`)

	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	anyYearLikeRun = regexp.MustCompile(`\d{4}`)
)

// skillMatcher pairs a canonical taxonomy skill with its word-boundary-aware
// pattern over lowercased text. RE2 has no lookarounds, so boundaries are
// expressed as non-alphanumeric (or string edge) context on both sides.
type skillMatcher struct {
	canonical string
	pattern   *regexp.Regexp
}

var skillMatchers = func() []skillMatcher {
	matchers := make([]skillMatcher, 0, len(taxonomy.Catalog))
	for _, canonical := range taxonomy.Catalog {
		lower := strings.ToLower(canonical)
		pattern := regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(lower) + `(?:$|[^a-z0-9])`)
		matchers = append(matchers, skillMatcher{canonical: canonical, pattern: pattern})
	}
	return matchers
}()

// Structure extracts a structured profile from plain resume text. Pure
// function: no side effects, identical text always yields an identical
// profile. Fields the heuristics cannot infer from free text stay empty.
func Structure(text string) types.Profile {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	profile := types.EmptyProfile()
	profile.Name = extractName(text)
	profile.Email = emailPattern.FindString(text)
	profile.Phone = strings.TrimSpace(phonePattern.FindString(text))
	profile.Location = locationPattern.FindString(text)
	profile.Skills = extractSkills(text)
	profile.Experience = extractExperience(text)
	profile.Education = extractEducation(text)
	profile.Summary = extractSummary(text)
	profile.ExperienceLevel = InferExperienceLevel(profile.Experience)
	return profile
}

// extractName scans the first five non-blank lines, skipping any line that
// carries an email or phone, and accepts the first short line shaped like a
// person's name.
func extractName(text string) string {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		count++
		if count > nameScanLines {
			break
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		if len(line) < maxNameLen && namePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractSkills runs two passes over the taxonomy: a whole-text search, then a
// search restricted to an explicit skills section for anything missed. The
// result preserves taxonomy order and holds no duplicates.
func extractSkills(text string) []string {
	textLower := strings.ToLower(text)
	found := make([]string, 0, 16)
	seen := make(map[string]struct{})

	for _, m := range skillMatchers {
		if m.pattern.MatchString(textLower) {
			found = append(found, m.canonical)
			seen[m.canonical] = struct{}{}
		}
	}

	if section := skillsSectionPattern.FindStringSubmatch(text); section != nil {
		sectionLower := strings.ToLower(section[1])
		for _, m := range skillMatchers {
			if _, ok := seen[m.canonical]; ok {
				continue
			}
			if m.pattern.MatchString(sectionLower) {
				found = append(found, m.canonical)
				seen[m.canonical] = struct{}{}
			}
		}
	}
	return found
}

// extractExperience prefers "Title at Company | duration" line matches; when
// none exist it falls back to year-bearing lines inside a detected experience
// section, keeping the whole line as the title.
func extractExperience(text string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0, 4)

	for _, m := range experiencePattern.FindAllStringSubmatch(text, -1) {
		title := strings.TrimSpace(m[1])
		company := strings.TrimRight(strings.TrimSpace(m[2]), ",.")
		duration := strings.TrimSpace(m[3])
		words := len(strings.Fields(title))
		if words >= minExperienceTitleWords && words <= maxExperienceTitleWords {
			entries = append(entries, types.ExperienceEntry{
				Title:    title,
				Company:  company,
				Duration: duration,
			})
		}
	}
	if len(entries) > 0 {
		return entries
	}

	section := experienceSectionPattern.FindStringSubmatch(text)
	if section == nil {
		return entries
	}
	for _, line := range strings.Split(section[1], "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minExperienceLineLen && anyYearLikeRun.MatchString(line) {
			entries = append(entries, types.ExperienceEntry{Title: line})
		}
	}
	return entries
}

// extractEducation prefers a detected education section, keeping lines with a
// degree keyword or a 4-digit year. Without a section it falls back to inline
// degree-keyword mentions anywhere in the text.
func extractEducation(text string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0, 2)

	if section := educationSectionPattern.FindStringSubmatch(text); section != nil {
		for _, line := range strings.Split(section[1], "\n") {
			line = strings.TrimSpace(line)
			if degreePattern.MatchString(line) || yearPattern.MatchString(line) {
				entries = append(entries, types.EducationEntry{
					Degree: line,
					Year:   yearPattern.FindString(line),
				})
			}
		}
		return entries
	}

	for _, m := range inlineDegreePattern.FindAllStringSubmatch(text, -1) {
		degree := strings.TrimSpace(m[1])
		entries = append(entries, types.EducationEntry{
			Degree: degree,
			Year:   yearPattern.FindString(degree),
		})
	}
	return entries
}

// extractSummary captures text after a summary-style header up to the next
// blank line or all-caps section header.
func extractSummary(text string) string {
	if m := summaryPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
