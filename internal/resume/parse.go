package resume

import (
	"strings"

	"github.com/jonathan/match-engine/internal/extract"
	"github.com/jonathan/match-engine/internal/narrative"
	"github.com/jonathan/match-engine/internal/types"
)

// Parse runs the full resume pipeline: extract text from the file bytes,
// structure it into a profile, and generate the summary text. Blank or
// whitespace-only extracted text short-circuits to a minimal empty profile
// instead of running the heuristics on nothing. Parse never fails: malformed
// input degrades, it does not error.
func Parse(filename string, content []byte) types.ParseResult {
	text := extract.Text(filename, content)

	if strings.TrimSpace(text) == "" {
		return types.ParseResult{Profile: types.EmptyProfile()}
	}

	profile := Structure(text)
	summary := narrative.Summary(
		profile.Name,
		profile.Skills,
		profile.DesiredRoles,
		profile.ExperienceLevel,
		profile.Experience,
	)

	return types.ParseResult{Profile: profile, AISummary: summary}
}
