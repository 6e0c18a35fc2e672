// Package matching implements the deterministic multi-factor scoring engine
// that ranks how well a candidate profile fits a job posting.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// Weights for the five scoring dimensions. Each dimension is capped
// independently; the raw score is their sum before jitter and clamping.
const (
	requiredSkillWeight      = 50.0
	niceSkillWeight          = 15.0
	roleAlignmentPoints      = 15.0
	workPreferencePoints     = 10.0
	hybridPartialPoints      = 5.0
	experienceExactPoints    = 10.0
	experienceAdjacentPoints = 5.0
)

// Score bounds. The floor keeps every result from looking like zero interest;
// the ceiling reserves 100 as unreachable.
const (
	scoreFloor   = 15
	scoreCeiling = 99
)

// Score computes the match between a candidate and a job.
//
// Dimensions: required-skill coverage (0-50), nice-to-have coverage (0-15),
// role alignment (0 or 15), work-preference fit (0/5/10), experience-level fit
// (0/5/10). A small deterministic jitter derived from the job ID is added
// before clamping the total to [15, 99]. Identical inputs always produce an
// identical result.
func Score(candidate types.Candidate, job types.Job) types.MatchResult {
	candidateSkills := make(map[string]struct{}, len(candidate.Skills))
	for _, s := range candidate.Skills {
		candidateSkills[strings.ToLower(s)] = struct{}{}
	}

	// Required skills (up to 50 pts). The max(len, 1) guard avoids dividing
	// by zero without awarding free points for an empty requirement list.
	matchedRequired := matchSkills(job.RequiredSkills, candidateSkills)
	requiredScore := requiredSkillWeight * float64(len(matchedRequired)) / math.Max(float64(len(job.RequiredSkills)), 1)

	// Nice-to-have skills (up to 15 pts).
	matchedNice := matchSkills(job.NiceSkills, candidateSkills)
	niceScore := niceSkillWeight * float64(len(matchedNice)) / math.Max(float64(len(job.NiceSkills)), 1)

	reasons := make([]string, 0, 4)

	// Role alignment (15 pts): any significant word from a desired role
	// appearing in the job title wins, first match only.
	roleScore := 0.0
	jobTitleLower := strings.ToLower(job.Title)
	for _, role := range candidate.DesiredRoles {
		if roleMatchesTitle(role, jobTitleLower) {
			roleScore = roleAlignmentPoints
			reasons = append(reasons, fmt.Sprintf("Role matches your desired position: %s", role))
			break
		}
	}

	// Work preference (10 pts). Evaluated in fixed priority order: Remote,
	// then On-site, then Hybrid. Only the first matching preference counts.
	workScore := 0.0
	switch {
	case candidate.HasWorkPreference("Remote") && job.Remote:
		workScore = workPreferencePoints
		reasons = append(reasons, "Supports remote work")
	case candidate.HasWorkPreference("On-site") && !job.Remote:
		workScore = workPreferencePoints
	case candidate.HasWorkPreference("Hybrid"):
		workScore = hybridPartialPoints // partial match for hybrid
	}

	// Experience level (10 pts): exact tier match scores full, adjacent tiers
	// score half. Unrecognized level strings silently score zero.
	expScore := 0.0
	if candidate.ExperienceLevel != "" && job.ExperienceLevel != "" {
		if candidate.ExperienceLevel == job.ExperienceLevel {
			expScore = experienceExactPoints
			reasons = append(reasons, "Experience level is an exact match")
		} else {
			cIdx, cOK := types.LevelIndex(candidate.ExperienceLevel)
			jIdx, jOK := types.LevelIndex(job.ExperienceLevel)
			if cOK && jOK && absInt(cIdx-jIdx) == 1 {
				expScore = experienceAdjacentPoints
			}
		}
	}

	rawScore := requiredScore + niceScore + roleScore + workScore + expScore

	// Skill-count summary reasons go in front: required first, nice second.
	if len(matchedRequired) > 0 {
		reasons = insertReason(reasons, 0, fmt.Sprintf("Matches %d/%d required skills", len(matchedRequired), len(job.RequiredSkills)))
	}
	if len(matchedNice) > 0 {
		reasons = insertReason(reasons, 1, fmt.Sprintf("Matches %d/%d nice-to-have skills", len(matchedNice), len(job.NiceSkills)))
	}

	finalScore := int(math.Round(rawScore)) + jitter(job.ID)
	if finalScore > scoreCeiling {
		finalScore = scoreCeiling
	}
	if finalScore < scoreFloor {
		finalScore = scoreFloor
	}

	return types.MatchResult{
		MatchScore:      finalScore,
		MatchedRequired: matchedRequired,
		MatchedNice:     matchedNice,
		MatchReasons:    reasons,
	}
}

// ScoreValue returns only the integer match score, for callers that rank
// without needing the explanation.
func ScoreValue(candidate types.Candidate, job types.Job) int {
	return Score(candidate, job).MatchScore
}

// matchSkills returns the subset of jobSkills present in the candidate's
// lowercased skill set, preserving the job's ordering.
func matchSkills(jobSkills []string, candidateSkills map[string]struct{}) []string {
	matched := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := candidateSkills[strings.ToLower(s)]; ok {
			matched = append(matched, s)
		}
	}
	return matched
}

// roleMatchesTitle reports whether any word of the desired role longer than
// two characters appears in the lowercased job title.
func roleMatchesTitle(role, jobTitleLower string) bool {
	for _, word := range strings.Fields(role) {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(jobTitleLower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// insertReason inserts a reason at the given position, shifting the rest back.
func insertReason(reasons []string, at int, reason string) []string {
	if at > len(reasons) {
		at = len(reasons)
	}
	reasons = append(reasons, "")
	copy(reasons[at+1:], reasons[at:])
	reasons[at] = reason
	return reasons
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
