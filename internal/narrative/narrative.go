// Package narrative assembles short professional summary and headline strings
// from structured profile fields. Pure string assembly: no randomness, no
// external calls, deterministic for identical inputs.
package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

const (
	maxSummarySkills  = 5
	maxSummaryRoles   = 2
	maxHeadlineSkills = 2
)

// fallbackAccomplishment fills the experience sentence when the latest entry
// carries no description.
const fallbackAccomplishment = "they drove impactful results"

// Summary generates a 2-3 sentence professional summary: an opening naming the
// seniority word and leading skills, an optional middle sentence about the
// most recent experience entry, and a fixed closing naming the desired roles.
func Summary(name string, skills, desiredRoles []string, experienceLevel string, experience []types.ExperienceEntry) string {
	levelWord := ""
	if experienceLevel != "" {
		levelWord = strings.ToLower(strings.Fields(experienceLevel)[0])
	}
	skillList := strings.Join(firstN(skills, maxSummarySkills), ", ")

	roleList := "technology"
	if len(desiredRoles) > 0 {
		roleList = strings.Join(firstN(desiredRoles, maxSummaryRoles), " and ")
	}

	parts := []string{
		fmt.Sprintf("Results-driven %s professional with deep expertise in %s.", levelWord, skillList),
	}

	if len(experience) > 0 {
		latest := experience[0]
		accomplishment := latest.Description
		if accomplishment == "" {
			accomplishment = fallbackAccomplishment
		}
		parts = append(parts, fmt.Sprintf(
			"Most recently served as %s at %s, where %s.",
			latest.Title, latest.Company,
			strings.TrimRight(strings.ToLower(accomplishment), "."),
		))
	}

	parts = append(parts,
		"Passionate about building innovative solutions and seeking "+
			fmt.Sprintf("opportunities in %s. ", roleList)+
			"Known for strong problem-solving abilities, cross-functional "+
			"collaboration, and delivering high-quality work in fast-paced environments.")

	return strings.Join(parts, " ")
}

// Headline generates a "{role} | {skill1} & {skill2} Expert" headline. With no
// skills the suffix is omitted entirely; with no desired roles the role
// defaults to "Professional".
func Headline(name string, skills, desiredRoles []string) string {
	role := "Professional"
	if len(desiredRoles) > 0 {
		role = desiredRoles[0]
	}
	topSkills := strings.Join(firstN(skills, maxHeadlineSkills), " & ")
	if topSkills == "" {
		return role
	}
	return fmt.Sprintf("%s | %s Expert", role, topSkills)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
