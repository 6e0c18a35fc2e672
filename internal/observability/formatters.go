// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable scoring breakdown for one job.
func (p *Printer) PrintMatchResult(job types.Job, result types.MatchResult) {
	var sb strings.Builder

	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Job:    %s\n", job.Title))
	}
	if job.ID != "" {
		sb.WriteString(fmt.Sprintf("ID:     %s\n", job.ID))
	}
	sb.WriteString(fmt.Sprintf("Score:  %d\n", result.MatchScore))

	if len(result.MatchedRequired) > 0 {
		sb.WriteString(fmt.Sprintf("\nRequired matched: %s\n", joinTruncated(result.MatchedRequired)))
	}
	if len(result.MatchedNice) > 0 {
		sb.WriteString(fmt.Sprintf("Nice-to-have matched: %s\n", joinTruncated(result.MatchedNice)))
	}

	if len(result.MatchReasons) > 0 {
		sb.WriteString("\nReasons:\n")
		for _, reason := range result.MatchReasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top ranked jobs with scores and matched skills.
func (p *Printer) PrintRankedJobs(ranked []types.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranked[i]
		title := job.Job.Title
		if title == "" {
			title = job.Job.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", job.Result.MatchScore))
		if len(job.Result.MatchedRequired) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", joinTruncated(job.Result.MatchedRequired)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of a structured resume profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", profile.Email))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	}
	if profile.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:     %s\n", profile.ExperienceLevel))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d): %s\n", len(profile.Skills), joinTruncated(profile.Skills)))
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s", entry.Title, entry.Company))
			if entry.Duration != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Duration))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Education[i].Degree))
		}
	}

	p.printBox("STRUCTURED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs suggested skills for an existing skill set.
func (p *Printer) PrintSuggestions(existing, suggested []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Existing skills: %s\n", joinTruncated(existing)))
	if len(suggested) == 0 {
		sb.WriteString("\nNo suggestions available.")
	} else {
		sb.WriteString("\nSuggestions:\n")
		for _, skill := range suggested {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("SKILL SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func joinTruncated(items []string) string {
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}
