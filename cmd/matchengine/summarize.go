package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/narrative"
	"github.com/jonathan/match-engine/internal/taxonomy"
	"github.com/jonathan/match-engine/internal/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate a professional summary for a structured profile",
	Long:  "Generates a deterministic professional summary, a suggested headline, and complementary skill suggestions from a structured profile JSON (as produced by parse-resume).",
	RunE:  runSummarize,
}

// profileSummary is the output artifact of the summarize command.
type profileSummary struct {
	Summary           string   `json:"summary"`
	SuggestedHeadline string   `json:"suggested_headline"`
	SuggestedSkills   []string `json:"suggested_skills"`
}

var (
	summarizeProfile string
	summarizeOutput  string
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeProfile, "profile", "p", "", "Path to input structured profile JSON file (required)")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "out", "o", "", "Path to output summary JSON file (stdout if omitted)")

	if err := summarizeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(summarizeProfile)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", summarizeProfile, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	summary := narrative.Summary(profile.Name, profile.Skills, profile.DesiredRoles, profile.ExperienceLevel, profile.Experience)

	return writeJSONOutput(summarizeOutput, profileSummary{
		Summary:           summary,
		SuggestedHeadline: narrative.Headline(profile.Name, profile.Skills, profile.DesiredRoles),
		SuggestedSkills:   taxonomy.Suggest(profile.Skills),
	})
}
