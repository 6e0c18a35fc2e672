package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/taxonomy"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Suggest related skills for an existing skill set",
	Long:  "Looks up each skill in the adjacency graph and suggests related skills the candidate does not already have, capped at eight suggestions.",
	RunE:  runSuggestSkills,
}

type skillSuggestions struct {
	Skills    []string `json:"skills"`
	Suggested []string `json:"suggested_skills"`
}

var (
	suggestSkillsList    []string
	suggestSkillsOutput  string
	suggestSkillsVerbose bool
)

func init() {
	suggestSkillsCmd.Flags().StringSliceVarP(&suggestSkillsList, "skills", "s", nil, "Existing skills, comma-separated or repeated")
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsOutput, "out", "o", "", "Path to output suggestions JSON file (stdout if omitted)")
	suggestSkillsCmd.Flags().BoolVarP(&suggestSkillsVerbose, "verbose", "v", false, "Print a formatted suggestion summary to stderr")

	rootCmd.AddCommand(suggestSkillsCmd)
}

func runSuggestSkills(_ *cobra.Command, _ []string) error {
	suggested := taxonomy.Suggest(suggestSkillsList)

	if suggestSkillsVerbose {
		observability.NewPrinter(os.Stderr).PrintSuggestions(suggestSkillsList, suggested)
	}

	return writeJSONOutput(suggestSkillsOutput, skillSuggestions{
		Skills:    suggestSkillsList,
		Suggested: suggested,
	})
}
