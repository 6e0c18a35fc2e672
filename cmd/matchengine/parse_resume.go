package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/resume"
	"github.com/jonathan/match-engine/internal/types"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a structured profile from a resume document",
	Long:  "Extracts text from a resume document (PDF, DOCX, or plain text), structures it into a profile with heuristic field extraction, and generates a professional summary. Extraction never fails: unreadable documents yield an empty profile.",
	RunE:  runParseResume,
}

// parsedResume is the output artifact of the parse-resume command. Each run
// is tagged with a fresh profile ID so downstream consumers can reference
// the extraction.
type parsedResume struct {
	ProfileID string        `json:"profile_id"`
	Profile   types.Profile `json:"profile"`
	AISummary string        `json:"ai_summary,omitempty"`
}

var (
	parseResumePath    string
	parseResumeOutput  string
	parseResumeVerbose bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumePath, "resume", "r", "", "Path to input resume document (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output profile JSON file (stdout if omitted)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a formatted profile summary to stderr")

	if err := parseResumeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", parseResumePath, err)
	}

	result := resume.Parse(filepath.Base(parseResumePath), content)

	if parseResumeVerbose {
		observability.NewPrinter(os.Stderr).PrintProfile(&result.Profile)
	}

	artifact := parsedResume{
		ProfileID: uuid.NewString(),
		Profile:   result.Profile,
		AISummary: result.AISummary,
	}

	return writeJSONOutput(parseResumeOutput, artifact)
}
