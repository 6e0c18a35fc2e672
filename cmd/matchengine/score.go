package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/matching"
	"github.com/jonathan/match-engine/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against a single job posting",
	Long:  "Computes the deterministic match score for one candidate against one job posting, producing a MatchResult JSON with the score, matched skills, and human-readable reasons.",
	RunE:  runScore,
}

var (
	scoreCandidate string
	scoreJob       string
	scoreOutput    string
	scoreConfig    string
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input candidate profile JSON file")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input job posting JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchResult JSON file (stdout if omitted)")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to a JSON config file supplying flag defaults")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted scoring breakdown to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreConfig != "" {
		cfg, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		flags := config.Config{
			Candidate: scoreCandidate,
			Job:       scoreJob,
			Output:    scoreOutput,
		}
		merged := flags.MergeWithDefaults(*cfg)
		scoreCandidate = merged.Candidate
		scoreJob = merged.Job
		scoreOutput = merged.Output
		if !cmd.Flags().Changed("verbose") {
			scoreVerbose = cfg.Verbose
		}
	}

	if scoreCandidate == "" {
		return fmt.Errorf("candidate path is required (via --candidate or config)")
	}
	if scoreJob == "" {
		return fmt.Errorf("job path is required (via --job or config)")
	}

	candidate, err := loadCandidate(scoreCandidate)
	if err != nil {
		return err
	}

	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	result := matching.Score(candidate, job)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(job, result)
	}

	return writeJSONOutput(scoreOutput, result)
}
