package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/ranking"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank job postings for a candidate profile",
	Long:  "Scores a candidate against every job in a postings file and emits the jobs sorted by match score descending, each paired with its full MatchResult.",
	RunE:  runRankJobs,
}

var (
	rankJobsCandidate string
	rankJobsJobs      string
	rankJobsOutput    string
	rankJobsConfig    string
	rankJobsTopN      int
	rankJobsVerbose   bool
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsCandidate, "candidate", "c", "", "Path to input candidate profile JSON file")
	rankJobsCmd.Flags().StringVarP(&rankJobsJobs, "jobs", "j", "", "Path to input JSON file containing an array of job postings")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output ranked jobs JSON file (stdout if omitted)")
	rankJobsCmd.Flags().StringVar(&rankJobsConfig, "config", "", "Path to a JSON config file supplying flag defaults")
	rankJobsCmd.Flags().IntVarP(&rankJobsTopN, "top", "n", 0, "Emit only the top N jobs (0 emits all)")
	rankJobsCmd.Flags().BoolVarP(&rankJobsVerbose, "verbose", "v", false, "Print a formatted ranking summary to stderr")

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(cmd *cobra.Command, _ []string) error {
	if rankJobsConfig != "" {
		cfg, err := config.LoadConfig(rankJobsConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		flags := config.Config{
			Candidate: rankJobsCandidate,
			Jobs:      rankJobsJobs,
			Output:    rankJobsOutput,
			TopN:      rankJobsTopN,
		}
		merged := flags.MergeWithDefaults(*cfg)
		rankJobsCandidate = merged.Candidate
		rankJobsJobs = merged.Jobs
		rankJobsOutput = merged.Output
		rankJobsTopN = merged.TopN
		if !cmd.Flags().Changed("verbose") {
			rankJobsVerbose = cfg.Verbose
		}
	}

	if rankJobsCandidate == "" {
		return fmt.Errorf("candidate path is required (via --candidate or config)")
	}
	if rankJobsJobs == "" {
		return fmt.Errorf("jobs path is required (via --jobs or config)")
	}

	candidate, err := loadCandidate(rankJobsCandidate)
	if err != nil {
		return err
	}

	jobs, err := loadJobs(rankJobsJobs)
	if err != nil {
		return err
	}

	ranked, err := ranking.RankJobs(cmd.Context(), candidate, jobs)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if rankJobsTopN > 0 && rankJobsTopN < len(ranked) {
		ranked = ranked[:rankJobsTopN]
	}

	if rankJobsVerbose {
		observability.NewPrinter(os.Stderr).PrintRankedJobs(ranked)
	}

	return writeJSONOutput(rankJobsOutput, ranked)
}
