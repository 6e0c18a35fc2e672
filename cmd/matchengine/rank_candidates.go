package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/config"
	"github.com/jonathan/match-engine/internal/ranking"
	"github.com/jonathan/match-engine/internal/types"
)

var rankCandidatesCmd = &cobra.Command{
	Use:   "rank-candidates",
	Short: "Rank candidate profiles against a single job posting",
	Long:  "Scores every candidate in a profiles file against one job posting and emits the candidates sorted by match score descending.",
	RunE:  runRankCandidates,
}

var (
	rankCandidatesFile   string
	rankCandidatesJob    string
	rankCandidatesOutput string
	rankCandidatesConfig string
	rankCandidatesTopN   int
)

func init() {
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesFile, "candidates", "c", "", "Path to input JSON file containing an array of candidate profiles")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesJob, "job", "j", "", "Path to input job posting JSON file")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesOutput, "out", "o", "", "Path to output ranked candidates JSON file (stdout if omitted)")
	rankCandidatesCmd.Flags().StringVar(&rankCandidatesConfig, "config", "", "Path to a JSON config file supplying flag defaults")
	rankCandidatesCmd.Flags().IntVarP(&rankCandidatesTopN, "top", "n", 0, "Emit only the top N candidates (0 emits all)")

	rootCmd.AddCommand(rankCandidatesCmd)
}

func runRankCandidates(cmd *cobra.Command, _ []string) error {
	if rankCandidatesConfig != "" {
		cfg, err := config.LoadConfig(rankCandidatesConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		flags := config.Config{
			Candidates: rankCandidatesFile,
			Job:        rankCandidatesJob,
			Output:     rankCandidatesOutput,
			TopN:       rankCandidatesTopN,
		}
		merged := flags.MergeWithDefaults(*cfg)
		rankCandidatesFile = merged.Candidates
		rankCandidatesJob = merged.Job
		rankCandidatesOutput = merged.Output
		rankCandidatesTopN = merged.TopN
	}

	if rankCandidatesFile == "" {
		return fmt.Errorf("candidates path is required (via --candidates or config)")
	}
	if rankCandidatesJob == "" {
		return fmt.Errorf("job path is required (via --job or config)")
	}

	content, err := os.ReadFile(rankCandidatesFile)
	if err != nil {
		return fmt.Errorf("failed to read candidates file %s: %w", rankCandidatesFile, err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(content, &candidates); err != nil {
		return fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}

	job, err := loadJob(rankCandidatesJob)
	if err != nil {
		return err
	}

	ranked, err := ranking.RankCandidates(cmd.Context(), candidates, job)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if rankCandidatesTopN > 0 && rankCandidatesTopN < len(ranked) {
		ranked = ranked[:rankCandidatesTopN]
	}

	return writeJSONOutput(rankCandidatesOutput, ranked)
}
