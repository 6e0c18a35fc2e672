package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestRunRankCandidates_WritesSortedResults(t *testing.T) {
	candidates := []types.Candidate{
		{Skills: []string{"Java"}},
		{Skills: []string{"React", "TypeScript"}, DesiredRoles: []string{"Frontend Engineer"}},
	}
	job := types.Job{ID: "job-1", Title: "Frontend Engineer", RequiredSkills: []string{"React", "TypeScript"}}

	rankCandidatesFile = writeTempJSON(t, "candidates.json", candidates)
	rankCandidatesJob = writeTempJSON(t, "job.json", job)
	rankCandidatesOutput = filepath.Join(t.TempDir(), "ranked.json")
	rankCandidatesConfig = ""
	rankCandidatesTopN = 0

	rankCandidatesCmd.SetContext(context.Background())
	require.NoError(t, runRankCandidates(rankCandidatesCmd, nil))

	data, err := os.ReadFile(rankCandidatesOutput)
	require.NoError(t, err)

	var ranked []types.RankedCandidate
	require.NoError(t, json.Unmarshal(data, &ranked))
	require.Len(t, ranked, 2)

	assert.Equal(t, []string{"React", "TypeScript"}, ranked[0].Candidate.Skills)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRunRankCandidates_ConfigSuppliesDefaults(t *testing.T) {
	candidates := []types.Candidate{
		{Skills: []string{"React"}},
		{Skills: []string{"Python"}},
	}
	job := types.Job{ID: "job-1", Title: "Engineer", RequiredSkills: []string{"React"}}
	outputPath := filepath.Join(t.TempDir(), "ranked.json")

	configPath := writeTempJSON(t, "config.json", map[string]any{
		"candidates": writeTempJSON(t, "candidates.json", candidates),
		"job":        writeTempJSON(t, "job.json", job),
		"output":     outputPath,
		"top_n":      1,
	})

	rankCandidatesFile = ""
	rankCandidatesJob = ""
	rankCandidatesOutput = ""
	rankCandidatesConfig = configPath
	rankCandidatesTopN = 0

	rankCandidatesCmd.SetContext(context.Background())
	require.NoError(t, runRankCandidates(rankCandidatesCmd, nil))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var ranked []types.RankedCandidate
	require.NoError(t, json.Unmarshal(data, &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"React"}, ranked[0].Candidate.Skills)
}

func TestRunRankCandidates_MissingCandidatesPath(t *testing.T) {
	rankCandidatesFile = ""
	rankCandidatesJob = writeTempJSON(t, "job.json", types.Job{ID: "job-1"})
	rankCandidatesOutput = ""
	rankCandidatesConfig = ""
	rankCandidatesTopN = 0

	rankCandidatesCmd.SetContext(context.Background())
	err := runRankCandidates(rankCandidatesCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidates path is required")
}

func TestRunRankCandidates_TopNTruncates(t *testing.T) {
	candidates := []types.Candidate{
		{Skills: []string{"React"}},
		{Skills: []string{"Python"}},
		{Skills: []string{"Go"}},
	}
	job := types.Job{ID: "job-1", Title: "Engineer", RequiredSkills: []string{"React"}}

	rankCandidatesFile = writeTempJSON(t, "candidates.json", candidates)
	rankCandidatesJob = writeTempJSON(t, "job.json", job)
	rankCandidatesOutput = filepath.Join(t.TempDir(), "ranked.json")
	rankCandidatesConfig = ""
	rankCandidatesTopN = 2

	rankCandidatesCmd.SetContext(context.Background())
	require.NoError(t, runRankCandidates(rankCandidatesCmd, nil))

	data, err := os.ReadFile(rankCandidatesOutput)
	require.NoError(t, err)

	var ranked []types.RankedCandidate
	require.NoError(t, json.Unmarshal(data, &ranked))
	assert.Len(t, ranked, 2)
}

func TestRunRankCandidates_MissingCandidatesFile(t *testing.T) {
	rankCandidatesFile = filepath.Join(t.TempDir(), "missing.json")
	rankCandidatesJob = writeTempJSON(t, "job.json", types.Job{ID: "job-1"})
	rankCandidatesOutput = ""
	rankCandidatesConfig = ""
	rankCandidatesTopN = 0

	rankCandidatesCmd.SetContext(context.Background())
	err := runRankCandidates(rankCandidatesCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read candidates file")
}
