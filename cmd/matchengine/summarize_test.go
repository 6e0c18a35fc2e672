package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestRunSummarize_WritesSummaryArtifact(t *testing.T) {
	profile := types.EmptyProfile()
	profile.Name = "Jane Doe"
	profile.Skills = []string{"React", "TypeScript"}
	profile.DesiredRoles = []string{"Frontend Engineer"}
	profile.ExperienceLevel = types.LevelSenior
	profile.Experience = []types.ExperienceEntry{
		{Title: "Senior Frontend Engineer", Company: "Initech", Description: "Led the design system rebuild"},
	}

	summarizeProfile = writeTempJSON(t, "profile.json", profile)
	summarizeOutput = filepath.Join(t.TempDir(), "summary.json")

	require.NoError(t, runSummarize(nil, nil))

	data, err := os.ReadFile(summarizeOutput)
	require.NoError(t, err)

	var out profileSummary
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Contains(t, out.Summary, "Results-driven senior professional")
	assert.Contains(t, out.Summary, "Senior Frontend Engineer at Initech")
	assert.Equal(t, "Frontend Engineer | React & TypeScript Expert", out.SuggestedHeadline)
	assert.Contains(t, out.SuggestedSkills, "Next.js")
	assert.NotContains(t, out.SuggestedSkills, "TypeScript")
}

func TestRunSummarize_MinimalProfile(t *testing.T) {
	summarizeProfile = writeTempJSON(t, "profile.json", types.EmptyProfile())
	summarizeOutput = filepath.Join(t.TempDir(), "summary.json")

	require.NoError(t, runSummarize(nil, nil))

	data, err := os.ReadFile(summarizeOutput)
	require.NoError(t, err)

	var out profileSummary
	require.NoError(t, json.Unmarshal(data, &out))

	assert.NotEmpty(t, out.Summary)
	assert.Equal(t, "Professional", out.SuggestedHeadline)
	assert.Empty(t, out.SuggestedSkills)
}

func TestRunSummarize_MissingProfileFile(t *testing.T) {
	summarizeProfile = filepath.Join(t.TempDir(), "missing.json")
	summarizeOutput = ""

	err := runSummarize(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}
