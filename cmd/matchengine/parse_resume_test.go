package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
jane.doe@example.com
(415) 555-0199
San Francisco, CA

EXPERIENCE
Senior Frontend Engineer at Initech | 2018 - 2022

SKILLS
React, TypeScript, GraphQL
`

func TestRunParseResume_WritesProfileArtifact(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))

	parseResumePath = resumePath
	parseResumeOutput = filepath.Join(dir, "profile.json")
	parseResumeVerbose = false

	require.NoError(t, runParseResume(nil, nil))

	data, err := os.ReadFile(parseResumeOutput)
	require.NoError(t, err)

	var artifact parsedResume
	require.NoError(t, json.Unmarshal(data, &artifact))

	_, err = uuid.Parse(artifact.ProfileID)
	assert.NoError(t, err, "profile_id should be a valid UUID")
	assert.Equal(t, "Jane Doe", artifact.Profile.Name)
	assert.Equal(t, "jane.doe@example.com", artifact.Profile.Email)
	assert.Contains(t, artifact.Profile.Skills, "React")
	assert.NotEmpty(t, artifact.AISummary)
}

func TestRunParseResume_FreshProfileIDPerRun(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0644))

	parseResumePath = resumePath
	parseResumeVerbose = false

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		parseResumeOutput = filepath.Join(dir, "profile.json")
		require.NoError(t, runParseResume(nil, nil))

		data, err := os.ReadFile(parseResumeOutput)
		require.NoError(t, err)

		var artifact parsedResume
		require.NoError(t, json.Unmarshal(data, &artifact))
		ids[artifact.ProfileID] = struct{}{}
	}

	assert.Len(t, ids, 3)
}

func TestRunParseResume_EmptyDocumentYieldsEmptyProfile(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("   \n  "), 0644))

	parseResumePath = resumePath
	parseResumeOutput = filepath.Join(dir, "profile.json")
	parseResumeVerbose = false

	require.NoError(t, runParseResume(nil, nil))

	data, err := os.ReadFile(parseResumeOutput)
	require.NoError(t, err)

	var artifact parsedResume
	require.NoError(t, json.Unmarshal(data, &artifact))

	assert.Empty(t, artifact.Profile.Name)
	assert.Empty(t, artifact.Profile.Skills)
	assert.Empty(t, artifact.AISummary)
}

func TestRunParseResume_MissingFile(t *testing.T) {
	parseResumePath = filepath.Join(t.TempDir(), "missing.pdf")
	parseResumeOutput = ""

	err := runParseResume(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}
