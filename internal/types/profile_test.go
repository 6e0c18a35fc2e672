package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyProfile_NonNilSlices(t *testing.T) {
	p := EmptyProfile()

	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.DesiredRoles)
	assert.NotNil(t, p.WorkPreferences)
	assert.NotNil(t, p.Industries)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)

	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Experience)
}

func TestEmptyProfile_DefaultsToEntryLevel(t *testing.T) {
	assert.Equal(t, LevelEntry, EmptyProfile().ExperienceLevel)
}

func TestEmptyProfile_MarshalsSlicesAsArrays(t *testing.T) {
	data, err := json.Marshal(EmptyProfile())
	require.NoError(t, err)

	// Empty slices serialize as [], not null, so API consumers never see
	// null for list-valued fields.
	assert.Contains(t, string(data), `"skills":[]`)
	assert.Contains(t, string(data), `"experience":[]`)
	assert.NotContains(t, string(data), "null")
}

func TestProfile_JSONRoundTrip(t *testing.T) {
	original := EmptyProfile()
	original.Name = "Jane Doe"
	original.Email = "jane@example.com"
	original.Skills = []string{"React"}
	original.Experience = []ExperienceEntry{
		{Title: "Engineer", Company: "Initech", Duration: "2018 - 2022", Description: "Built dashboards"},
	}
	original.Education = []EducationEntry{
		{Degree: "B.S. Computer Science", Year: "2015"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Profile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestParseResult_JSONShape(t *testing.T) {
	result := ParseResult{Profile: EmptyProfile(), AISummary: "summary text"}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"profile":`)
	assert.Contains(t, string(data), `"ai_summary":"summary text"`)
}
