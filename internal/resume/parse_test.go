package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestParse_EmptyContent(t *testing.T) {
	result := Parse("resume.pdf", nil)

	assert.Equal(t, types.EmptyProfile(), result.Profile)
	assert.Empty(t, result.AISummary)
	// Slices are present, not null, so downstream JSON shows [].
	assert.NotNil(t, result.Profile.Skills)
	assert.NotNil(t, result.Profile.Experience)
	assert.Equal(t, types.LevelEntry, result.Profile.ExperienceLevel)
}

func TestParse_WhitespaceOnlyTextShortCircuits(t *testing.T) {
	result := Parse("resume.txt", []byte("   \n\t \n"))
	assert.Equal(t, types.EmptyProfile(), result.Profile)
	assert.Empty(t, result.AISummary)
}

func TestParse_PlainTextResume(t *testing.T) {
	result := Parse("resume.txt", []byte(sampleResume))

	require.NotEmpty(t, result.Profile.Skills)
	assert.Equal(t, "Jane Doe", result.Profile.Name)
	assert.Contains(t, result.AISummary, "Results-driven senior professional")
	assert.Contains(t, result.AISummary, "Senior Frontend Engineer at Initech")
}

func TestParse_NeverPanics(t *testing.T) {
	for _, filename := range []string{"cv.pdf", "cv.docx", "cv.doc", ""} {
		assert.NotPanics(t, func() {
			_ = Parse(filename, []byte{0x00, 0xff, 0x13, 0x37})
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	first := Parse("resume.txt", []byte(sampleResume))
	second := Parse("resume.txt", []byte(sampleResume))
	assert.Equal(t, first, second)
}
