package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_CaseInsensitive(t *testing.T) {
	c, ok := Canonical("typescript")
	require.True(t, ok)
	assert.Equal(t, "TypeScript", c)

	c, ok = Canonical("REACT")
	require.True(t, ok)
	assert.Equal(t, "React", c)

	c, ok = Canonical("html/css")
	require.True(t, ok)
	assert.Equal(t, "HTML/CSS", c)
}

func TestCanonical_Unknown(t *testing.T) {
	_, ok := Canonical("COBOL")
	assert.False(t, ok)

	_, ok = Canonical("")
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("kubernetes"))
	assert.True(t, Contains("Machine learning"))
	assert.False(t, Contains("Basket Weaving"))
}

func TestCatalog_NoDuplicateLowercaseForms(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range Catalog {
		lower := strings.ToLower(s)
		prev, dup := seen[lower]
		require.Falsef(t, dup, "catalog entries %q and %q collide case-insensitively", prev, s)
		seen[lower] = s
	}
}
