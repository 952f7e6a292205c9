package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestLookup(t *testing.T) {
	skill, ok := Lookup("python")
	require.True(t, ok)
	assert.Equal(t, "python", skill.Name)
	assert.Equal(t, "Python", skill.Display)
	assert.Equal(t, types.CategoryProgramming, skill.Category)

	_, ok = Lookup("not-a-skill")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sql", "SQL"},
		{"aws", "AWS"},
		{"node.js", "Node.js"},
		{"ci/cd", "CI/CD"},
		{"ios", "iOS"},
		{"jquery", "jQuery"},
		{"scikit-learn", "scikit-learn"},
		{"machine learning", "Machine Learning"},
		{"docker", "Docker"},
		{"penetration testing", "Penetration Testing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.name))
		})
	}
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, types.CategoryDatabases, CategoryOf("mongodb"))
	assert.Equal(t, types.CategoryCloud, CategoryOf("kubernetes"))
	assert.Equal(t, types.CategoryMobile, CategoryOf("flutter"))
	// Unknown names fall into the tools bucket.
	assert.Equal(t, types.CategoryTools, CategoryOf("made-up"))
}

func TestCategorize(t *testing.T) {
	got := Categorize([]string{"python", "go", "mysql", "docker"})

	assert.Equal(t, []string{"Go", "Python"}, got[types.CategoryProgramming])
	assert.Equal(t, []string{"MySQL"}, got[types.CategoryDatabases])
	assert.Equal(t, []string{"Docker"}, got[types.CategoryCloud])
	// Empty categories are omitted, not present as empty slices.
	_, present := got[types.CategoryMobile]
	assert.False(t, present)
}

func TestCategorize_Idempotent(t *testing.T) {
	names := []string{"python", "sql", "react", "aws", "git"}

	first := Categorize(names)
	second := Categorize(names)

	assert.Equal(t, first, second)
}

func TestCategorize_Empty(t *testing.T) {
	assert.Empty(t, Categorize(nil))
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for i, skill := range all {
		assert.NotEmpty(t, skill.Display)
		assert.Contains(t, types.Categories, skill.Category)
		assert.False(t, seen[skill.Name], "duplicate entry %q", skill.Name)
		seen[skill.Name] = true
		if i > 0 {
			assert.Less(t, all[i-1].Name, skill.Name)
		}
	}
}
