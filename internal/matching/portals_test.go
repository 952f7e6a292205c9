package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalLinks_QueryTemplating(t *testing.T) {
	links := PortalLinks("Backend Developer", nil, "New Delhi")

	require.NotEmpty(t, links)
	assert.Contains(t, links["LinkedIn"].URL, "keywords=Backend+Developer")
	assert.Contains(t, links["LinkedIn"].URL, "location=New+Delhi")
	assert.Contains(t, links["Indeed"].URL, "q=Backend+Developer")
	assert.Contains(t, links["Naukri"].URL, "backend-developer-jobs")
	assert.Contains(t, links["Monster"].URL, "backend-developer-jobs")
	assert.Contains(t, links["Wellfound"].URL, "q=Backend+Developer")
}

func TestPortalLinks_SkillsVariant(t *testing.T) {
	links := PortalLinks("Data Scientist", []string{"Python", "Machine Learning", "SQL", "Docker"}, "India")

	variant, ok := links["LinkedIn (Skills)"]
	require.True(t, ok)
	// Only the top three skills feed the query.
	assert.Contains(t, variant.URL, "Python+Machine+Learning+SQL")
	assert.NotContains(t, variant.URL, "Docker")
}

func TestPortalLinks_NoSkillsVariantWhenEmpty(t *testing.T) {
	links := PortalLinks("QA Engineer", nil, "India")

	_, ok := links["LinkedIn (Skills)"]
	assert.False(t, ok)
}

func TestPortalLinks_Presentation(t *testing.T) {
	links := PortalLinks("Backend Developer", nil, "India")

	for name, link := range links {
		assert.NotEmpty(t, link.URL, "portal %s has no URL", name)
		assert.NotEmpty(t, link.Color, "portal %s has no color", name)
		assert.NotEmpty(t, link.Emoji, "portal %s has no emoji", name)
	}
	assert.Equal(t, "#0077B5", links["LinkedIn"].Color)
}
