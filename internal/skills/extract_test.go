package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-analyzer/internal/catalog"
)

func testVocabulary(t *testing.T) *catalog.Vocabulary {
	t.Helper()
	vocab, err := catalog.LoadVocabulary([]byte(`{
		"languages": ["python", "go", "r", "java", "javascript", "c++"],
		"web": ["react", "react native", "django", "node.js"],
		"ml": ["machine learning"],
		"tools": ["git", "docker", "ci/cd"]
	}`))
	require.NoError(t, err)
	return vocab
}

func TestExtract_TokenBoundaries(t *testing.T) {
	e := NewExtractor(testVocabulary(t))

	// "go" inside "algorithm" or "django" must not match; standalone "go"
	// must.
	assert.NotContains(t, e.Extract("designed an algorithm for routing"), "go")
	assert.Contains(t, e.Extract("wrote services in Go and Python"), "go")

	// Single-letter skills only match as standalone tokens.
	assert.Contains(t, e.Extract("statistical analysis in R"), "r")
	assert.NotContains(t, e.Extract("worked on react frontends"), "r")
}

func TestExtract_PunctuationIsABoundary(t *testing.T) {
	e := NewExtractor(testVocabulary(t))

	got := e.Extract("Skills: Python, Java; C++ (3 years). Git/Docker.")
	assert.Contains(t, got, "python")
	assert.Contains(t, got, "java")
	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "git")
	assert.Contains(t, got, "docker")
}

func TestExtract_MultiWordSkills(t *testing.T) {
	e := NewExtractor(testVocabulary(t))

	got := e.Extract("applied machine learning to churn prediction")
	assert.Contains(t, got, "machine learning")
}

func TestExtract_ShortFragmentSuppression(t *testing.T) {
	e := NewExtractor(testVocabulary(t))

	// "java" is a substring of "javascript": when only javascript appears in
	// the text with word boundaries, java does not match at all; when both
	// appear, the short one is suppressed as a fragment.
	got := e.Extract("built SPAs with JavaScript and backends in Java")
	assert.Contains(t, got, "javascript")
	assert.NotContains(t, got, "java")

	// Longer skills are never suppressed: react survives next to react
	// native.
	got = e.Extract("shipped react dashboards and react native apps")
	assert.Contains(t, got, "react")
	assert.Contains(t, got, "react native")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := NewExtractor(testVocabulary(t))
	assert.Equal(t, e.Extract("PYTHON and Docker"), e.Extract("python and docker"))
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor(testVocabulary(t))
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t "))
	assert.NotNil(t, e.Extract(""))
}

func TestExtract_SortedOutput(t *testing.T) {
	e := NewExtractor(testVocabulary(t))
	got := e.Extract("docker, python, git")
	assert.Equal(t, []string{"docker", "git", "python"}, got)
}
