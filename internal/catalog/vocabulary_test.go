package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabulary_Valid(t *testing.T) {
	data := []byte(`{
		"languages": ["Python", "go", "java"],
		"ml": ["machine learning"]
	}`)

	vocab, err := LoadVocabulary(data)
	require.NoError(t, err)
	assert.Equal(t, 4, vocab.Len())
	assert.ElementsMatch(t, []string{"languages", "ml"}, vocab.Categories())
	// Names are lowercased at load.
	assert.Contains(t, vocab.Skills(), "python")
}

func TestLoadVocabulary_LongestFirst(t *testing.T) {
	data := []byte(`{
		"mixed": ["go", "machine learning", "sql", "deep learning"]
	}`)

	vocab, err := LoadVocabulary(data)
	require.NoError(t, err)

	skills := vocab.Skills()
	require.Len(t, skills, 4)
	assert.Equal(t, "machine learning", skills[0])
	assert.Equal(t, "deep learning", skills[1])
	// Ties in length are alphabetical, so iteration is deterministic.
	assert.Equal(t, []string{"sql", "go"}, skills[2:])
}

func TestLoadVocabulary_DuplicateSkillRejected(t *testing.T) {
	data := []byte(`{
		"a": ["python"],
		"b": ["Python"]
	}`)

	_, err := LoadVocabulary(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate vocabulary skill")
}

func TestLoadVocabulary_EmptyCategoryRejected(t *testing.T) {
	_, err := LoadVocabulary([]byte(`{"empty": []}`))
	require.Error(t, err)
}

func TestLoadVocabulary_BlankSkillRejected(t *testing.T) {
	_, err := LoadVocabulary([]byte(`{"a": ["python", "  "]}`))
	require.Error(t, err)
}

func TestLoadVocabulary_MalformedJSON(t *testing.T) {
	_, err := LoadVocabulary([]byte(`{not json`))
	require.Error(t, err)
}

func TestLoadVocabulary_NoCategories(t *testing.T) {
	_, err := LoadVocabulary([]byte(`{}`))
	require.Error(t, err)
}

func TestDefaultVocabulary(t *testing.T) {
	vocab, err := DefaultVocabulary()
	require.NoError(t, err)
	assert.Greater(t, vocab.Len(), 50)
	assert.Contains(t, vocab.Skills(), "python")
	assert.Contains(t, vocab.Skills(), "machine learning")
}
