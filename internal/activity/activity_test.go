package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedScore(t *testing.T) {
	assert.Equal(t, 0, WeightedScore(0, 0, 0))
	assert.Equal(t, 10, WeightedScore(10, 0, 0))
	assert.Equal(t, 140, WeightedScore(30, 40, 10))
	// Saturates at the cap.
	assert.Equal(t, 300, WeightedScore(100, 100, 100))
	// Negative counters count as zero.
	assert.Equal(t, 20, WeightedScore(-5, 10, 0))
}

func TestActivityScore(t *testing.T) {
	assert.Equal(t, 0.0, ActivityScore(0, 0, 0))
	assert.Equal(t, 0.5, ActivityScore(150, 0, 0))
	assert.Equal(t, 1.0, ActivityScore(500, 500, 500))
}

func TestProficiency(t *testing.T) {
	assert.Equal(t, ProficiencyNone, Proficiency(0, 0, 0))
	assert.Equal(t, ProficiencyNone, Proficiency(9, 0, 0))
	assert.Equal(t, ProficiencyBeginner, Proficiency(10, 0, 0))
	assert.Equal(t, ProficiencyIntermediate, Proficiency(0, 15, 0))
	assert.Equal(t, ProficiencyIntermediate, Proficiency(50, 10, 0))
	// Hard problems alone are not enough for advanced.
	assert.Equal(t, ProficiencyIntermediate, Proficiency(0, 15, 20))
	assert.Equal(t, ProficiencyAdvanced, Proficiency(0, 30, 10))
}

func TestInferDSASkills_Thresholds(t *testing.T) {
	assert.Empty(t, InferDSASkills(5, 5, 0))

	got := InferDSASkills(25, 0, 0)
	assert.ElementsMatch(t, []string{"arrays", "strings", "hash table"}, got)

	got = InferDSASkills(50, 0, 0)
	assert.Contains(t, got, "sorting")
	assert.Contains(t, got, "binary search")
	assert.NotContains(t, got, "dynamic programming")

	got = InferDSASkills(0, 20, 0)
	assert.Contains(t, got, "dynamic programming")
	assert.Contains(t, got, "two pointers")
	assert.NotContains(t, got, "graph")

	got = InferDSASkills(0, 30, 10)
	assert.Contains(t, got, "graph")
	assert.Contains(t, got, "heap")
	assert.Contains(t, got, "union find")
}

func TestInferDSASkills_Sorted(t *testing.T) {
	got := InferDSASkills(100, 50, 20)
	assert.IsIncreasing(t, got)
}
