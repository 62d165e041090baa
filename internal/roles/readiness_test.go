package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_MidpointInputs(t *testing.T) {
	got := Score(0.5, 0.5, 150, 5, 5.0)
	assert.Equal(t, 50.0, got.Score)
	assert.Equal(t, 20.0, got.Components.Match)
	assert.Equal(t, 10.0, got.Components.Authenticity)
	assert.Equal(t, 10.0, got.Components.Activity)
	assert.Equal(t, 5.0, got.Components.Repos)
	assert.Equal(t, 5.0, got.Components.CGPA)
}

func TestScore_Extremes(t *testing.T) {
	assert.Equal(t, 0.0, Score(0, 0, 0, 0, 0).Score)
	assert.Equal(t, 100.0, Score(1, 1, 300, 10, 10).Score)

	// Inputs beyond their caps clamp rather than overflow.
	assert.Equal(t, 100.0, Score(2.0, 1.5, 9000, 500, 99).Score)
}

func TestScore_NegativeInputsClampToZero(t *testing.T) {
	got := Score(-1, -1, -50, -3, -2)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, 0.0, got.Components.Activity)
}

func TestScore_MonotonicInMatch(t *testing.T) {
	low := Score(0.2, 0.5, 100, 3, 7.0)
	high := Score(0.8, 0.5, 100, 3, 7.0)
	assert.Greater(t, high.Score, low.Score)
}

func TestScoreForRole_Components(t *testing.T) {
	cat := testCatalog(t)

	// Backend: python+sql matched = 6/8 weighted = 75% -> 37.5 skill points.
	// Authenticity 0.8 -> 16. Activity 1.0 with dsa_weight 0.25 ->
	// 100*0.25*(0.20/0.25) = 20, at the cap. CGPA 8.0 >= 6.0 -> 8.
	got := ScoreForRole("Backend Developer", []string{"python", "sql"}, 0.8, 1.0, 8.0, cat)
	require.True(t, got.RoleFound)
	assert.Equal(t, 37.5, got.Components.SkillMatch)
	assert.Equal(t, 16.0, got.Components.Authenticity)
	assert.Equal(t, 20.0, got.Components.DSA)
	assert.Equal(t, 8.0, got.Components.CGPA)
	assert.Equal(t, 81.5, got.Score)
	assert.Equal(t, "A", got.Grade)
}

func TestScoreForRole_CGPABelowMinimumPenalized(t *testing.T) {
	cat := testCatalog(t)

	// CGPA 5.0 below the 6.0 minimum: 50 * 0.7 * 0.10 = 3.5 points.
	got := ScoreForRole("Backend Developer", nil, 0, 0, 5.0, cat)
	assert.Equal(t, 3.5, got.Components.CGPA)
}

func TestScoreForRole_UnknownCGPANeutral(t *testing.T) {
	cat := testCatalog(t)

	got := ScoreForRole("Backend Developer", nil, 0, 0, 0, cat)
	assert.Equal(t, 5.0, got.Components.CGPA)
}

func TestScoreForRole_UnknownRole(t *testing.T) {
	cat := testCatalog(t)

	got := ScoreForRole("Quantum Plumber", []string{"python"}, 0.9, 1.0, 9.0, cat)
	assert.False(t, got.RoleFound)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, "N/A", got.Grade)
}

func TestGrade(t *testing.T) {
	assert.Equal(t, "A", grade(80))
	assert.Equal(t, "B", grade(79.99))
	assert.Equal(t, "B", grade(65))
	assert.Equal(t, "C", grade(50))
	assert.Equal(t, "D", grade(35))
	assert.Equal(t, "F", grade(34.99))
	assert.Equal(t, "F", grade(0))
}
