package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-analyzer/internal/types"
)

func TestGaps_OrderedByWeight(t *testing.T) {
	cat := testCatalog(t)

	report := Gaps([]string{"python"}, "backend developer", cat)
	require.True(t, report.RoleFound)
	assert.Equal(t, "Backend Developer", report.Role)

	require.Len(t, report.Missing, 2)
	// sql (weight 3) before docker (weight 2).
	assert.Equal(t, types.SkillGap{Skill: "sql", Weight: 3, Label: types.LabelCritical}, report.Missing[0])
	assert.Equal(t, types.SkillGap{Skill: "docker", Weight: 2, Label: types.LabelImportant}, report.Missing[1])

	assert.Equal(t, []string{"python"}, report.Present)
	assert.Equal(t, 2, report.GapCount)
	assert.InDelta(t, 33.33, report.CoveragePct, 1e-9)
}

func TestGaps_NiceToHave(t *testing.T) {
	cat := testCatalog(t)

	report := Gaps([]string{"python", "redis"}, "Backend Developer", cat)
	assert.Equal(t, []string{"kubernetes"}, report.NiceToHaveGaps)
}

func TestGaps_FullCoverage(t *testing.T) {
	cat := testCatalog(t)

	report := Gaps([]string{"python", "sql", "docker"}, "Backend Developer", cat)
	assert.Empty(t, report.Missing)
	assert.Equal(t, 0, report.GapCount)
	assert.Equal(t, 100.0, report.CoveragePct)
}

func TestGaps_UnknownRole(t *testing.T) {
	cat := testCatalog(t)

	report := Gaps([]string{"python"}, "Quantum Plumber", cat)
	assert.False(t, report.RoleFound)
	assert.Equal(t, "Quantum Plumber", report.Role)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Present)
	assert.Equal(t, 0.0, report.CoveragePct)
}

func TestGaps_NilCatalog(t *testing.T) {
	report := Gaps([]string{"python"}, "Backend Developer", nil)
	assert.False(t, report.RoleFound)
	require.NotNil(t, report.Missing)
}

func TestGapLabel(t *testing.T) {
	assert.Equal(t, types.LabelCritical, gapLabel(3))
	assert.Equal(t, types.LabelCritical, gapLabel(5))
	assert.Equal(t, types.LabelImportant, gapLabel(2))
	assert.Equal(t, types.LabelRecommended, gapLabel(1))
}
