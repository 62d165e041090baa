package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-analyzer/internal/types"
)

func gapReport(missing []types.SkillGap, nice []string) types.GapReport {
	return types.GapReport{
		Role:           "Backend Developer",
		RoleFound:      true,
		Missing:        missing,
		NiceToHaveGaps: nice,
		GapCount:       len(missing),
	}
}

func TestAssignPhase_DecisionTable(t *testing.T) {
	cases := []struct {
		weight, hours int
		want          string
	}{
		{3, 20, types.PhaseShortTerm},  // critical and cheap
		{3, 25, types.PhaseShortTerm},  // boundary
		{3, 80, types.PhaseMediumTerm}, // critical but expensive
		{1, 10, types.PhaseShortTerm},  // cheap regardless of weight
		{2, 40, types.PhaseMediumTerm},
		{1, 60, types.PhaseMediumTerm}, // boundary
		{1, 80, types.PhaseLongTerm},
	}
	for _, tc := range cases {
		phase, label := assignPhase(tc.weight, tc.hours)
		assert.Equal(t, tc.want, phase, "weight=%d hours=%d", tc.weight, tc.hours)
		assert.NotEmpty(t, label)
	}
}

func TestBuild_PhasesAndTotals(t *testing.T) {
	gaps := gapReport([]types.SkillGap{
		{Skill: "sql", Weight: 3, Label: types.LabelCritical},              // 20h, critical -> short
		{Skill: "machine learning", Weight: 3, Label: types.LabelCritical}, // 80h, critical -> medium
		{Skill: "docker", Weight: 2, Label: types.LabelImportant},          // 20h -> medium
		{Skill: "git", Weight: 1, Label: types.LabelRecommended},           // 10h -> short
	}, nil)

	plan := Build(gaps, nil, "Backend Developer", nil)

	require.Len(t, plan.Phases.ShortTerm, 2)
	require.Len(t, plan.Phases.MediumTerm, 2)
	assert.Empty(t, plan.Phases.LongTerm)

	// Within a phase: weight descending, then hours ascending.
	assert.Equal(t, "sql", plan.Phases.ShortTerm[0].Skill)
	assert.Equal(t, "git", plan.Phases.ShortTerm[1].Skill)
	assert.Equal(t, "machine learning", plan.Phases.MediumTerm[0].Skill)
	assert.Equal(t, "docker", plan.Phases.MediumTerm[1].Skill)

	assert.Equal(t, 4, plan.TotalItems)
	assert.Equal(t, 130, plan.TotalHours)
	assert.Equal(t,
		"Your roadmap for 'Backend Developer' has 4 skill gaps: 2 short-term, 2 medium-term, 0 long-term. Estimated effort: ~130 hours.",
		plan.Summary)
}

func TestBuild_SkipsProvenAndCandidateSkills(t *testing.T) {
	gaps := gapReport([]types.SkillGap{
		{Skill: "sql", Weight: 3, Label: types.LabelCritical},
		{Skill: "arrays", Weight: 2, Label: types.LabelImportant},
		{Skill: "docker", Weight: 2, Label: types.LabelImportant},
	}, nil)

	plan := Build(gaps, []string{"Docker"}, "Backend Developer", []string{"arrays"})

	assert.Equal(t, 1, plan.TotalItems)
	require.Len(t, plan.Phases.ShortTerm, 1)
	assert.Equal(t, "sql", plan.Phases.ShortTerm[0].Skill)
	assert.Equal(t, 20, plan.TotalHours)
}

func TestBuild_FallbackBundleForUnknownSkill(t *testing.T) {
	gaps := gapReport([]types.SkillGap{
		{Skill: "quantum annealing", Weight: 1, Label: types.LabelRecommended},
	}, nil)

	plan := Build(gaps, nil, "Backend Developer", nil)
	require.Len(t, plan.Phases.MediumTerm, 1)

	item := plan.Phases.MediumTerm[0]
	assert.Equal(t, 20, item.Hours)
	require.Len(t, item.Resources, 1)
	assert.Equal(t, "search", item.Resources[0].Type)
	assert.Equal(t, "https://www.google.com/search?q=learn+quantum+annealing", item.Resources[0].URL)
	require.Len(t, item.Projects, 1)
}

func TestBuild_NiceToHaveCappedAtTen(t *testing.T) {
	nice := []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l",
	}
	plan := Build(gapReport(nil, nice), nil, "Backend Developer", nil)
	assert.Len(t, plan.NiceToHave, 10)
}

func TestBuild_NiceToHaveUsesLibraryWhenAvailable(t *testing.T) {
	plan := Build(gapReport(nil, []string{"kubernetes", "zzz-unknown"}), nil, "Backend Developer", nil)
	require.Len(t, plan.NiceToHave, 2)

	assert.Equal(t, 40, plan.NiceToHave[0].Hours)
	assert.NotEmpty(t, plan.NiceToHave[0].Resources)

	assert.Equal(t, defaultHours, plan.NiceToHave[1].Hours)
	assert.Empty(t, plan.NiceToHave[1].Resources)
	// Nice-to-have hours never count toward the main estimate.
	assert.Equal(t, 0, plan.TotalHours)
}

func TestBuild_EmptyGapReport(t *testing.T) {
	plan := Build(gapReport(nil, nil), nil, "Backend Developer", nil)
	assert.Equal(t, 0, plan.TotalItems)
	assert.Equal(t, 0, plan.TotalHours)
	require.NotNil(t, plan.Phases.ShortTerm)
	assert.Equal(t,
		"Your roadmap for 'Backend Developer' has 0 skill gaps: 0 short-term, 0 medium-term, 0 long-term. Estimated effort: ~0 hours.",
		plan.Summary)
}

func TestLookup_Normalizes(t *testing.T) {
	a, ok := Lookup("  Python ")
	require.True(t, ok)
	b, _ := Lookup("python")
	assert.Equal(t, b, a)

	_, ok = Lookup("no such skill")
	assert.False(t, ok)
}
