package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/placement-analyzer/internal/types"
)

func sampleReport() *types.Report {
	return &types.Report{
		ID:            "test-report",
		ResumeSkills:  []string{"python", "sql"},
		RepoSkills:    []string{"python"},
		ProblemSkills: []string{"arrays"},
		Merged: types.MergedSkills{
			All: []string{"arrays", "python", "sql"},
			Sources: map[string][]string{
				"arrays": {types.SourceProblems},
				"python": {types.SourceResume, types.SourceRepos},
				"sql":    {types.SourceResume},
			},
		},
		ClaimAuthenticity: 0.5,
		PrimaryRole:       "Backend Developer",
		PrimaryMatch:      0.6667,
		Gaps: types.GapReport{
			Role:      "Backend Developer",
			RoleFound: true,
			Missing: []types.SkillGap{
				{Skill: "docker", Weight: 2, Label: types.LabelImportant},
			},
			GapCount:    1,
			CoveragePct: 66.67,
		},
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Skill Profile")
	assert.Contains(t, out, "Authenticity")
	assert.Contains(t, out, "Backend Developer")
	assert.Contains(t, out, "docker")
	assert.Contains(t, out, "Roadmap")
}

func TestPrintReport_NilReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRoleMatch_NoRole(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoleMatch(&types.Report{})
	assert.Contains(t, buf.String(), "No role matched")
}
