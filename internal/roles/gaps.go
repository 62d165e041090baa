package roles

import (
	"sort"

	"github.com/jonathan/placement-analyzer/internal/catalog"
	"github.com/jonathan/placement-analyzer/internal/types"
)

// gapLabel maps an importance weight to its human label.
func gapLabel(weight int) string {
	switch {
	case weight >= 3:
		return types.LabelCritical
	case weight == 2:
		return types.LabelImportant
	default:
		return types.LabelRecommended
	}
}

// Gaps computes the required skills absent from the candidate's profile for
// the named role. The role is resolved case-insensitively; an unknown role
// yields an empty report flagged RoleFound=false, never an error. Missing
// skills are ordered by descending weight; ties retain flattening order.
func Gaps(candidate []string, roleName string, cat *catalog.Catalog) types.GapReport {
	report := types.GapReport{
		Role:           roleName,
		Missing:        []types.SkillGap{},
		Present:        []string{},
		NiceToHaveGaps: []string{},
	}
	if cat == nil {
		return report
	}
	role, ok := cat.Resolve(roleName)
	if !ok {
		return report
	}
	report.Role = role.Name
	report.RoleFound = true

	candidateSet := toSet(candidate)
	flat := role.FlattenedRequirements()

	for _, req := range flat {
		if candidateSet[req.Skill] {
			report.Present = append(report.Present, req.Skill)
			continue
		}
		report.Missing = append(report.Missing, types.SkillGap{
			Skill:  req.Skill,
			Weight: req.Weight,
			Label:  gapLabel(req.Weight),
		})
	}

	sort.SliceStable(report.Missing, func(i, j int) bool {
		return report.Missing[i].Weight > report.Missing[j].Weight
	})
	sort.Strings(report.Present)

	for _, s := range role.NiceToHaveSkills() {
		if !candidateSet[s] {
			report.NiceToHaveGaps = append(report.NiceToHaveGaps, s)
		}
	}

	report.GapCount = len(report.Missing)
	if len(flat) > 0 {
		report.CoveragePct = round2(float64(len(report.Present)) / float64(len(flat)) * 100)
	}
	return report
}
