package roadmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/types"
)

// Phase assignment thresholds.
const (
	criticalWeight  = 3
	shortCriticalH  = 25
	shortAnyH       = 15
	mediumAnyH      = 60
	maxNiceToHave   = 10
	labelShortTerm  = "Start within 2-4 weeks"
	labelMediumTerm = "Target within 1-3 months"
	labelLongTerm   = "Plan for 3-6 months"
)

// assignPhase applies the phase decision table top to bottom, first match
// wins.
func assignPhase(weight, hours int) (string, string) {
	switch {
	case weight >= criticalWeight && hours <= shortCriticalH:
		return types.PhaseShortTerm, labelShortTerm
	case weight >= criticalWeight:
		return types.PhaseMediumTerm, labelMediumTerm
	case hours <= shortAnyH:
		return types.PhaseShortTerm, labelShortTerm
	case hours <= mediumAnyH:
		return types.PhaseMediumTerm, labelMediumTerm
	default:
		return types.PhaseLongTerm, labelLongTerm
	}
}

// Build converts a gap report into a phased learning plan. Gap skills
// already evidenced by the proven-skill hint (e.g. DSA topics backed by
// solved problems) or already in the candidate's profile are skipped
// entirely and contribute no hours. Within each phase, items are ordered by
// descending weight, then ascending hours.
func Build(gaps types.GapReport, candidateSkills []string, roleName string, provenSkills []string) types.RoadmapPlan {
	proven := make(map[string]bool, len(provenSkills)+len(candidateSkills))
	for _, s := range provenSkills {
		proven[strings.ToLower(strings.TrimSpace(s))] = true
	}
	// The gap list already excludes candidate skills; this keeps the plan
	// correct even for a hand-built gap list.
	for _, s := range candidateSkills {
		proven[strings.ToLower(strings.TrimSpace(s))] = true
	}

	plan := types.RoadmapPlan{
		Role: roleName,
		Phases: types.RoadmapPhases{
			ShortTerm:  []types.RoadmapItem{},
			MediumTerm: []types.RoadmapItem{},
			LongTerm:   []types.RoadmapItem{},
		},
		NiceToHave: []types.NiceToHaveItem{},
	}

	for _, gap := range gaps.Missing {
		if proven[gap.Skill] {
			continue
		}

		bundle, ok := Lookup(gap.Skill)
		if !ok {
			bundle = fallbackBundle(gap.Skill)
		}

		phase, phaseLabel := assignPhase(gap.Weight, bundle.Hours)
		plan.TotalHours += bundle.Hours

		item := types.RoadmapItem{
			Skill:      gap.Skill,
			Priority:   gap.Label,
			Weight:     gap.Weight,
			Hours:      bundle.Hours,
			Resources:  bundle.Resources,
			Projects:   bundle.Projects,
			Phase:      phase,
			PhaseLabel: phaseLabel,
		}
		switch phase {
		case types.PhaseShortTerm:
			plan.Phases.ShortTerm = append(plan.Phases.ShortTerm, item)
		case types.PhaseMediumTerm:
			plan.Phases.MediumTerm = append(plan.Phases.MediumTerm, item)
		default:
			plan.Phases.LongTerm = append(plan.Phases.LongTerm, item)
		}
	}

	sortPhase(plan.Phases.ShortTerm)
	sortPhase(plan.Phases.MediumTerm)
	sortPhase(plan.Phases.LongTerm)

	for _, skill := range gaps.NiceToHaveGaps {
		if len(plan.NiceToHave) >= maxNiceToHave {
			break
		}
		item := types.NiceToHaveItem{Skill: skill, Resources: []types.Resource{}, Hours: defaultHours}
		if bundle, ok := Lookup(skill); ok {
			item.Resources = bundle.Resources
			item.Hours = bundle.Hours
		}
		plan.NiceToHave = append(plan.NiceToHave, item)
	}

	plan.TotalItems = len(plan.Phases.ShortTerm) + len(plan.Phases.MediumTerm) + len(plan.Phases.LongTerm)
	plan.Summary = fmt.Sprintf(
		"Your roadmap for '%s' has %d skill gaps: %d short-term, %d medium-term, %d long-term. Estimated effort: ~%d hours.",
		roleName, plan.TotalItems,
		len(plan.Phases.ShortTerm), len(plan.Phases.MediumTerm), len(plan.Phases.LongTerm),
		plan.TotalHours,
	)
	return plan
}

func sortPhase(items []types.RoadmapItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Weight != items[j].Weight {
			return items[i].Weight > items[j].Weight
		}
		return items[i].Hours < items[j].Hours
	})
}
