// Package roles scores candidate skill profiles against the role catalogue:
// best-fit selection, ranked recommendation, gap analysis and readiness
// scoring.
package roles

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/catalog"
	"github.com/jonathan/placement-analyzer/internal/types"
)

// DefaultTopN is how many ranked roles Recommend returns when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// BestRole selects the role whose required skills the candidate covers best.
// Coverage is the unweighted ratio of required skills present; importance
// weights are deliberately ignored on this path (the ranked Recommend
// variant is weight-aware and the two may disagree). The first role in
// catalogue order wins ties. An empty candidate set or catalogue yields
// ("", 0.0).
func BestRole(candidate []string, cat *catalog.Catalog) (string, float64) {
	candidateSet := toSet(candidate)
	if len(candidateSet) == 0 || cat == nil || cat.Len() == 0 {
		return "", 0.0
	}

	bestName := ""
	bestRatio := 0.0
	for _, role := range cat.Roles() {
		ratio := coverageRatio(candidateSet, &role)
		if ratio > bestRatio || bestName == "" {
			bestName = role.Name
			bestRatio = ratio
		}
	}
	return bestName, round4(bestRatio)
}

// CoverageRatio returns the unweighted required-skill coverage of one role,
// rounded to 4 decimals.
func CoverageRatio(candidate []string, role *catalog.Role) float64 {
	return round4(coverageRatio(toSet(candidate), role))
}

func coverageRatio(candidateSet map[string]bool, role *catalog.Role) float64 {
	flat := role.FlattenedRequirements()
	if len(flat) == 0 {
		return 0.0
	}
	matched := 0
	for _, req := range flat {
		if candidateSet[req.Skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(flat))
}

// Recommend ranks every role by weighted required-skill coverage, modulated
// by a CGPA multiplier, and returns the top n (DefaultTopN when n <= 0).
// Score = Σ weight of matched required skills / Σ weight of all required
// skills × multiplier, as a percentage capped at 100. Ties keep catalogue
// order.
func Recommend(candidate []string, cgpa float64, n int, cat *catalog.Catalog) []types.RoleScore {
	if cat == nil {
		return []types.RoleScore{}
	}
	if n <= 0 {
		n = DefaultTopN
	}
	candidateSet := toSet(candidate)

	results := make([]types.RoleScore, 0, cat.Len())
	for _, role := range cat.Roles() {
		flat := role.FlattenedRequirements()
		if len(flat) == 0 {
			continue
		}

		raw, maxScore, matched := weightedMatch(candidateSet, flat)
		mult := cgpaMultiplier(cgpa, role.MinCGPA)
		pct := 0.0
		if maxScore > 0 {
			pct = round2(math.Min(float64(raw)/float64(maxScore)*100*mult, 100.0))
		}

		present := make([]string, 0)
		for _, s := range role.NiceToHaveSkills() {
			if candidateSet[s] {
				present = append(present, s)
			}
		}

		results = append(results, types.RoleScore{
			Role:              role.Name,
			MatchPct:          pct,
			MatchedCount:      matched,
			TotalRequired:     len(flat),
			Description:       role.Description,
			NiceToHavePresent: present,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPct > results[j].MatchPct
	})
	if len(results) > n {
		results = results[:n]
	}
	return results
}

// weightedMatch returns (Σ matched weights, Σ all weights, matched count).
func weightedMatch(candidateSet map[string]bool, flat []catalog.RequiredSkill) (int, int, int) {
	raw, maxScore, matched := 0, 0, 0
	for _, req := range flat {
		maxScore += req.Weight
		if candidateSet[req.Skill] {
			raw += req.Weight
			matched++
		}
	}
	return raw, maxScore, matched
}

// cgpaMultiplier softens or boosts a role score based on the candidate's
// CGPA relative to the role minimum. Unknown CGPA is neutral.
func cgpaMultiplier(cgpa, minCGPA float64) float64 {
	switch {
	case cgpa <= 0:
		return 1.0
	case cgpa >= minCGPA+1.5:
		return 1.05
	case cgpa >= minCGPA:
		return 1.0
	case cgpa >= minCGPA-1.0:
		return 0.95
	default:
		return 0.85
	}
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		skill := strings.ToLower(strings.TrimSpace(s))
		if skill != "" {
			set[skill] = true
		}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
