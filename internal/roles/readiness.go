package roles

import (
	"math"

	"github.com/jonathan/placement-analyzer/internal/catalog"
	"github.com/jonathan/placement-analyzer/internal/types"
)

// Fixed-policy readiness weights. These are deliberately not configurable
// per role; ScoreForRole is the role-sensitive variant.
const (
	weightMatch        = 0.40
	weightAuthenticity = 0.20
	weightActivity     = 0.20
	weightRepos        = 0.10
	weightCGPA         = 0.10

	// Normalization caps for the raw counters.
	activityCap = 300.0
	repoCap     = 10.0
	cgpaCap     = 10.0
)

// Score combines role-match coverage, authenticity, coding activity,
// repository count and CGPA into one 0-100 readiness score. Each input is
// normalized to [0,1] first; negative inputs clamp to zero so a bad counter
// can never subtract from the total. The result is rounded to 2 decimals.
func Score(matchRatio, authenticity float64, activityCount, repoCount int, cgpa float64) types.ReadinessScore {
	m := clamp01(matchRatio)
	a := clamp01(authenticity)
	act := clamp01(float64(activityCount) / activityCap)
	rep := clamp01(float64(repoCount) / repoCap)
	cg := clamp01(cgpa / cgpaCap)

	components := types.ReadinessComponents{
		Match:        round2(100 * weightMatch * m),
		Authenticity: round2(100 * weightAuthenticity * a),
		Activity:     round2(100 * weightActivity * act),
		Repos:        round2(100 * weightRepos * rep),
		CGPA:         round2(100 * weightCGPA * cg),
	}
	total := 100 * (weightMatch*m + weightAuthenticity*a + weightActivity*act + weightRepos*rep + weightCGPA*cg)

	return types.ReadinessScore{
		Score:      round2(math.Min(math.Max(total, 0), 100)),
		Components: components,
	}
}

// Role-sensitive readiness weights and thresholds.
const (
	roleWeightSkills = 0.50
	roleWeightAuth   = 0.20
	roleDSACap       = 20.0
	roleWeightCGPA   = 0.10
	neutralCGPAScore = 5.0
	belowMinPenalty  = 0.7
)

// ScoreForRole computes the role-sensitive readiness variant: weighted
// required-skill coverage (50%), aggregate authenticity (20%), coding
// activity scaled by the role's DSA emphasis and capped at 20 points, and
// CGPA (10%) with a penalty below the role minimum and a neutral 5-point
// contribution when unknown. Graded A (>=80) through F. An unknown role
// yields a zero score flagged RoleFound=false.
func ScoreForRole(roleName string, candidate []string, authenticityAggregate, activityScore, cgpa float64, cat *catalog.Catalog) types.RoleReadiness {
	result := types.RoleReadiness{Role: roleName, Grade: "N/A"}
	if cat == nil {
		return result
	}
	role, ok := cat.Resolve(roleName)
	if !ok {
		return result
	}
	result.Role = role.Name
	result.RoleFound = true

	candidateSet := toSet(candidate)
	flat := role.FlattenedRequirements()

	raw, maxScore, _ := weightedMatch(candidateSet, flat)
	skillPct := 0.0
	if maxScore > 0 {
		skillPct = float64(raw) / float64(maxScore) * 100
	}
	skillComponent := skillPct * roleWeightSkills

	authComponent := clamp01(authenticityAggregate) * 100 * roleWeightAuth

	// The DSA emphasis rescales the activity budget, then the cap
	// keeps heavily DSA-weighted roles from exceeding it.
	dsaWeight := role.DSAWeight
	dsaComponent := clamp01(activityScore) * 100 * dsaWeight * (0.20 / math.Max(dsaWeight, 0.01))
	dsaComponent = math.Min(dsaComponent, roleDSACap)

	var cgpaComponent float64
	if cgpa > 0 {
		cgpaScore := math.Min(cgpa/cgpaCap*100, 100.0)
		if cgpa < role.MinCGPA {
			cgpaScore *= belowMinPenalty
		}
		cgpaComponent = cgpaScore * roleWeightCGPA
	} else {
		cgpaComponent = neutralCGPAScore
	}

	total := round2(skillComponent + authComponent + dsaComponent + cgpaComponent)
	total = math.Min(total, 100.0)

	result.Score = total
	result.Grade = grade(total)
	result.Components = types.RoleReadinessComponents{
		SkillMatch:   round2(skillComponent),
		Authenticity: round2(authComponent),
		DSA:          round2(dsaComponent),
		CGPA:         round2(cgpaComponent),
	}
	return result
}

func grade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 65:
		return "B"
	case score >= 50:
		return "C"
	case score >= 35:
		return "D"
	default:
		return "F"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
