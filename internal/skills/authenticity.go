package skills

import (
	"math"

	"github.com/jonathan/placement-analyzer/internal/types"
)

// Per-skill authenticity credits. A skill accumulates credit from each
// source that evidences it; external credit is only granted when the source
// fetch actually succeeded.
const (
	creditResume     = 0.40
	creditRepos      = 0.35
	creditProblems   = 0.25
	creditBothBonus  = 0.10
	creditExternOnly = 0.40
)

// ClaimAuthenticity measures what fraction of resume-claimed skills is
// corroborated by an independent source: |resume ∩ corroborating| / |resume|,
// rounded to 4 decimals. Returns 0.0 when either set is empty — an empty
// resume has nothing to corroborate and an empty source corroborates
// nothing. Nil slices are treated as empty sets.
func ClaimAuthenticity(resume, corroborating []string) float64 {
	resumeSet := toSet(resume)
	otherSet := toSet(corroborating)
	if len(resumeSet) == 0 || len(otherSet) == 0 {
		return 0.0
	}
	return round4(float64(intersectCount(resumeSet, otherSet)) / float64(len(resumeSet)))
}

// ScoreAuthenticity assigns each skill in the combined profile an
// authenticity score in [0,1] and aggregates them. Resume presence is worth
// 0.40, repository verification 0.35, problem-solving verification 0.25,
// with a 0.10 bonus when both external sources agree. Skills evidenced only
// externally still earn the 0.40 presence credit, since external evidence is
// itself meaningful.
func ScoreAuthenticity(resume, repoSkills, problemSkills []string, reposFetched, problemsFetched bool) types.AuthenticityReport {
	resumeSet := toSet(resume)
	repoSet := toSet(repoSkills)
	problemSet := toSet(problemSkills)

	all := union(resumeSet, repoSet, problemSet)
	if len(all) == 0 {
		return types.AuthenticityReport{PerSkill: map[string]float64{}}
	}

	perSkill := make(map[string]float64, len(all))
	verifiedRepos := 0
	verifiedProblems := 0

	for skill := range all {
		score := 0.0
		if resumeSet[skill] {
			score += creditResume
		}
		if reposFetched && repoSet[skill] {
			score += creditRepos
			if resumeSet[skill] {
				verifiedRepos++
			}
		}
		if problemsFetched && problemSet[skill] {
			score += creditProblems
			if resumeSet[skill] {
				verifiedProblems++
			}
		}
		if reposFetched && problemsFetched && repoSet[skill] && problemSet[skill] {
			score = math.Min(score+creditBothBonus, 1.0)
		}
		perSkill[skill] = round4(math.Min(score, 1.0))
	}

	// Externally evidenced skills absent from the resume get the presence
	// credit on top of whatever external credit they earned.
	for skill := range union(repoSet, problemSet) {
		if !resumeSet[skill] {
			perSkill[skill] = round4(math.Min(perSkill[skill]+creditExternOnly, 1.0))
		}
	}

	sum := 0.0
	for _, score := range perSkill {
		sum += score
	}

	resumeOnly := 0
	covered := 0
	for skill := range resumeSet {
		if repoSet[skill] || problemSet[skill] {
			covered++
		} else {
			resumeOnly++
		}
	}
	coverage := 0.0
	if len(resumeSet) > 0 {
		coverage = round4(float64(covered) / float64(len(resumeSet)))
	}

	return types.AuthenticityReport{
		PerSkill:  perSkill,
		Aggregate: round4(sum / float64(len(perSkill))),
		Breakdown: types.AuthenticityBreakdown{
			ResumeOnly:           resumeOnly,
			VerifiedRepos:        verifiedRepos,
			VerifiedProblems:     verifiedProblems,
			Total:                len(all),
			VerificationCoverage: coverage,
		},
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
