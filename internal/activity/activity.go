// Package activity derives coding-activity signals from problem-solving
// counters supplied by the external collaborator: a weighted activity score,
// a proficiency tier, and the DSA skills the counts plausibly evidence.
package activity

import (
	"math"
	"sort"
)

// Proficiency tiers.
const (
	ProficiencyNone         = "none"
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
)

// Tier thresholds.
const (
	mediumProficient = 30
	hardProficient   = 10

	// weightedCap saturates the activity signal; beyond it more solved
	// problems stop moving the readiness score.
	weightedCap = 300
)

// WeightedScore is the difficulty-weighted solved-problem count,
// easy + 2*medium + 3*hard, capped at 300. Negative counters count as zero.
func WeightedScore(easy, medium, hard int) int {
	w := nonNegative(easy) + 2*nonNegative(medium) + 3*nonNegative(hard)
	if w > weightedCap {
		return weightedCap
	}
	return w
}

// ActivityScore normalizes the weighted score to [0,1], rounded to 4
// decimals.
func ActivityScore(easy, medium, hard int) float64 {
	return math.Round(float64(WeightedScore(easy, medium, hard))/weightedCap*10000) / 10000
}

// Proficiency buckets the counters into a coarse tier.
func Proficiency(easy, medium, hard int) string {
	easy, medium, hard = nonNegative(easy), nonNegative(medium), nonNegative(hard)
	total := easy + medium + hard
	switch {
	case hard >= hardProficient && medium >= mediumProficient:
		return ProficiencyAdvanced
	case medium >= 15 || easy+medium >= 60:
		return ProficiencyIntermediate
	case total >= 10:
		return ProficiencyBeginner
	default:
		return ProficiencyNone
	}
}

// InferDSASkills returns the DSA topics a candidate with these counters has
// plausibly practiced, sorted.
func InferDSASkills(easy, medium, hard int) []string {
	easy, medium, hard = nonNegative(easy), nonNegative(medium), nonNegative(hard)
	total := easy + medium + hard

	skills := make(map[string]bool)
	add := func(names ...string) {
		for _, n := range names {
			skills[n] = true
		}
	}
	if total >= 25 {
		add("arrays", "strings", "hash table")
	}
	if total >= 50 {
		add("sorting", "binary search", "math")
	}
	if medium >= 20 {
		add("dynamic programming", "sliding window", "two pointers")
	}
	if medium >= mediumProficient {
		add("binary tree", "graph", "recursion", "backtracking")
	}
	if hard >= hardProficient {
		add("heap", "trie", "segment tree", "bit manipulation", "topological sort", "union find")
	}

	out := make([]string, 0, len(skills))
	for s := range skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
