package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/types"
)

// Merge unions skills from the resume and both external sources into one
// profile, tagging every skill with the sources that contributed it. Inputs
// are lowercased and trimmed; nil slices are treated as empty. Merging is
// commutative and idempotent at the set level.
func Merge(resume, repoSkills, problemSkills []string) types.MergedSkills {
	resumeSet := toSet(resume)
	repoSet := toSet(repoSkills)
	problemSet := toSet(problemSkills)

	sources := make(map[string][]string)
	for skill := range union(resumeSet, repoSet, problemSet) {
		var tags []string
		if resumeSet[skill] {
			tags = append(tags, types.SourceResume)
		}
		if repoSet[skill] {
			tags = append(tags, types.SourceRepos)
		}
		if problemSet[skill] {
			tags = append(tags, types.SourceProblems)
		}
		sources[skill] = tags
	}

	all := make([]string, 0, len(sources))
	for skill := range sources {
		all = append(all, skill)
	}
	sort.Strings(all)

	return types.MergedSkills{All: all, Sources: sources}
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

func union(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, set := range sets {
		for s := range set {
			out[s] = true
		}
	}
	return out
}

func intersectCount(a, b map[string]bool) int {
	n := 0
	for s := range a {
		if b[s] {
			n++
		}
	}
	return n
}
