// Package skills implements skill extraction from resume text, multi-source
// skill merging, and authenticity scoring against external evidence.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/catalog"
)

// Extractor matches vocabulary skills against free text. It is stateless
// beyond the injected vocabulary and safe for concurrent use.
type Extractor struct {
	vocab *catalog.Vocabulary
}

// NewExtractor creates an extractor over the given vocabulary.
func NewExtractor(vocab *catalog.Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// maxSuppressedLen bounds the substring suppression pass: only very short
// tokens are dropped when a longer found skill contains them, so "go" never
// survives purely as a fragment of "django" but "react" is never suppressed
// by "react native".
const maxSuppressedLen = 4

// Extract scans text for every vocabulary skill that occurs as a standalone
// token, i.e. not immediately preceded or followed by an alphanumeric
// character. The input is lowercased defensively. Empty text yields an empty
// set; this operation never fails.
func (e *Extractor) Extract(text string) []string {
	if e.vocab == nil || strings.TrimSpace(text) == "" {
		return []string{}
	}

	haystack := strings.ToLower(text)
	found := make(map[string]bool)
	// Vocabulary iteration is longest-first, so multi-word skills are
	// tested as a unit before their constituents.
	for _, skill := range e.vocab.Skills() {
		if containsToken(haystack, skill) {
			found[skill] = true
		}
	}

	return suppressFragments(found)
}

// containsToken reports whether skill occurs in text with non-alphanumeric
// characters (or the text edges) on both sides.
func containsToken(text, skill string) bool {
	if skill == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], skill)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(skill)
		if (i == 0 || !isAlnum(text[i-1])) && (end == len(text) || !isAlnum(text[end])) {
			return true
		}
		start = i + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// suppressFragments drops found skills of length <= maxSuppressedLen that
// are substrings of a longer found skill, then returns the sorted result.
func suppressFragments(found map[string]bool) []string {
	byLen := make([]string, 0, len(found))
	for skill := range found {
		byLen = append(byLen, skill)
	}
	sort.Slice(byLen, func(i, j int) bool {
		if len(byLen[i]) != len(byLen[j]) {
			return len(byLen[i]) > len(byLen[j])
		}
		return byLen[i] < byLen[j]
	})

	kept := make([]string, 0, len(byLen))
	for _, skill := range byLen {
		if len(skill) <= maxSuppressedLen && dominated(skill, byLen) {
			continue
		}
		kept = append(kept, skill)
	}
	sort.Strings(kept)
	return kept
}

func dominated(skill string, all []string) bool {
	for _, longer := range all {
		if len(longer) > len(skill) && strings.Contains(longer, skill) {
			return true
		}
	}
	return false
}
