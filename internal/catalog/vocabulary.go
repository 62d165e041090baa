// Package catalog loads and validates the two static configuration
// catalogues the engine depends on: the skill vocabulary and the role
// catalogue. Both are immutable after load; hot reload replaces the whole
// value atomically.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Vocabulary is the controlled skill vocabulary: canonical lowercase skill
// names grouped by category. The flattened list is kept sorted
// longest-string-first so multi-word skills always match before shorter
// skills that could be substrings.
type Vocabulary struct {
	categories map[string][]string
	flat       []string
}

// LoadVocabulary parses and validates a vocabulary document. Skill names are
// lowercased and trimmed; a skill appearing twice anywhere in the flattened
// vocabulary is rejected.
func LoadVocabulary(data []byte) (*Vocabulary, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("vocabulary has no categories")
	}

	categories := make(map[string][]string, len(raw))
	seen := make(map[string]string)
	for category, entries := range raw {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("vocabulary has an empty category name")
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("vocabulary category %q is empty", category)
		}
		normalized := make([]string, 0, len(entries))
		for _, s := range entries {
			skill := strings.ToLower(strings.TrimSpace(s))
			if skill == "" {
				return nil, fmt.Errorf("vocabulary category %q contains a blank skill", category)
			}
			if prev, dup := seen[skill]; dup {
				return nil, fmt.Errorf("duplicate vocabulary skill %q (categories %q and %q)", skill, prev, category)
			}
			seen[skill] = category
			normalized = append(normalized, skill)
		}
		categories[category] = normalized
	}

	flat := make([]string, 0, len(seen))
	for skill := range seen {
		flat = append(flat, skill)
	}
	// Longest first; alphabetical among equal lengths keeps iteration
	// deterministic across runs.
	sort.Slice(flat, func(i, j int) bool {
		if len(flat[i]) != len(flat[j]) {
			return len(flat[i]) > len(flat[j])
		}
		return flat[i] < flat[j]
	})

	return &Vocabulary{categories: categories, flat: flat}, nil
}

// LoadVocabularyFile loads a vocabulary from a JSON file on disk.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return LoadVocabulary(data)
}

// Skills returns the flattened vocabulary, longest skill first.
func (v *Vocabulary) Skills() []string {
	return v.flat
}

// Categories returns the category names in sorted order.
func (v *Vocabulary) Categories() []string {
	names := make([]string, 0, len(v.categories))
	for name := range v.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category returns the skills of one category, or nil if unknown.
func (v *Vocabulary) Category(name string) []string {
	return v.categories[name]
}

// Len returns the number of skills in the flattened vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.flat)
}
