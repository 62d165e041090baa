package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed data/skills.json
var defaultSkillsJSON []byte

//go:embed data/roles.json
var defaultRolesJSON []byte

// DefaultVocabulary loads the vocabulary shipped with the binary.
func DefaultVocabulary() (*Vocabulary, error) {
	v, err := LoadVocabulary(defaultSkillsJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded vocabulary is invalid: %w", err)
	}
	return v, nil
}

// DefaultCatalog loads the role catalogue shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	c, err := LoadCatalog(defaultRolesJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded role catalogue is invalid: %w", err)
	}
	return c, nil
}
