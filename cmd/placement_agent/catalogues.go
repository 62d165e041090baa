package main

import (
	"fmt"
	"os"

	"github.com/jonathan/placement-analyzer/internal/catalog"
	"github.com/jonathan/placement-analyzer/internal/schemas"
	schemadocs "github.com/jonathan/placement-analyzer/schemas"
)

// loadCatalogues builds the vocabulary and role catalogue from the given
// paths, falling back to the embedded defaults when a path is empty.
// Catalogue files loaded from disk are first checked against their JSON
// Schemas; a schema mismatch is a warning, the typed loaders remain the
// authority.
func loadCatalogues(vocabPath, rolesPath string) (*catalog.Vocabulary, *catalog.Catalog, error) {
	var (
		vocab *catalog.Vocabulary
		cat   *catalog.Catalog
		err   error
	)

	if vocabPath == "" {
		vocab, err = catalog.DefaultVocabulary()
	} else {
		warnSchemaMismatch(schemadocs.SkillVocabulary, vocabPath)
		vocab, err = catalog.LoadVocabularyFile(vocabPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	if rolesPath == "" {
		cat, err = catalog.DefaultCatalog()
	} else {
		warnSchemaMismatch(schemadocs.RoleCatalog, rolesPath)
		cat, err = catalog.LoadCatalogFile(rolesPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load role catalogue: %w", err)
	}

	return vocab, cat, nil
}

func warnSchemaMismatch(schemaName, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // the loader will report the real error
	}
	if err := schemas.Validate(schemaName, data); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", path, err)
	}
}
