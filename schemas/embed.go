// Package schemas ships the JSON Schema documents used to validate
// catalogue files and candidate input.
package schemas

import "embed"

// FS holds every *.schema.json document in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema document names.
const (
	CandidateInput  = "candidate_input.schema.json"
	RoleCatalog     = "role_catalog.schema.json"
	SkillVocabulary = "skill_vocabulary.schema.json"
)
