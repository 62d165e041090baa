// Package types provides type definitions for structured data used throughout the placement-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt is an int that tolerates malformed JSON input: numbers, numeric
// strings, and floats all decode to an int; anything else decodes to zero
// instead of failing the whole document.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}
	*f = 0
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }

// RepoActivity is the repository-derived collaborator input: skills verified
// from public repositories plus a repository count.
type RepoActivity struct {
	VerifiedSkills []string `json:"verified_skills"`
	RepoCount      FlexInt  `json:"repo_count"`
	Fetched        bool     `json:"fetched"`
}

// ProblemActivity is the problem-solving collaborator input: DSA skills
// evidenced by solved problems plus difficulty counters.
type ProblemActivity struct {
	DSASkills []string `json:"dsa_skills"`
	Total     FlexInt  `json:"total"`
	Easy      FlexInt  `json:"easy"`
	Medium    FlexInt  `json:"medium"`
	Hard      FlexInt  `json:"hard"`
	Fetched   bool     `json:"fetched"`
}

// CandidateInput is the full input to the analysis pipeline. Every field is
// optional; missing data degrades to the documented zero-equivalent output.
type CandidateInput struct {
	ResumeText string          `json:"resume_text"`
	Repos      RepoActivity    `json:"repos"`
	Problems   ProblemActivity `json:"problems"`
	CGPA       float64         `json:"cgpa,omitempty"`
	TargetRole string          `json:"target_role,omitempty"`
}

// DecodeCandidateInput parses a candidate input document.
func DecodeCandidateInput(data []byte) (CandidateInput, error) {
	var in CandidateInput
	err := json.Unmarshal(data, &in)
	return in, err
}
