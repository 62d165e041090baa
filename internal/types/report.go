package types

// StepLog records the outcome of one pipeline stage. A failed stage still
// produces a complete report; the log is what tells the presentation layer
// which sections degraded.
type StepLog struct {
	Step   string `json:"step"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report is the complete analysis output. Every field is a plain
// serializable structure so any presentation layer can consume it.
type Report struct {
	ID string `json:"id"`

	// Per-source skill lists and the merged profile.
	ResumeSkills  []string     `json:"resume_skills"`
	RepoSkills    []string     `json:"repo_skills"`
	ProblemSkills []string     `json:"problem_skills"`
	Merged        MergedSkills `json:"merged"`

	// Authenticity: the resume-claim ratio plus the full per-skill report.
	ClaimAuthenticity float64            `json:"claim_authenticity"`
	Authenticity      AuthenticityReport `json:"authenticity"`

	// Role selection.
	PrimaryRole  string      `json:"primary_role"`
	PrimaryMatch float64     `json:"primary_match"`
	Recommended  []RoleScore `json:"recommended_roles"`

	Gaps          GapReport      `json:"skill_gaps"`
	Readiness     ReadinessScore `json:"readiness"`
	RoleReadiness RoleReadiness  `json:"role_readiness"`
	Roadmap       RoadmapPlan    `json:"roadmap"`

	Steps []StepLog `json:"pipeline_log"`
}
