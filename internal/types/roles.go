package types

// Gap importance labels derived from requirement weights.
const (
	LabelCritical    = "Critical"
	LabelImportant   = "Important"
	LabelRecommended = "Recommended"
)

// RoleScore is one entry of the ranked role recommendation list.
type RoleScore struct {
	Role              string   `json:"role"`
	MatchPct          float64  `json:"match_pct"`
	MatchedCount      int      `json:"matched_count"`
	TotalRequired     int      `json:"total_required"`
	Description       string   `json:"description,omitempty"`
	NiceToHavePresent []string `json:"nice_to_have_present"`
}

// SkillGap is a required skill the candidate lacks.
type SkillGap struct {
	Skill  string `json:"skill"`
	Weight int    `json:"weight"`
	Label  string `json:"label"`
}

// GapReport lists everything a candidate is missing for a role.
type GapReport struct {
	Role           string     `json:"role"`
	RoleFound      bool       `json:"role_found"`
	Missing        []SkillGap `json:"missing_skills"`
	Present        []string   `json:"present_skills"`
	NiceToHaveGaps []string   `json:"nice_to_have_gaps"`
	GapCount       int        `json:"gap_count"`
	CoveragePct    float64    `json:"coverage_pct"`
}

// ReadinessComponents breaks a fixed-policy readiness score into its five
// weighted point contributions.
type ReadinessComponents struct {
	Match        float64 `json:"match"`
	Authenticity float64 `json:"authenticity"`
	Activity     float64 `json:"activity"`
	Repos        float64 `json:"repos"`
	CGPA         float64 `json:"cgpa"`
}

// ReadinessScore is the fixed-policy composite readiness result.
type ReadinessScore struct {
	Score      float64             `json:"score"`
	Components ReadinessComponents `json:"components"`
}

// RoleReadinessComponents breaks a role-sensitive readiness score into its
// weighted point contributions.
type RoleReadinessComponents struct {
	SkillMatch   float64 `json:"skill_match"`
	Authenticity float64 `json:"authenticity"`
	DSA          float64 `json:"dsa"`
	CGPA         float64 `json:"cgpa"`
}

// RoleReadiness is the role-sensitive readiness result, graded A through F.
type RoleReadiness struct {
	Role       string                  `json:"role"`
	RoleFound  bool                    `json:"role_found"`
	Score      float64                 `json:"readiness_score"`
	Grade      string                  `json:"grade"`
	Components RoleReadinessComponents `json:"components"`
}
