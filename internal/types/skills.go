package types

// Source tags recorded for each merged skill.
const (
	SourceResume   = "resume"
	SourceRepos    = "repos"
	SourceProblems = "problems"
)

// MergedSkills is the unified candidate skill profile: the sorted union of
// all sources plus, per skill, the list of sources that contributed it.
type MergedSkills struct {
	All     []string            `json:"all_skills"`
	Sources map[string][]string `json:"sources"`
}

// AuthenticityBreakdown holds corroboration counts for a skill profile.
type AuthenticityBreakdown struct {
	ResumeOnly           int     `json:"resume_only"`
	VerifiedRepos        int     `json:"verified_repos"`
	VerifiedProblems     int     `json:"verified_problems"`
	Total                int     `json:"total"`
	VerificationCoverage float64 `json:"verification_coverage"`
}

// AuthenticityReport scores each skill by how well it is corroborated and
// aggregates those scores into a single profile-level value.
type AuthenticityReport struct {
	PerSkill  map[string]float64    `json:"per_skill"`
	Aggregate float64               `json:"aggregate"`
	Breakdown AuthenticityBreakdown `json:"breakdown"`
}
