// Package pipeline orchestrates the full candidate analysis: skill
// extraction, merging, authenticity scoring, role matching, gap analysis,
// readiness scoring and roadmap generation.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/placement-analyzer/internal/activity"
	"github.com/jonathan/placement-analyzer/internal/catalog"
	"github.com/jonathan/placement-analyzer/internal/roadmap"
	"github.com/jonathan/placement-analyzer/internal/roles"
	"github.com/jonathan/placement-analyzer/internal/skills"
	"github.com/jonathan/placement-analyzer/internal/types"
)

// Pipeline step names recorded in the report log.
const (
	stepExtract      = "skill_extraction"
	stepMerge        = "skill_merge"
	stepAuthenticity = "authenticity"
	stepRoleMatch    = "role_match"
	stepGaps         = "gap_analysis"
	stepReadiness    = "readiness"
	stepRoadmap      = "roadmap"
)

// Engine runs the analysis pipeline against an immutable catalogue
// snapshot. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	extractor *skills.Extractor
	catalog   *catalog.Catalog
	topN      int
	log       zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTopN sets how many ranked roles the report includes.
func WithTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithLogger sets the step logger. The default logger is disabled.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine over the given vocabulary and role catalogue. Both
// may be nil, in which case every stage degrades to its documented default
// rather than failing.
func New(vocab *catalog.Vocabulary, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		extractor: skills.NewExtractor(vocab),
		catalog:   cat,
		topN:      roles.DefaultTopN,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the full pipeline for one candidate. It never returns an
// error: bad or missing input degrades stage by stage to documented
// zero-equivalent outputs, and the step log records what happened.
func (e *Engine) Run(in types.CandidateInput) types.Report {
	report := types.Report{ID: uuid.New().String()}
	step := func(name string, ok bool, detail string) {
		report.Steps = append(report.Steps, types.StepLog{Step: name, OK: ok, Detail: detail})
		e.log.Info().Str("step", name).Bool("ok", ok).Str("detail", detail).Msg("pipeline step")
	}

	// Skill extraction.
	report.ResumeSkills = e.extractor.Extract(in.ResumeText)
	if in.ResumeText == "" {
		step(stepExtract, false, "no resume text")
	} else {
		step(stepExtract, true, fmt.Sprintf("%d skills", len(report.ResumeSkills)))
	}

	// Merge.
	report.RepoSkills = lowerAll(in.Repos.VerifiedSkills)
	report.ProblemSkills = lowerAll(in.Problems.DSASkills)
	report.Merged = skills.Merge(report.ResumeSkills, report.RepoSkills, report.ProblemSkills)
	step(stepMerge, true, fmt.Sprintf("%d skills", len(report.Merged.All)))

	// Authenticity. The claim ratio counts both external sources as
	// corroborating evidence.
	corroborating := append(append([]string{}, report.RepoSkills...), report.ProblemSkills...)
	report.ClaimAuthenticity = skills.ClaimAuthenticity(report.ResumeSkills, corroborating)
	report.Authenticity = skills.ScoreAuthenticity(
		report.ResumeSkills, report.RepoSkills, report.ProblemSkills,
		in.Repos.Fetched, in.Problems.Fetched,
	)
	step(stepAuthenticity, true, fmt.Sprintf("claim ratio %.4f", report.ClaimAuthenticity))

	// Role selection: an explicit target role present in the catalogue
	// overrides the computed best fit for all downstream stages.
	report.Recommended = roles.Recommend(report.Merged.All, in.CGPA, e.topN, e.catalog)
	if in.TargetRole != "" && e.catalog != nil {
		if role, ok := e.catalog.Resolve(in.TargetRole); ok {
			report.PrimaryRole = role.Name
			report.PrimaryMatch = roles.CoverageRatio(report.Merged.All, &role)
			step(stepRoleMatch, true, "target role override")
		} else {
			step(stepRoleMatch, false, fmt.Sprintf("target role %q not found", in.TargetRole))
		}
	}
	if report.PrimaryRole == "" {
		name, ratio := roles.BestRole(report.Merged.All, e.catalog)
		report.PrimaryRole = name
		report.PrimaryMatch = ratio
		if name == "" {
			step(stepRoleMatch, false, "no role matched")
		} else {
			step(stepRoleMatch, true, name)
		}
	}

	// Gap analysis.
	report.Gaps = roles.Gaps(report.Merged.All, report.PrimaryRole, e.catalog)
	step(stepGaps, report.Gaps.RoleFound || report.PrimaryRole == "", fmt.Sprintf("%d gaps", report.Gaps.GapCount))

	// Readiness, both policies.
	easy, medium, hard := in.Problems.Easy.Int(), in.Problems.Medium.Int(), in.Problems.Hard.Int()
	activityCount := activity.WeightedScore(easy, medium, hard)
	if activityCount == 0 && in.Problems.Total.Int() > 0 {
		// Only an aggregate counter was supplied.
		activityCount = activity.WeightedScore(in.Problems.Total.Int(), 0, 0)
	}
	report.Readiness = roles.Score(
		report.PrimaryMatch, report.ClaimAuthenticity,
		activityCount, in.Repos.RepoCount.Int(), in.CGPA,
	)
	report.RoleReadiness = roles.ScoreForRole(
		report.PrimaryRole, report.Merged.All,
		report.Authenticity.Aggregate, activity.ActivityScore(easy, medium, hard),
		in.CGPA, e.catalog,
	)
	step(stepReadiness, true, fmt.Sprintf("score %.2f", report.Readiness.Score))

	// Roadmap. DSA skills already evidenced by solved problems are not
	// re-planned.
	report.Roadmap = roadmap.Build(report.Gaps, report.Merged.All, report.PrimaryRole, report.ProblemSkills)
	step(stepRoadmap, true, fmt.Sprintf("%d items", report.Roadmap.TotalItems))

	return report
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
