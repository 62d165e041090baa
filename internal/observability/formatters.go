// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkillProfile outputs a human-readable summary of the merged skills.
func (p *Printer) PrintSkillProfile(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume skills:   %d\n", len(report.ResumeSkills)))
	sb.WriteString(fmt.Sprintf("Repo skills:     %d\n", len(report.RepoSkills)))
	sb.WriteString(fmt.Sprintf("Problem skills:  %d\n", len(report.ProblemSkills)))
	sb.WriteString(fmt.Sprintf("Merged profile:  %d\n", len(report.Merged.All)))
	sb.WriteString("\n")

	count := min(len(report.Merged.All), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := report.Merged.All[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", skill, strings.Join(report.Merged.Sources[skill], ", ")))
	}
	if len(report.Merged.All) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Merged.All)-maxItemsToShow))
	}

	p.printBox("Skill Profile", sb.String())
}

// PrintAuthenticity outputs the authenticity summary.
func (p *Printer) PrintAuthenticity(report *types.Report) {
	if report == nil {
		return
	}

	b := report.Authenticity.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Claim ratio:     %.4f\n", report.ClaimAuthenticity))
	sb.WriteString(fmt.Sprintf("Aggregate:       %.4f\n", report.Authenticity.Aggregate))
	sb.WriteString(fmt.Sprintf("Resume only:     %d\n", b.ResumeOnly))
	sb.WriteString(fmt.Sprintf("Repo-verified:   %d\n", b.VerifiedRepos))
	sb.WriteString(fmt.Sprintf("Problem-verified: %d\n", b.VerifiedProblems))
	sb.WriteString(fmt.Sprintf("Coverage:        %.0f%%\n", b.VerificationCoverage*100))

	p.printBox("Authenticity", sb.String())
}

// PrintRoleMatch outputs the selected role and the ranked recommendations.
func (p *Printer) PrintRoleMatch(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.PrimaryRole == "" {
		sb.WriteString("No role matched.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Best fit: %s (%.0f%% coverage)\n", report.PrimaryRole, report.PrimaryMatch*100))
	}
	sb.WriteString("\n")

	count := min(len(report.Recommended), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := report.Recommended[i]
		sb.WriteString(fmt.Sprintf("  %d. %-28s %6.2f%%\n", i+1, rec.Role, rec.MatchPct))
	}

	p.printBox("Role Match", sb.String())
}

// PrintGaps outputs the missing skills for the selected role.
func (p *Printer) PrintGaps(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if !report.Gaps.RoleFound {
		sb.WriteString("Role not found; no gap analysis.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Coverage: %.2f%%, %d gaps\n\n", report.Gaps.CoveragePct, report.Gaps.GapCount))
		count := min(len(report.Gaps.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := report.Gaps.Missing[i]
			sb.WriteString(fmt.Sprintf("  • %-24s %s\n", gap.Skill, gap.Label))
		}
		if len(report.Gaps.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Gaps.Missing)-maxItemsToShow))
		}
	}

	p.printBox("Skill Gaps", sb.String())
}

// PrintReadiness outputs both readiness scores with their breakdowns.
func (p *Printer) PrintReadiness(report *types.Report) {
	if report == nil {
		return
	}

	c := report.Readiness.Components
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite score: %.2f / 100\n", report.Readiness.Score))
	sb.WriteString(fmt.Sprintf("  match %.2f | auth %.2f | activity %.2f\n", c.Match, c.Authenticity, c.Activity))
	sb.WriteString(fmt.Sprintf("  repos %.2f | cgpa %.2f\n", c.Repos, c.CGPA))
	if report.RoleReadiness.RoleFound {
		sb.WriteString(fmt.Sprintf("\nRole readiness:  %.2f (grade %s)\n", report.RoleReadiness.Score, report.RoleReadiness.Grade))
	}

	p.printBox("Readiness", sb.String())
}

// PrintRoadmap outputs the roadmap summary line and phase counts.
func (p *Printer) PrintRoadmap(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Short-term:  %d\n", len(report.Roadmap.Phases.ShortTerm)))
	sb.WriteString(fmt.Sprintf("Medium-term: %d\n", len(report.Roadmap.Phases.MediumTerm)))
	sb.WriteString(fmt.Sprintf("Long-term:   %d\n", len(report.Roadmap.Phases.LongTerm)))
	sb.WriteString(fmt.Sprintf("Total hours: ~%d\n", report.Roadmap.TotalHours))

	p.printBox("Roadmap", sb.String())
}

// PrintReport outputs the whole analysis in verbose mode.
func (p *Printer) PrintReport(report *types.Report) {
	p.PrintSkillProfile(report)
	p.PrintAuthenticity(report)
	p.PrintRoleMatch(report)
	p.PrintGaps(report)
	p.PrintReadiness(report)
	p.PrintRoadmap(report)
}
