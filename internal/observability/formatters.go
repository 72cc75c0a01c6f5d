// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cornjebus/junie/internal/store"
	"github.com/Cornjebus/junie/internal/types"
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

// PrintProfile outputs a human-readable summary of the user profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.Sparks) > 0 {
		sb.WriteString("Sparks:\n")
		count := min(len(profile.Sparks), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Sparks[i]))
		}
		if len(profile.Sparks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Sparks)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Values) > 0 {
		sb.WriteString("Values:\n")
		count := min(len(profile.Values), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Values[i]))
		}
		if len(profile.Values) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Values)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	dream := profile.Dream
	if len(dream) > 50 {
		dream = dream[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Dream: %s", dream))

	p.printBox("USER PROFILE", sb.String())
}

// PrintScoredCandidates outputs the scored candidate pool with sub-scores.
func (p *Printer) PrintScoredCandidates(candidates []types.ScoredCandidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		title := c.Template.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Total: %.3f\n", c.Scores.Total))
		sb.WriteString(fmt.Sprintf("    sim=%.2f skills=%.2f values=%.2f feas=%.2f\n",
			c.Scores.VectorSimilarity, c.Scores.SkillsMatch,
			c.Scores.ValuesAlignment, c.Scores.Feasibility))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("SCORED CANDIDATES", sb.String())
}

// PrintResult outputs the final ranked recommendations.
func (p *Printer) PrintResult(result *types.Result) {
	if result == nil || len(result.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", result.Source))
	sb.WriteString(fmt.Sprintf("Retrieved: %d candidates in %dms\n\n",
		result.Diagnostics.CandidatesRetrieved, result.Diagnostics.ElapsedMs))

	for i, rec := range result.Recommendations {
		stars := strings.Repeat("★", rec.FitScore) + strings.Repeat("☆", 5-rec.FitScore)
		sb.WriteString(fmt.Sprintf("#%d  %s  %s\n", i+1, rec.Title, stars))
		for _, bullet := range rec.WhyYou {
			if len(bullet) > 50 {
				bullet = bullet[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
		sb.WriteString(fmt.Sprintf("  First win: %s\n", rec.FirstWin))
		sb.WriteString(fmt.Sprintf("  Risk: %s | Income: %s | Cost: %s\n",
			rec.DifficultyOrRisk, rec.TimeToIncome, rec.StartupCost))
		if i < len(result.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintQuarantined outputs records rejected during seeding.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQuarantined(records []store.QuarantinedRecord) {
	if len(records) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL RECORDS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quarantined %d records:\n\n", len(records)))

	for i, r := range records {
		reason := r.Reason.Error()
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ record %d (%s)\n", r.Index, r.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("QUARANTINED RECORDS", sb.String())
}
