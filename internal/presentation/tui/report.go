package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

// CompletenessMarkdown renders a completeness report as a section table.
func CompletenessMarkdown(r domain.CompletenessReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Completeness: %.2f%%\n\n", r.CompletionPercentage)
	sb.WriteString("| Section | Status | Score | Weight | Missing fields |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, s := range r.SectionBreakdown {
		fmt.Fprintf(&sb, "| %s | %s | %.2f | %.0f | %s |\n",
			s.Section, s.Status, s.Score, s.Weight, strings.Join(s.MissingFields, ", "))
	}
	if len(r.MissingSections) > 0 {
		fmt.Fprintf(&sb, "\n**Missing sections:** %s\n", strings.Join(r.MissingSections, ", "))
	}
	return sb.String()
}

// QualityMarkdown renders the quality score and its feedback items.
func QualityMarkdown(r domain.QualityReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Design quality: %d/100\n\n", r.QualityScore)
	if len(r.FeedbackItems) == 0 {
		sb.WriteString("No issues found.\n")
		return sb.String()
	}
	for _, item := range r.FeedbackItems {
		fmt.Fprintf(&sb, "## %s (%s)\n\n%s\n\n", item.Area, item.Severity, item.Issue)
		if item.Problem != "" {
			fmt.Fprintf(&sb, "> %s\n\n", item.Problem)
		}
		for _, p := range item.Problems {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
		if len(item.Problems) > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "*Suggestion:* %s\n\n", item.Suggestion)
	}
	return sb.String()
}

// ListMarkdown renders a titled bullet list, or empty when a placeholder.
func ListMarkdown(title string, items []string, empty string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	if len(items) == 0 {
		fmt.Fprintf(&sb, "%s\n\n", empty)
		return sb.String()
	}
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	sb.WriteString("\n")
	return sb.String()
}

// CodeMarkdown wraps source in a fenced block.
func CodeMarkdown(lang, source string) string {
	return fmt.Sprintf("```%s\n%s\n```\n", lang, strings.TrimRight(source, "\n"))
}
