package services

import (
	"fmt"
	"strings"

	"writeassess/catalog"
	"writeassess/models"
)

// FormatResultsAsText renders a result as the plain-text report users copy
// to the clipboard.
func FormatResultsAsText(r *models.GradingResult) string {
	var b strings.Builder
	b.WriteString("GTS302 WRITING ASSESSMENT RESULTS\n")
	b.WriteString("==================================\n\n")
	fmt.Fprintf(&b, "TOTAL SCORE: %d/%d (%s)\n", r.TotalScore, models.MaxTotalScore, r.PercentageString())
	fmt.Fprintf(&b, "Word Count: %d\n\n", r.WordCount)
	b.WriteString("OVERALL FEEDBACK:\n")
	b.WriteString(r.OverallFeedback)
	b.WriteString("\n")

	for _, c := range r.Categories() {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "%s: %d/%d\n", strings.ToUpper(string(c.Category)), c.Score, models.MaxCategoryScore)
		b.WriteString(c.Feedback)
		b.WriteString("\n\nStrengths:\n")
		b.WriteString(bulletsOrNA(c.Strengths))
		b.WriteString("\n\nAreas for Improvement:\n")
		b.WriteString(bulletsOrNA(c.Improvements))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// FormatResultsAsMarkdown renders a result for terminal display
func FormatResultsAsMarkdown(r *models.GradingResult) string {
	var b strings.Builder
	b.WriteString("# GTS302 Writing Assessment\n\n")
	fmt.Fprintf(&b, "**Total score:** %d/%d (%s, %s)\n\n", r.TotalScore, models.MaxTotalScore, r.PercentageString(), r.Band())
	fmt.Fprintf(&b, "**Word count:** %d\n\n", r.WordCount)
	if r.WordCount < models.MinWordCount {
		fmt.Fprintf(&b, "> Below the recommended minimum of %d words.\n\n", models.MinWordCount)
	}
	b.WriteString("## Overall feedback\n\n")
	b.WriteString(r.OverallFeedback)
	b.WriteString("\n")

	for _, c := range r.Categories() {
		fmt.Fprintf(&b, "\n## %s: %d/%d (%s)\n\n", c.Category, c.Score, models.MaxCategoryScore, catalog.ScoreLabel(c.Score))
		if c.Feedback != "" {
			b.WriteString(c.Feedback)
			b.WriteString("\n\n")
		}
		b.WriteString("### Strengths\n\n")
		b.WriteString(bulletsOrNA(c.Strengths))
		b.WriteString("\n\n### Areas for improvement\n\n")
		b.WriteString(bulletsOrNA(c.Improvements))
		b.WriteString("\n")
	}
	return b.String()
}

func bulletsOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
