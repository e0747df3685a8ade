// Package observability renders analysis results as boxed, human-readable text for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the total width of an output box, borders included
	boxWidth = 64
	// maxItemsToShow caps list sections inside a box
	maxItemsToShow = 5
)

// Printer writes formatted reports to an output stream.
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to at most width runes.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// scoreBar draws a ten-cell bar for a 0-100 score.
func scoreBar(score int) string {
	filled := max(0, min(10, (score+5)/10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintReport outputs the score breakdown, stats and advice of a text analysis.
// source names where the text came from and may be empty.
func (p *Printer) PrintReport(source string, report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	}
	sb.WriteString(fmt.Sprintf("Overall:  %3d/100  %s\n", report.OverallScore, analysis.RatingLabel(report.OverallScore)))
	sb.WriteString(fmt.Sprintf("          %s\n", analysis.ScoreMessage(report.OverallScore)))
	if report.DetectedRole != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", report.DetectedRole))
	}
	sb.WriteString("\n")

	rows := []struct {
		name  string
		score int
	}{
		{"Keywords", report.KeywordScore},
		{"Sections", report.SectionScore},
		{"Formatting", report.FormattingScore},
		{"Readability", report.ReadabilityScore},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-12s %s %3d\n", row.name, scoreBar(row.score), row.score))
	}
	sb.WriteString("\n")

	s := report.Stats
	sb.WriteString(fmt.Sprintf("Words: %d  Keywords: %d  Verbs: %d\n", s.WordCount, s.TechKeywords, s.ActionVerbs))
	sb.WriteString(fmt.Sprintf("Sections: %d/5  Bullets: %d  Metrics: %d", s.SectionsFound, s.BulletPoints, s.Quantifiables))

	p.printBox("ATS SCORE REPORT", sb.String())
	p.printList("STRENGTHS", "✓", report.Strengths)
	p.printList("IMPROVEMENTS", "⚠", report.Improvements)

	if len(report.Suggestions) > 0 {
		var advice strings.Builder
		for i, s := range report.Suggestions {
			advice.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Title))
			for _, line := range wrap(s.Description, boxWidth-7) {
				advice.WriteString(fmt.Sprintf("   %s\n", line))
			}
			if i < len(report.Suggestions)-1 {
				advice.WriteString("\n")
			}
		}
		p.printBox("SUGGESTIONS", strings.TrimSuffix(advice.String(), "\n"))
	}
}

// printList prints up to maxItemsToShow items in their own box.
func (p *Printer) printList(title, marker string, items []string) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSResult outputs the builder completeness score and missing items.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintATSResult(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d/100 %s\n", result.Score, scoreBar(result.Score)))
	sb.WriteString(fmt.Sprintf("Grade:  %s", result.Grade))

	if len(result.Factors) == 0 {
		sb.WriteString("\n\n✅ Nothing missing")
	} else {
		sb.WriteString("\n\nTo improve:\n")
		for _, factor := range result.Factors {
			sb.WriteString(fmt.Sprintf("  • %s\n", factor))
		}
	}

	p.printBox("BUILDER ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs one line per template: id, ATS score and name.
func (p *Printer) PrintTemplates(templates []types.Template) {
	if len(templates) == 0 {
		p.printBox("TEMPLATES", "No templates found")
		return
	}

	var sb strings.Builder
	for _, t := range templates {
		sb.WriteString(fmt.Sprintf("%-20s %3d  %-12s %s\n", t.ID, t.ATSScore, t.Category, t.Name))
	}
	p.printBox(fmt.Sprintf("TEMPLATES (%d)", len(templates)), strings.TrimSuffix(sb.String(), "\n"))
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
