// Package analysis - narrative.go builds strengths, improvements and suggestions.
package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Fallback messages used when no other entry applies.
const (
	fallbackStrength    = "Resume uploaded successfully for analysis"
	fallbackImprovement = "Your resume is well-optimized! Consider tailoring it for specific job postings."
)

var (
	summarySuggestion = types.Suggestion{
		Title:       "Add a Professional Summary",
		Description: "Open with a 2-3 sentence summary of your experience, strengths, and the role you are targeting.",
	}
	tailorSuggestion = types.Suggestion{
		Title:       "Tailor for Each Application",
		Description: "Customize your resume keywords to match the specific job description you're applying for.",
	}
	formattingSuggestion = types.Suggestion{
		Title:       "Use ATS-Friendly Formatting",
		Description: "Avoid tables, graphics, text boxes, and unusual fonts that ATS systems may not parse correctly.",
	}
	quantifySuggestion = types.Suggestion{
		Title:       "Quantify Your Impact",
		Description: "Add specific numbers, percentages, and metrics to demonstrate your achievements.",
	}
)

func buildStrengths(stats types.Stats, matches keywordMatches, emailPresent bool) []string {
	strengths := make([]string, 0)

	switch {
	case stats.TechKeywords >= 10:
		strengths = append(strengths, fmt.Sprintf("Excellent technical keyword coverage (%d found: %s)",
			stats.TechKeywords, sample(matches.technical, 5)))
	case stats.TechKeywords >= 5:
		strengths = append(strengths, fmt.Sprintf("Good technical keyword presence (%d found: %s)",
			stats.TechKeywords, sample(matches.technical, 3)))
	}

	switch {
	case stats.ActionVerbs >= 8:
		strengths = append(strengths, fmt.Sprintf("Excellent use of action verbs (%s)", sample(matches.action, 5)))
	case stats.ActionVerbs >= 5:
		strengths = append(strengths, fmt.Sprintf("Good use of action verbs (%s)", sample(matches.action, 3)))
	}

	switch {
	case stats.SectionsFound >= 5:
		strengths = append(strengths, "All key resume sections are present")
	case stats.SectionsFound >= 4:
		strengths = append(strengths, "Well-structured with most key sections")
	}

	switch {
	case stats.Quantifiables >= 5:
		strengths = append(strengths, fmt.Sprintf("Strong use of quantifiable achievements (%d metrics found)", stats.Quantifiables))
	case stats.Quantifiables >= 3:
		strengths = append(strengths, fmt.Sprintf("Includes quantifiable achievements (%d metrics found)", stats.Quantifiables))
	}

	if stats.BulletPoints >= 10 {
		strengths = append(strengths, "Good use of bullet points for readability")
	}
	if stats.WordCount >= 350 && stats.WordCount <= 800 {
		strengths = append(strengths, fmt.Sprintf("Optimal resume length (%d words)", stats.WordCount))
	}
	if emailPresent {
		strengths = append(strengths, "Contact email is clearly visible")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, fallbackStrength)
	}
	return strengths
}

func buildImprovements(stats types.Stats, missingSections, formattingIssues []string) []string {
	improvements := make([]string, 0)

	if stats.TechKeywords < 5 {
		improvements = append(improvements, fmt.Sprintf(
			"Only %d technical keywords found. Add more skills relevant to your target role.", stats.TechKeywords))
	}
	if stats.ActionVerbs < 4 {
		improvements = append(improvements, fmt.Sprintf(
			"Only %d action verbs found. Start bullet points with strong verbs like led, developed, or implemented.", stats.ActionVerbs))
	}
	for _, section := range missingSections {
		improvements = append(improvements, fmt.Sprintf(
			"Add a %s section to help ATS systems parse your resume", capitalize(section)))
	}
	improvements = append(improvements, formattingIssues...)

	if len(improvements) == 0 {
		improvements = append(improvements, fallbackImprovement)
	}
	return improvements
}

// buildSuggestions orders cards as: summary (if missing), the two standing
// suggestions, quantify (if needed), skills (if needed).
func buildSuggestions(stats types.Stats, matches keywordMatches, missingSections []string) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, 5)

	for _, section := range missingSections {
		if section == "summary" {
			suggestions = append(suggestions, summarySuggestion)
			break
		}
	}

	suggestions = append(suggestions, tailorSuggestion, formattingSuggestion)

	if stats.Quantifiables < 5 {
		suggestions = append(suggestions, quantifySuggestion)
	}

	if stats.TechKeywords < 8 {
		missing := missingKeywords(technicalKeywords, matches.technical, 5)
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Add More Technical Skills",
			Description: fmt.Sprintf("Consider adding relevant skills such as: %s.", strings.Join(missing, ", ")),
		})
	}

	return suggestions
}

// missingKeywords returns up to limit dictionary entries that were not found.
func missingKeywords(dictionary, found []string, limit int) []string {
	seen := make(map[string]bool, len(found))
	for _, f := range found {
		seen[f] = true
	}
	out := make([]string, 0, limit)
	for _, keyword := range dictionary {
		if len(out) == limit {
			break
		}
		if !seen[keyword] {
			out = append(out, keyword)
		}
	}
	return out
}

func sample(items []string, n int) string {
	return strings.Join(items[:min(n, len(items))], ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
