package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Composite weights for the overall score. They sum to 1.0.
const (
	KeywordWeight     = 0.30
	SectionWeight     = 0.25
	FormattingWeight  = 0.25
	ReadabilityWeight = 0.20
)

// keywordCoverageTarget is the dictionary coverage that earns a full keyword score.
const keywordCoverageTarget = 0.25

// Sentinel messages for text that could not be read.
const (
	EmptyTextStrength    = "Unable to extract text from file"
	EmptyTextImprovement = "Please ensure the file contains readable text"
)

// Analyzer scores resume text. The zero value is ready to use and safe for
// concurrent use; it holds no state between calls.
type Analyzer struct{}

// Analyze is a convenience wrapper around Analyzer.Analyze.
func Analyze(text string) types.ScoreReport {
	return Analyzer{}.Analyze(text)
}

// keywordMatches holds the dictionary entries found in a text, in dictionary order.
type keywordMatches struct {
	technical []string
	action    []string
	soft      []string
}

func (m keywordMatches) total() int {
	return len(m.technical) + len(m.action) + len(m.soft)
}

// Analyze maps resume text to a score report. It never fails; empty or
// whitespace-only text yields an all-zero report with explanatory messages.
func (Analyzer) Analyze(text string) types.ScoreReport {
	if strings.TrimSpace(text) == "" {
		return emptyReport()
	}

	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	wordCount := len(words)

	matches := findKeywords(lower)
	keywordScore := scoreKeywords(matches.total())

	sectionsFound, missingSections := findSections(lower)
	sectionScore := roundHalfUp(float64(sectionsFound) / float64(len(requiredSections)) * 100)

	format := scoreFormatting(text, wordCount)
	readabilityScore := scoreReadability(text, words)

	overall := roundHalfUp(
		float64(keywordScore)*KeywordWeight +
			float64(sectionScore)*SectionWeight +
			float64(format.score)*FormattingWeight +
			float64(readabilityScore)*ReadabilityWeight,
	)

	stats := types.Stats{
		WordCount:     wordCount,
		TechKeywords:  len(matches.technical),
		ActionVerbs:   len(matches.action),
		SectionsFound: sectionsFound,
		BulletPoints:  format.bullets,
		Quantifiables: format.quantifiables,
	}

	return types.ScoreReport{
		OverallScore:     clampScore(overall),
		KeywordScore:     clampScore(keywordScore),
		SectionScore:     clampScore(sectionScore),
		FormattingScore:  clampScore(format.score),
		ReadabilityScore: clampScore(readabilityScore),
		Strengths:        buildStrengths(stats, matches, format.hasEmail),
		Improvements:     buildImprovements(stats, missingSections, format.issues),
		Suggestions:      buildSuggestions(stats, matches, missingSections),
		Stats:            stats,
		DetectedRole:     DetectRole(lower),
	}
}

func emptyReport() types.ScoreReport {
	return types.ScoreReport{
		Strengths:    []string{EmptyTextStrength},
		Improvements: []string{EmptyTextImprovement},
		Suggestions:  []types.Suggestion{tailorSuggestion, formattingSuggestion},
		DetectedRole: GeneralRole,
	}
}

// findKeywords records which dictionary entries occur in lower. Each entry
// counts once no matter how often it repeats.
func findKeywords(lower string) keywordMatches {
	return keywordMatches{
		technical: presentIn(lower, technicalKeywords),
		action:    presentIn(lower, actionVerbs),
		soft:      presentIn(lower, softSkills),
	}
}

func presentIn(lower string, dictionary []string) []string {
	found := make([]string, 0)
	for _, keyword := range dictionary {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

func scoreKeywords(total int) int {
	maxKeywords := float64(MaxKeywords())
	score := roundHalfUp(float64(total) / (maxKeywords * keywordCoverageTarget) * 100)
	return min(100, score)
}

// findSections returns how many required sections are present and the names
// of those that are missing, in section order.
func findSections(lower string) (int, []string) {
	found := 0
	missing := make([]string, 0)
	for _, section := range requiredSections {
		if containsAny(lower, section.Keywords) {
			found++
		} else {
			missing = append(missing, section.Name)
		}
	}
	return found, missing
}

func containsAny(lower string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

// scoreReadability penalizes long sentences and long words. Both deductions
// can apply.
func scoreReadability(text string, words []string) int {
	if len(words) == 0 {
		return 0
	}

	totalChars := 0
	for _, w := range words {
		totalChars += utf8.RuneCountInString(w)
	}
	avgWordLength := float64(totalChars) / float64(len(words))
	avgSentenceLength := float64(len(words)) / float64(max(1, countSentences(text)))

	score := 100
	switch {
	case avgSentenceLength > 30:
		score -= 25
	case avgSentenceLength > 25:
		score -= 15
	}
	switch {
	case avgWordLength > 8:
		score -= 15
	case avgWordLength > 7:
		score -= 10
	}
	return max(0, score)
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampScore(v int) int {
	return min(100, max(0, v))
}
