// Package types provides type definitions for structured data used throughout the resume analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreReport is the result of analyzing plain resume text.
// JSON field names match what the results view consumes.
type ScoreReport struct {
	OverallScore     int          `json:"overallScore"`
	KeywordScore     int          `json:"keywordScore"`
	SectionScore     int          `json:"sectionScore"`
	FormattingScore  int          `json:"formattingScore"`
	ReadabilityScore int          `json:"readabilityScore"`
	Strengths        []string     `json:"strengths"`
	Improvements     []string     `json:"improvements"`
	Suggestions      []Suggestion `json:"suggestions"`
	Stats            Stats        `json:"stats"`
	DetectedRole     string       `json:"detectedRole"`
}

// Suggestion is a titled piece of advice shown as a card.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stats holds the raw counters that feed the sub-scores.
type Stats struct {
	WordCount     int `json:"wordCount"`
	TechKeywords  int `json:"techKeywords"`
	ActionVerbs   int `json:"actionVerbs"`
	SectionsFound int `json:"sectionsFound"`
	BulletPoints  int `json:"bulletPoints"`
	Quantifiables int `json:"quantifiables"`
}

// AnalyzeTextRequest is the body of a plain-text analysis request.
type AnalyzeTextRequest struct {
	Text string `json:"text" validate:"max=1000000"`
}

// AnalyzeURLRequest is the body of a request to analyze a hosted resume page.
type AnalyzeURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// AnalysisResponse wraps a report with where the text came from.
type AnalysisResponse struct {
	Source string      `json:"source"`
	Report ScoreReport `json:"report"`
}
