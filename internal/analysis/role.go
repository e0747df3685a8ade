// Package analysis - role.go provides target role detection.
package analysis

import "strings"

// GeneralRole is reported when no role signal is found.
const GeneralRole = "general"

type roleSignal struct {
	role     string
	keywords []string
}

// roleSignals is checked in order; earlier roles win ties.
var roleSignals = []roleSignal{
	{role: "software engineer", keywords: []string{"software engineer", "software developer", "full-stack", "full stack", "microservices", "algorithms"}},
	{role: "frontend developer", keywords: []string{"frontend", "front-end", "react", "css", "html", "ui components", "vue", "angular"}},
	{role: "backend developer", keywords: []string{"backend", "back-end", "rest api", "graphql", "postgresql", "database", "server-side"}},
	{role: "data scientist", keywords: []string{"data scientist", "machine learning", "pandas", "statistics", "tensorflow", "pytorch", "data analysis", "deep learning"}},
	{role: "devops engineer", keywords: []string{"devops", "kubernetes", "terraform", "ci/cd", "infrastructure", "site reliability", "ansible", "monitoring"}},
	{role: "product manager", keywords: []string{"product manager", "roadmap", "stakeholder", "product strategy", "user research", "go-to-market", "backlog"}},
	{role: "designer", keywords: []string{"designer", "figma", "sketch", "wireframe", "prototype", "user experience", "visual design", "typography"}},
}

// DetectRole guesses the candidate's target role from keyword hits. The text
// is lowercased before matching, so callers may pass raw text.
func DetectRole(text string) string {
	lower := strings.ToLower(text)
	best, bestHits := GeneralRole, 0
	for _, signal := range roleSignals {
		hits := 0
		for _, keyword := range signal.keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = signal.role, hits
		}
	}
	return best
}
