// Package analysis scores plain resume text the way an applicant tracking system might.
package analysis

// Keyword dictionaries. Entries are lowercase and matched as substrings, so
// "java" is also found inside "javascript".
var (
	technicalKeywords = []string{
		"javascript", "python", "java", "react", "node.js", "sql", "aws", "docker",
		"kubernetes", "git", "agile", "scrum", "typescript", "html", "css", "api",
		"rest", "graphql", "mongodb", "postgresql", "mysql", "redis", "linux",
		"ci/cd", "devops", "cloud", "microservices", "testing", "debugging",
	}

	actionVerbs = []string{
		"led", "developed", "implemented", "designed", "managed", "created",
		"improved", "increased", "reduced", "achieved", "delivered", "built",
		"launched", "optimized", "streamlined", "collaborated", "mentored",
		"analyzed", "resolved", "established", "initiated", "spearheaded",
	}

	softSkills = []string{
		"leadership", "communication", "teamwork", "problem-solving", "analytical",
		"creative", "adaptable", "organized", "detail-oriented", "motivated",
		"proactive", "innovative", "strategic", "collaborative",
	}
)

// Section is a canonical resume division detected by any of its keyword variants.
type Section struct {
	Name     string
	Keywords []string
}

// requiredSections is ordered; missing sections are reported in this order.
var requiredSections = []Section{
	{Name: "contact", Keywords: []string{"email", "phone", "linkedin", "address", "location"}},
	{Name: "summary", Keywords: []string{"summary", "objective", "professional summary", "profile", "about"}},
	{Name: "experience", Keywords: []string{"experience", "work history", "employment", "work experience"}},
	{Name: "education", Keywords: []string{"education", "academic", "degree", "university", "college"}},
	{Name: "skills", Keywords: []string{"skills", "technical skills", "competencies", "expertise"}},
}

// TechnicalKeywords returns a copy of the technical-skill dictionary.
func TechnicalKeywords() []string { return clone(technicalKeywords) }

// ActionVerbs returns a copy of the action-verb dictionary.
func ActionVerbs() []string { return clone(actionVerbs) }

// SoftSkills returns a copy of the soft-skill dictionary.
func SoftSkills() []string { return clone(softSkills) }

// RequiredSections returns a deep copy of the required section list.
func RequiredSections() []Section {
	out := make([]Section, len(requiredSections))
	for i, s := range requiredSections {
		out[i] = Section{Name: s.Name, Keywords: clone(s.Keywords)}
	}
	return out
}

// MaxKeywords is the total number of entries across all dictionaries.
func MaxKeywords() int {
	return len(technicalKeywords) + len(actionVerbs) + len(softSkills)
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
