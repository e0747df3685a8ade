// Package builder scores structured resume form data for completeness.
//
// It follows the same add-points-and-collect-factors pattern as the text
// analyzer in package analysis but shares no code with it.
package builder

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Point allocations per category.
const (
	namePoints     = 5
	emailPoints    = 5
	phonePoints    = 5
	locationPoints = 3
	linkedInPoints = 2

	fullSummaryPoints   = 15
	mediumSummaryPoints = 10
	shortSummaryPoints  = 5

	pointsPerExperience       = 8
	maxExperienceEntryPoints  = 24
	detailedDescriptionPoints = 2
	maxExperiencePoints       = 30

	pointsPerEducation     = 7
	maxEducationPoints     = 15
	pointsPerSkill         = 2
	maxSkillPoints         = 15
	pointsPerCertification = 2
	maxCertificationPoints = 5

	maxScore = 100
)

// detailedDescriptionLength is the description length, in characters, above
// which an experience entry earns extra points.
const detailedDescriptionLength = 50

// CalculateATSScore scores resume form data and lists what is missing.
func CalculateATSScore(data types.ResumeData) types.ATSResult {
	score := 0
	factors := make([]string, 0)

	p := data.Personal
	if present(p.FullName) {
		score += namePoints
	} else {
		factors = append(factors, "Add your full name")
	}
	if present(p.Email) {
		score += emailPoints
	} else {
		factors = append(factors, "Add your email address")
	}
	if present(p.Phone) {
		score += phonePoints
	} else {
		factors = append(factors, "Add your phone number")
	}
	if present(p.Location) {
		score += locationPoints
	}
	if present(p.LinkedIn) {
		score += linkedInPoints
	}

	if present(data.Summary) {
		words := len(strings.Fields(data.Summary))
		switch {
		case words >= 30:
			score += fullSummaryPoints
		case words >= 15:
			score += mediumSummaryPoints
		default:
			score += shortSummaryPoints
			factors = append(factors, "Expand your summary to 30+ words")
		}
	} else {
		factors = append(factors, "Add a professional summary")
	}

	if n := len(data.Experience); n > 0 {
		points := min(n*pointsPerExperience, maxExperienceEntryPoints)
		for _, exp := range data.Experience {
			if utf8.RuneCountInString(exp.Description) > detailedDescriptionLength {
				points += detailedDescriptionPoints
			}
		}
		score += min(points, maxExperiencePoints)
		if n < 2 {
			factors = append(factors, "Add more work experience entries")
		}
	} else {
		factors = append(factors, "Add your work experience")
	}

	if n := len(data.Education); n > 0 {
		score += min(n*pointsPerEducation, maxEducationPoints)
	} else {
		factors = append(factors, "Add your education")
	}

	if n := len(data.Skills); n > 0 {
		score += min(n*pointsPerSkill, maxSkillPoints)
		if n < 5 {
			factors = append(factors, "Add more skills (aim for 8-15)")
		}
	} else {
		factors = append(factors, "Add your skills")
	}

	if n := len(data.Certifications); n > 0 {
		score += min(n*pointsPerCertification, maxCertificationPoints)
	}

	score = min(score, maxScore)
	return types.ATSResult{
		Score:   score,
		Grade:   Grade(score),
		Factors: factors,
	}
}

// Grade classifies a builder score.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Work"
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
