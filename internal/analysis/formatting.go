package analysis

import "fmt"

// Fixed formatting issue messages.
const (
	bulletIssue       = "Use more bullet points to highlight achievements and responsibilities."
	quantifiableIssue = "Add more quantifiable achievements (percentages, dollar amounts, team sizes)."
	emailIssue        = "Add a professional email address so recruiters can reach you."
	phoneIssue        = "Add a phone number to your contact information."
)

// Word-count bands for the length check. Counts in [idealMinWords, maxWords]
// are not penalized.
const (
	minWords      = 150
	idealMinWords = 300
	maxWords      = 1200
)

type formattingResult struct {
	score         int
	issues        []string
	bullets       int
	quantifiables int
	hasEmail      bool
}

// scoreFormatting starts at 100 and applies independent deductions in a fixed
// order. Issues are recorded in the same order.
func scoreFormatting(text string, wordCount int) formattingResult {
	res := formattingResult{
		score:         100,
		issues:        make([]string, 0),
		bullets:       countBullets(text),
		quantifiables: countQuantifiables(text),
		hasEmail:      hasEmail(text),
	}

	// Length: very short resumes lose the most, long ones are trimmed less.
	switch {
	case wordCount < minWords:
		res.deduct(30, fmt.Sprintf("Resume is too short (%d words). Aim for 400-800 words with more detail about your experience.", wordCount))
	case wordCount < idealMinWords:
		res.deduct(15, fmt.Sprintf("Resume is a bit short (%d words). Expand on your achievements and responsibilities.", wordCount))
	case wordCount > maxWords:
		res.deduct(15, fmt.Sprintf("Resume may be too long (%d words). Consider condensing to 1-2 pages.", wordCount))
	}

	// Bullets make achievements scannable for both parsers and recruiters.
	if res.bullets < 3 {
		res.deduct(15, bulletIssue)
	}

	// Numbers are the strongest evidence of impact.
	if res.quantifiables < 2 {
		res.deduct(15, quantifiableIssue)
	}

	// Contact details: an email is essential, a phone number less so.
	if !res.hasEmail {
		res.deduct(10, emailIssue)
	}
	if !hasPhone(text) {
		res.deduct(5, phoneIssue)
	}

	res.score = max(0, res.score)
	return res
}

func (r *formattingResult) deduct(points int, issue string) {
	r.score -= points
	r.issues = append(r.issues, issue)
}
