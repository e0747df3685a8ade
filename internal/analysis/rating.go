// Package analysis - rating.go maps overall scores to display labels and messages.
package analysis

// Rating bands shared by the label, badge class, and summary message.
const (
	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

// RatingLabel returns the badge label for an overall score.
func RatingLabel(score int) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent"
	case score >= goodThreshold:
		return "Good"
	case score >= fairThreshold:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// RatingClass returns the CSS class used to color the rating badge.
func RatingClass(score int) string {
	switch {
	case score >= excellentThreshold:
		return "rating-excellent"
	case score >= goodThreshold:
		return "rating-good"
	case score >= fairThreshold:
		return "rating-fair"
	default:
		return "rating-poor"
	}
}

// ScoreMessage returns a one-line summary for an overall score.
func ScoreMessage(score int) string {
	switch {
	case score >= excellentThreshold:
		return "Your resume is well-optimized for ATS systems. Great job!"
	case score >= goodThreshold:
		return "Your resume is generally good but has room for improvement."
	case score >= fairThreshold:
		return "Your resume needs some optimization to pass ATS filters effectively."
	default:
		return "Your resume requires significant improvements to be ATS-friendly."
	}
}
