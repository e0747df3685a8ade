package analysis

import (
	"regexp"
	"strings"
)

// bulletGlyphs are the characters counted as bullet markers. Plain hyphens
// count too, which also catches date ranges and hyphenated words.
const bulletGlyphs = "•◦‣⁃∙●○▪▫■□►▸▹→➤➢-*"

var (
	// quantifiablePattern matches numeric achievements: 40%, 1M+, $2.5 million,
	// 5 years, 3x, 10k. Alternatives are tried left to right, so "5+ years"
	// counts once.
	quantifiablePattern = regexp.MustCompile(`(?i)` +
		`[$€£]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:k|m|million|billion)\b)?` +
		`|\d+(?:\.\d+)?\s?%` +
		`|\d+\+?\s?(?:years?|months?|yrs?)\b` +
		`|\d+(?:\.\d+)?\s?(?:million|billion)\b` +
		`|\d+(?:\.\d+)?[km]\b\+?` +
		`|\d+(?:\.\d+)?x\b` +
		`|\d+\+`)

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// phoneRunPattern matches runs drawn from the phone character class; a run
	// only counts as a phone number if it contains a digit.
	phoneRunPattern = regexp.MustCompile(`[0-9()+\- ]{10,}`)

	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
)

// countBullets counts bullet-marker characters in text.
func countBullets(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(bulletGlyphs, r) {
			count++
		}
	}
	return count
}

// countQuantifiables counts non-overlapping numeric-achievement matches.
func countQuantifiables(text string) int {
	return len(quantifiablePattern.FindAllStringIndex(text, -1))
}

func hasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

func hasPhone(text string) bool {
	for _, run := range phoneRunPattern.FindAllString(text, -1) {
		if strings.ContainsAny(run, "0123456789") {
			return true
		}
	}
	return false
}

// countSentences splits on runs of sentence terminators and counts the
// fragments that are not blank.
func countSentences(text string) int {
	count := 0
	for _, fragment := range sentenceSplitPattern.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}
