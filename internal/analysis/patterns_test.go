package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBullets(t *testing.T) {
	assert.Equal(t, 0, countBullets("plain words only"))
	assert.Equal(t, 3, countBullets("• one\n- two\n* three"))
	assert.Equal(t, 4, countBullets("▪ a ► b → c ● d"))
	// Hyphens inside words and ranges count as well.
	assert.Equal(t, 2, countBullets("cross-functional 2019 - 2021"))
}

func TestCountQuantifiables(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "none", text: "Worked on many projects", expected: 0},
		{name: "percentage", text: "Cut costs by 40%", expected: 1},
		{name: "plus", text: "Served 1M+ users and 200+ clients", expected: 2},
		{name: "currency", text: "Closed $250,000 in deals and saved $1.5 million", expected: 2},
		{name: "durations", text: "5 years of Go and 6 months of Rust", expected: 2},
		{name: "multiplier", text: "Made builds 3x faster", expected: 1},
		{name: "thousands", text: "Grew audience to 10k followers", expected: 1},
		{name: "large numbers", text: "Managed 2 billion records", expected: 1},
		{name: "case insensitive", text: "10 YEARS leading teams, 5X growth", expected: 2},
		{name: "plus years counted once", text: "7+ years of experience", expected: 1},
		{name: "bare numbers ignored", text: "Room 101 on floor 3", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countQuantifiables(tt.text))
		})
	}
}

func TestHasEmail(t *testing.T) {
	assert.True(t, hasEmail("reach me at jane.doe+jobs@example.co.uk today"))
	assert.False(t, hasEmail("jane at example dot com"))
	assert.False(t, hasEmail("@handle"))
}

func TestHasPhone(t *testing.T) {
	assert.True(t, hasPhone("(555) 123-4567"))
	assert.True(t, hasPhone("+1 555 123 4567"))
	assert.False(t, hasPhone("call 555-1234"))
	assert.False(t, hasPhone("lots            of spaces"))
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 0, countSentences("...!?"))
	assert.Equal(t, 1, countSentences("no terminator"))
	assert.Equal(t, 3, countSentences("One. Two! Three?"))
	assert.Equal(t, 2, countSentences("Wait... what?!"))
}
