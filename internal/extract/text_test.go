package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n \t \n"))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_CollapsesInlineWhitespace(t *testing.T) {
	result := CleanText("Led  a   team\t\tof   five")

	assert.Equal(t, "Led a team of five", result)
}

func TestCleanText_LimitsBlankLines(t *testing.T) {
	result := CleanText("SUMMARY\n\n\n\n\nEXPERIENCE")

	assert.Equal(t, "SUMMARY\n\nEXPERIENCE", result)
}

func TestCleanText_KeepsBulletsAtLineStart(t *testing.T) {
	result := CleanText("   • Built APIs\n\t- Shipped features")

	assert.Equal(t, "• Built APIs\n- Shipped features", result)
}

func TestCleanText_DropsControlCharacters(t *testing.T) {
	result := CleanText("Jane\x00 Doe\x07")

	assert.Equal(t, "Jane Doe", result)
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Test   content\n\n\n\nwith   spaces"
	assert.Equal(t, CleanText(input), CleanText(input))
}
