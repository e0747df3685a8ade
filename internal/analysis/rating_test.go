package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "Excellent", RatingLabel(100))
	assert.Equal(t, "Excellent", RatingLabel(80))
	assert.Equal(t, "Good", RatingLabel(79))
	assert.Equal(t, "Good", RatingLabel(60))
	assert.Equal(t, "Fair", RatingLabel(59))
	assert.Equal(t, "Fair", RatingLabel(40))
	assert.Equal(t, "Needs Improvement", RatingLabel(39))
	assert.Equal(t, "Needs Improvement", RatingLabel(0))
}

func TestRatingClass(t *testing.T) {
	assert.Equal(t, "rating-excellent", RatingClass(85))
	assert.Equal(t, "rating-good", RatingClass(60))
	assert.Equal(t, "rating-fair", RatingClass(45))
	assert.Equal(t, "rating-poor", RatingClass(10))
}

func TestScoreMessage(t *testing.T) {
	assert.Contains(t, ScoreMessage(90), "well-optimized")
	assert.Contains(t, ScoreMessage(65), "room for improvement")
	assert.Contains(t, ScoreMessage(50), "some optimization")
	assert.Contains(t, ScoreMessage(0), "significant improvements")
}
