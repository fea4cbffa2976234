package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The rating recompute query itself runs against a real database in the
// integration suite (TestReviewLifecycleAndRating); only the rounding is
// testable here.
func TestRound2(t *testing.T) {
	assert.Equal(t, 4.5, Round2(4.5))
	assert.Equal(t, 4.33, Round2(13.0/3.0))
	assert.Equal(t, 4.67, Round2(14.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 5.0, Round2(4.999))
}
