package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomScorerRange(t *testing.T) {
	s := NewRandomScorer(42)
	for i := 0; i < 1000; i++ {
		score := s.Score("P1", "Unusual Pattern")
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 99)
	}
}
