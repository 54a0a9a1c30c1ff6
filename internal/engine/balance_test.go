package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/dayflow/internal/model"
)

func TestBalanceArithmetic(t *testing.T) {
	ratings := map[string]*model.DayRating{
		"2026-03-01": {Scores: map[string]int{"focus": 2, "energy": 1}},
		"2026-03-02": {Scores: map[string]int{"focus": 2, "energy": 2, "mood": 1}},
	}
	// Pad to a lifetime score of 50.
	ratings["2026-03-03"] = &model.DayRating{Scores: map[string]int{"focus": 42}}

	redemptions := []model.Redemption{
		{ID: "r1", Cost: 10},
		{ID: "r2", Cost: 15},
	}

	assert.Equal(t, 50, LifetimeScore(ratings))
	assert.Equal(t, 25, SpentPoints(redemptions))
	assert.Equal(t, 25, Balance(ratings, redemptions))
}

func TestLifetimeScoreAbsentVersusZero(t *testing.T) {
	ratings := map[string]*model.DayRating{
		"2026-03-01": {Scores: map[string]int{"focus": 0, "energy": -2}},
		"2026-03-02": {Scores: map[string]int{}}, // rated nothing
		"2026-03-03": nil,
	}
	assert.Equal(t, -2, LifetimeScore(ratings))
}
