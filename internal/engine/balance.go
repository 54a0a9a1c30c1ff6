package engine

import "github.com/ramanasai/dayflow/internal/model"

// LifetimeScore sums every rating score across all dates. Dimensions absent
// from a day's Scores map were never rated and contribute nothing; an
// explicit zero is present and counts as zero.
func LifetimeScore(ratings map[string]*model.DayRating) int {
	var sum int
	for _, rating := range ratings {
		if rating == nil {
			continue
		}
		for _, score := range rating.Scores {
			sum += score
		}
	}
	return sum
}

// SpentPoints sums the snapshotted cost of every redemption.
func SpentPoints(redemptions []model.Redemption) int {
	var sum int
	for _, r := range redemptions {
		sum += r.Cost
	}
	return sum
}

// Balance is the points available to spend in the shop.
func Balance(ratings map[string]*model.DayRating, redemptions []model.Redemption) int {
	return LifetimeScore(ratings) - SpentPoints(redemptions)
}
