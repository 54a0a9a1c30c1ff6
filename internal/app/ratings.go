package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

// RateDay sets scores for the given dimensions on one day, merging with any
// scores already present. Dimensions not mentioned stay unrated. Scores are
// clamped to -2..2.
func (a *App) RateDay(date string, scores map[string]int, comment string) error {
	if date == "" {
		date = a.Today()
	}
	rating := a.doc.Ratings[date]
	if rating == nil {
		rating = &model.DayRating{Scores: map[string]int{}}
		a.doc.Ratings[date] = rating
	}
	if rating.Scores == nil {
		rating.Scores = map[string]int{}
	}
	for id, score := range scores {
		if score < -2 {
			score = -2
		}
		if score > 2 {
			score = 2
		}
		rating.Scores[id] = score
	}
	if comment != "" {
		rating.Comment = comment
	}
	return a.save()
}

func (a *App) AddRatingItem(name string, reasons map[int]string) (model.RatingItem, error) {
	item := model.RatingItem{ID: uuid.NewString(), Name: name, Reasons: reasons}
	a.doc.RatingItems = append(a.doc.RatingItems, item)
	return item, a.save()
}

// DeleteRatingItem removes a dimension. Historical scores keep the id and
// still count toward the lifetime balance.
func (a *App) DeleteRatingItem(id string) error {
	kept := a.doc.RatingItems[:0]
	found := false
	for _, item := range a.doc.RatingItems {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("rating item %q not found", id)
	}
	a.doc.RatingItems = kept
	return a.save()
}
