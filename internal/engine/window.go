package engine

import (
	"time"

	"github.com/ramanasai/dayflow/internal/model"
)

// Window is an inclusive run of calendar days progress is computed over.
type Window struct {
	Start time.Time
	Days  int
}

// DayWindow is the single day containing t.
func DayWindow(t time.Time) Window {
	return Window{Start: midnight(t), Days: 1}
}

// WeekWindow is the ISO week (Monday through Sunday) containing t.
func WeekWindow(t time.Time) Window {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return Window{Start: midnight(t).AddDate(0, 0, -(weekday - 1)), Days: 7}
}

// MonthWindow is the calendar month containing t.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{Start: start, Days: start.AddDate(0, 1, 0).Add(-time.Hour).Day()}
}

// Dates returns the YYYY-MM-DD keys of every day in the window.
func (w Window) Dates() []string {
	dates := make([]string, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		dates = append(dates, w.Start.AddDate(0, 0, i).Format(model.DateFormat))
	}
	return dates
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
