package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/dayflow/internal/model"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(model.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHourCreditConservation(t *testing.T) {
	// N ids sharing an hour split exactly one hour between them.
	for n := 1; n <= model.MaxTasksPerHour; n++ {
		ids := make([]string, n)
		var sum float64
		for range ids {
			sum += hourCredit(ids)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "n=%d", n)
	}
	assert.Zero(t, hourCredit(nil))
}

func TestWindowActualFractionalSplit(t *testing.T) {
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{
			9:  {"a", "b"},      // a gets 0.5
			10: {"a"},           // a gets 1.0
			11: {"b", "c", "a"}, // a gets 1/3
		}),
	}

	actual := WindowActual("a", records, DayWindow(mustDate("2026-03-02")))
	assert.InDelta(t, 0.5+1.0+1.0/3, actual, 1e-9)
}

func TestTaskProgressBounds(t *testing.T) {
	task := model.Task{ID: "a", Targets: &model.Targets{Mode: model.ModeDuration, Value: 1, Frequency: 1}}
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{8: {"a"}, 9: {"a"}, 10: {"a"}}),
	}

	p := TaskProgress(task, records, DayWindow(mustDate("2026-03-02")))
	assert.InDelta(t, 3.0, p.Actual, 1e-9)
	assert.Equal(t, 100.0, p.Percent) // capped, never above 100
}

func TestTaskProgressWeekWindow(t *testing.T) {
	// 3.5 hours over a 7-day frequency: daily goal 0.5, week goal 3.5.
	task := model.Task{ID: "r", Targets: &model.Targets{Mode: model.ModeDuration, Value: 3.5, Frequency: 7}}
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{20: {"r"}}), // Monday
		"2026-03-04": day(map[int][]string{21: {"r"}}),
	}

	w := WeekWindow(mustDate("2026-03-04")) // Wednesday -> week starts Monday
	assert.Equal(t, "2026-03-02", w.Start.Format(model.DateFormat))
	assert.Equal(t, 7, w.Days)

	p := TaskProgress(task, records, w)
	assert.InDelta(t, 0.5, p.DailyGoal, 1e-9)
	assert.InDelta(t, 3.5, p.PeriodGoal, 1e-9)
	assert.InDelta(t, 2.0/3.5*100, p.Percent, 1e-9)
}

func TestTaskProgressNoTargetIsZero(t *testing.T) {
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{8: {"a"}}),
	}
	w := DayWindow(mustDate("2026-03-02"))

	p := TaskProgress(model.Task{ID: "a"}, records, w)
	assert.Zero(t, p.Percent)
	assert.Zero(t, p.PeriodGoal)

	// Zero frequency must not divide by zero.
	p = TaskProgress(model.Task{ID: "a", Targets: &model.Targets{Value: 2, Frequency: 0}}, records, w)
	assert.Zero(t, p.Percent)
	assert.False(t, p.Percent != p.Percent, "percent must never be NaN")
}

func TestMonthWindowDays(t *testing.T) {
	assert.Equal(t, 31, MonthWindow(mustDate("2026-01-15")).Days)
	assert.Equal(t, 28, MonthWindow(mustDate("2026-02-01")).Days)
	assert.Equal(t, 30, MonthWindow(mustDate("2026-04-30")).Days)
}
