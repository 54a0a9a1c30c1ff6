package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/dayflow/internal/model"
)

func TestRolloverWithinWindow(t *testing.T) {
	today := mustDate("2026-03-10")
	todos := []model.Todo{
		{ID: "recent", StartDate: "2026-03-08"}, // 2 days old -> rolls
		{ID: "stale", StartDate: "2026-03-05"},  // 5 days old -> stays
	}

	shifted := Rollover(todos, model.RolloverSettings{Enabled: true, MaxDays: 3}, today)

	assert.Equal(t, 1, shifted)
	assert.Equal(t, "2026-03-10", todos[0].StartDate)
	assert.Equal(t, "2026-03-08", todos[0].ActualStartDate)
	assert.Equal(t, "2026-03-05", todos[1].StartDate)
	assert.Empty(t, todos[1].ActualStartDate)
}

func TestRolloverDisabledMutatesNothing(t *testing.T) {
	today := mustDate("2026-03-10")
	todos := []model.Todo{{ID: "old", StartDate: "2026-03-09"}}

	shifted := Rollover(todos, model.RolloverSettings{Enabled: false, MaxDays: 3}, today)

	assert.Zero(t, shifted)
	assert.Equal(t, "2026-03-09", todos[0].StartDate)
}

func TestRolloverSkipsCompletedAndBadDates(t *testing.T) {
	today := mustDate("2026-03-10")
	todos := []model.Todo{
		{ID: "done", StartDate: "2026-03-09", IsCompleted: true},
		{ID: "nodate"},
		{ID: "garbage", StartDate: "not-a-date"},
		{ID: "today", StartDate: "2026-03-10"},
		{ID: "future", StartDate: "2026-03-12"},
	}

	assert.Zero(t, Rollover(todos, model.RolloverSettings{Enabled: true, MaxDays: 3}, today))
	for _, todo := range todos[:3] {
		assert.Empty(t, todo.ActualStartDate)
	}
	assert.Equal(t, "2026-03-12", todos[4].StartDate)
}

func TestRolloverSingleShiftResetsAge(t *testing.T) {
	// A rolled todo keeps its original date only in ActualStartDate; a later
	// rollover measures age from the new StartDate.
	todos := []model.Todo{{ID: "x", StartDate: "2026-03-08"}}
	settings := model.RolloverSettings{Enabled: true, MaxDays: 3}

	Rollover(todos, settings, mustDate("2026-03-10"))
	assert.Equal(t, "2026-03-10", todos[0].StartDate)

	Rollover(todos, settings, mustDate("2026-03-12"))
	assert.Equal(t, "2026-03-12", todos[0].StartDate)
	assert.Equal(t, "2026-03-08", todos[0].ActualStartDate)
}
