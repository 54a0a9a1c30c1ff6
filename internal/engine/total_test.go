package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/dayflow/internal/model"
)

func durationTask(value float64, total float64) model.Task {
	return model.Task{ID: "t", Targets: &model.Targets{
		Mode: model.ModeDuration, Value: value, Frequency: 1, TotalValue: &total,
	}}
}

func TestTotalActualNoDoubleCount(t *testing.T) {
	// Two full hours logged; the completed todo's target is exactly covered,
	// so completion adds nothing.
	task := durationTask(2.0, 100)
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{9: {"t"}, 10: {"t"}}),
	}
	todos := []model.Todo{{
		ID: "td", TemplateID: "t", IsCompleted: true, StartDate: "2026-03-02",
		Targets: &model.Targets{Mode: model.ModeDuration, Value: 2.0},
	}}

	assert.InDelta(t, 2.0, TotalActual(task, records, todos), 1e-9)
}

func TestTotalActualShortfallTopUp(t *testing.T) {
	// Half an hour logged (shared bucket) against a 2.0 target: completing
	// the todo tops up exactly the missing 1.5.
	task := durationTask(2.0, 100)
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{9: {"t", "other"}}),
	}
	todos := []model.Todo{{
		ID: "td", TemplateID: "t", IsCompleted: true, StartDate: "2026-03-02",
		Targets: &model.Targets{Mode: model.ModeDuration, Value: 2.0},
	}}

	assert.InDelta(t, 0.5+1.5, TotalActual(task, records, todos), 1e-9)
}

func TestTotalActualBareCompletionAddsFullTarget(t *testing.T) {
	task := durationTask(2.0, 100)
	todos := []model.Todo{{ID: "td", TemplateID: "t", IsCompleted: true, StartDate: "2026-03-02"}}

	// No own targets on the todo: falls back to the template's value.
	assert.InDelta(t, 2.0, TotalActual(task, map[string]*model.DayData{}, todos), 1e-9)
}

func TestTotalActualCountModeFlatIncrement(t *testing.T) {
	total := 30.0
	task := model.Task{ID: "t", Targets: &model.Targets{
		Mode: model.ModeCount, Value: 1, Frequency: 1, TotalValue: &total,
	}}
	// Hour-bucket data still uses the fractional split even in count mode;
	// completed todos add a flat +1 each regardless of the ledger.
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{9: {"t", "other"}}),
	}
	todos := []model.Todo{
		{ID: "a", TemplateID: "t", IsCompleted: true, StartDate: "2026-03-02"},
		{ID: "b", TemplateID: "t", IsCompleted: true, StartDate: "2026-03-03"},
		{ID: "c", TemplateID: "t", IsCompleted: false, StartDate: "2026-03-04"},
		{ID: "d", TemplateID: "unrelated", IsCompleted: true, StartDate: "2026-03-04"},
	}

	assert.InDelta(t, 0.5+1+1, TotalActual(task, records, todos), 1e-9)
}

func TestTotalProgressCapped(t *testing.T) {
	task := durationTask(1.0, 2.0)
	records := map[string]*model.DayData{
		"2026-03-02": day(map[int][]string{9: {"t"}, 10: {"t"}, 11: {"t"}}),
	}

	actual, percent := TotalProgress(task, records, nil)
	assert.InDelta(t, 3.0, actual, 1e-9)
	assert.Equal(t, 100.0, percent)

	// No long-term goal configured: actual still reported, percent zero.
	_, percent = TotalProgress(model.Task{ID: "t"}, records, nil)
	assert.Zero(t, percent)
}
