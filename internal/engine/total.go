package engine

import "github.com/ramanasai/dayflow/internal/model"

// TotalActual computes a task's lifetime cumulative actual by combining two
// sources without double-counting:
//
//  1. Every historical hour bucket contributes its fractional credit, and the
//     per-date sum is kept as a ledger of what that day already recorded.
//  2. Every completed todo linked to the task contributes on top: count mode
//     always adds a flat +1; duration mode adds only the shortfall between
//     the todo's target value and what the ledger already recorded for its
//     date, so a fully-logged day adds nothing extra while a bare
//     completion adds its full target value.
func TotalActual(task model.Task, records map[string]*model.DayData, todos []model.Todo) float64 {
	ledger := map[string]float64{}
	var total float64
	for date, day := range records {
		v := dayActual(task.ID, day)
		if v > 0 {
			ledger[date] += v
			total += v
		}
	}
	mode := model.ModeDuration
	if task.Targets != nil && task.Targets.Mode != "" {
		mode = task.Targets.Mode
	}
	for _, todo := range todos {
		if !todo.IsCompleted || todo.TemplateID != task.ID {
			continue
		}
		if mode == model.ModeCount {
			total++
			continue
		}
		target := todoTargetValue(todo, task)
		if target <= 0 {
			continue
		}
		if shortfall := target - ledger[todo.StartDate]; shortfall > 0 {
			total += shortfall
		}
	}
	return total
}

// TotalProgress reports lifetime progress against a task's long-term goal,
// or zero when no TotalValue is configured.
func TotalProgress(task model.Task, records map[string]*model.DayData, todos []model.Todo) (actual, percent float64) {
	actual = TotalActual(task, records, todos)
	if task.Targets == nil || task.Targets.TotalValue == nil || *task.Targets.TotalValue <= 0 {
		return actual, 0
	}
	percent = actual / *task.Targets.TotalValue * 100
	if percent > 100 {
		percent = 100
	}
	return actual, percent
}

// todoTargetValue prefers the todo's own target (copied or set at creation)
// and falls back to the template's.
func todoTargetValue(todo model.Todo, task model.Task) float64 {
	if todo.Targets != nil && todo.Targets.Value > 0 {
		return todo.Targets.Value
	}
	if task.Targets != nil {
		return task.Targets.Value
	}
	return 0
}
