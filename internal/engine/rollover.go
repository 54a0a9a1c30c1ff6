package engine

import (
	"time"

	"github.com/ramanasai/dayflow/internal/model"
)

// Rollover shifts incomplete, overdue todos forward to today in a single
// step: a todo whose StartDate is 0 < age <= MaxDays calendar days old gets
// StartDate rewritten to today (its age resets; the original date stays in
// ActualStartDate for display). Older todos are left where they are, todos
// with missing or unparseable dates are skipped, and nothing happens when the
// policy is disabled. Returns how many todos were shifted.
func Rollover(todos []model.Todo, settings model.RolloverSettings, today time.Time) int {
	if !settings.Enabled || settings.MaxDays <= 0 {
		return 0
	}
	todayKey := midnight(today).Format(model.DateFormat)
	shifted := 0
	for i := range todos {
		todo := &todos[i]
		if todo.IsCompleted || todo.StartDate == "" || todo.StartDate >= todayKey {
			continue
		}
		start, err := time.ParseInLocation(model.DateFormat, todo.StartDate, today.Location())
		if err != nil {
			continue
		}
		age := int(midnight(today).Sub(midnight(start)).Hours() / 24)
		if age <= 0 || age > settings.MaxDays {
			continue
		}
		if todo.ActualStartDate == "" {
			todo.ActualStartDate = todo.StartDate
		}
		todo.StartDate = todayKey
		shifted++
	}
	return shifted
}
