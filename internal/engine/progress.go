package engine

import "github.com/ramanasai/dayflow/internal/model"

// Progress is a task's actual-vs-target standing over one window.
type Progress struct {
	Actual     float64
	DailyGoal  float64
	PeriodGoal float64
	Percent    float64
}

// hourCredit is the fractional value one hour bucket contributes to each task
// id it holds: an hour shared by N tasks credits each with 1/N, so a slot
// never yields more than one hour in total. The split applies uniformly to
// hour-bucket data in both duration and count mode; only the completed-todo
// path in total.go branches on mode.
func hourCredit(ids []string) float64 {
	if len(ids) == 0 {
		return 0
	}
	return 1 / float64(len(ids))
}

// dayActual sums a task's fractional credits across one day's buckets.
func dayActual(taskID string, day *model.DayData) float64 {
	if day == nil || day.Hours == nil {
		return 0
	}
	var sum float64
	for _, ids := range day.Hours {
		for _, id := range ids {
			if id == taskID {
				sum += hourCredit(ids)
				break
			}
		}
	}
	return sum
}

// WindowActual sums a task's fractional hour credits over every day in the
// window. Days with no records contribute nothing.
func WindowActual(taskID string, records map[string]*model.DayData, w Window) float64 {
	var sum float64
	for _, date := range w.Dates() {
		sum += dayActual(taskID, records[date])
	}
	return sum
}

// TaskProgress computes a task's windowed progress. A task without targets,
// or with a zero period goal, reports zero progress rather than erroring.
func TaskProgress(task model.Task, records map[string]*model.DayData, w Window) Progress {
	p := Progress{Actual: WindowActual(task.ID, records, w)}
	if task.Targets == nil || task.Targets.Frequency <= 0 {
		return p
	}
	p.DailyGoal = task.Targets.Value / float64(task.Targets.Frequency)
	p.PeriodGoal = p.DailyGoal * float64(w.Days)
	if p.PeriodGoal <= 0 {
		return p
	}
	p.Percent = p.Actual / p.PeriodGoal * 100
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}
