package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/engine"
	"github.com/ramanasai/dayflow/internal/model"
)

// PlanHour assigns a task to a planned hour on a specific day.
func (a *App) PlanHour(date string, hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	a.doc.ScheduleFor(date).AssignHour(hour, taskID)
	return a.save()
}

func (a *App) UnplanHour(date string, hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	if day := a.doc.Schedule[date]; day != nil {
		day.ClearHour(hour, taskID)
	}
	return a.save()
}

// SetRecurringHour adds a task to the recurring template for an hour, under
// the same per-hour cap as specific days.
func (a *App) SetRecurringHour(hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	tpl := model.DayData{Hours: a.doc.RecurringSchedule}
	tpl.AssignHour(hour, taskID)
	a.doc.RecurringSchedule = tpl.Hours
	return a.save()
}

func (a *App) ClearRecurringHour(hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	tpl := model.DayData{Hours: a.doc.RecurringSchedule}
	tpl.ClearHour(hour, taskID)
	a.doc.RecurringSchedule = tpl.Hours
	return a.save()
}

// RecordHour logs actual time against an hour bucket.
func (a *App) RecordHour(date string, hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	a.doc.RecordsFor(date).AssignHour(hour, taskID)
	return a.save()
}

func (a *App) UnrecordHour(date string, hour int, taskID string) error {
	if err := validHour(hour); err != nil {
		return err
	}
	if day := a.doc.Records[date]; day != nil {
		day.ClearHour(hour, taskID)
	}
	return a.save()
}

// AddBlock records a minute-range block and marks the hours it overlaps in
// the date's record buckets, respecting the per-hour cap.
func (a *App) AddBlock(date, taskID string, startMinute, endMinute int) (model.TimeBlock, error) {
	if startMinute < 0 || endMinute > 24*60 || endMinute < startMinute {
		return model.TimeBlock{}, fmt.Errorf("invalid block range %d-%d", startMinute, endMinute)
	}
	block := model.TimeBlock{ID: uuid.NewString(), TaskID: taskID, StartMinute: startMinute, EndMinute: endMinute}
	a.doc.Blocks[date] = append(a.doc.Blocks[date], block)

	day := a.doc.RecordsFor(date)
	for _, hour := range engine.BlockHours(block) {
		day.AssignHour(hour, taskID)
	}
	return block, a.save()
}

// DeleteBlock removes a block and rebuilds the hours it touched from the
// blocks that remain on that date.
func (a *App) DeleteBlock(date, blockID string) error {
	blocks := a.doc.Blocks[date]
	kept := blocks[:0]
	var removed *model.TimeBlock
	for _, b := range blocks {
		if b.ID == blockID {
			rb := b
			removed = &rb
			continue
		}
		kept = append(kept, b)
	}
	if removed == nil {
		return fmt.Errorf("block %q not found on %s", blockID, date)
	}
	if len(kept) == 0 {
		delete(a.doc.Blocks, date)
	} else {
		a.doc.Blocks[date] = kept
	}

	if day := a.doc.Records[date]; day != nil {
		for _, hour := range engine.BlockHours(*removed) {
			day.ClearHour(hour, removed.TaskID)
		}
		engine.SyncBlocks(a.doc.Blocks[date], day)
	}
	return a.save()
}

func validHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d out of range", hour)
	}
	return nil
}
