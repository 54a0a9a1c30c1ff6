package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

func (a *App) AddTask(name, color, category string, targets *model.Targets) (model.Task, error) {
	if category == "" {
		category = model.UncategorizedID
	}
	t := model.Task{ID: uuid.NewString(), Name: name, Color: color, Category: category, Targets: targets}
	a.doc.Tasks = append(a.doc.Tasks, t)
	return t, a.save()
}

func (a *App) UpdateTask(t model.Task) error {
	for i := range a.doc.Tasks {
		if a.doc.Tasks[i].ID == t.ID {
			a.doc.Tasks[i] = t
			return a.save()
		}
	}
	return fmt.Errorf("task %q not found", t.ID)
}

// DeleteTask removes the template only. Historical schedule/record entries
// and todos keep the id; the engine skips ids with no living task.
func (a *App) DeleteTask(id string) error {
	kept := a.doc.Tasks[:0]
	found := false
	for _, t := range a.doc.Tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("task %q not found", id)
	}
	a.doc.Tasks = kept
	return a.save()
}
