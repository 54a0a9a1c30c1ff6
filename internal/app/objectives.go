package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

func (a *App) AddObjective(title, description, color string) (model.Objective, error) {
	o := model.Objective{ID: uuid.NewString(), Title: title, Description: description, Color: color}
	a.doc.Objectives = append(a.doc.Objectives, o)
	a.doc.CategoryOrder = append(a.doc.CategoryOrder, o.ID)
	return o, a.save()
}

func (a *App) UpdateObjective(o model.Objective) error {
	for i := range a.doc.Objectives {
		if a.doc.Objectives[i].ID == o.ID {
			a.doc.Objectives[i] = o
			return a.save()
		}
	}
	return fmt.Errorf("objective %q not found", o.ID)
}

// DeleteObjective removes an objective, reassigns its tasks to the
// uncategorized bucket and drops it from the display order. Todos keep their
// objectiveId; dangling ids are tolerated on read.
func (a *App) DeleteObjective(id string) error {
	kept := a.doc.Objectives[:0]
	found := false
	for _, o := range a.doc.Objectives {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return fmt.Errorf("objective %q not found", id)
	}
	a.doc.Objectives = kept

	for i := range a.doc.Tasks {
		if a.doc.Tasks[i].Category == id {
			a.doc.Tasks[i].Category = model.UncategorizedID
		}
	}

	order := a.doc.CategoryOrder[:0]
	for _, cid := range a.doc.CategoryOrder {
		if cid != id {
			order = append(order, cid)
		}
	}
	a.doc.CategoryOrder = order
	return a.save()
}

// ReorderCategories replaces the display order. Ids not in the new order are
// appended at the end in their old relative order so nothing disappears.
func (a *App) ReorderCategories(order []string) error {
	seen := map[string]bool{}
	for _, id := range order {
		seen[id] = true
	}
	for _, id := range a.doc.CategoryOrder {
		if !seen[id] {
			order = append(order, id)
		}
	}
	a.doc.CategoryOrder = order
	return a.save()
}
