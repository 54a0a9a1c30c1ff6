package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

// AddTodo creates a dated todo. When targets carry a frequency or long-term
// goal and no template is given, a template task is auto-created so progress
// tracking has something to accumulate against; the todo gets its own copy
// of the targets either way.
func (a *App) AddTodo(title, date, objectiveID, templateID string, targets *model.Targets) (model.Todo, error) {
	if date == "" {
		date = a.Today()
	}
	if templateID == "" && targets != nil && (targets.Frequency > 0 || targets.TotalValue != nil) {
		category := objectiveID
		if category == "" {
			category = model.UncategorizedID
		}
		tpl := model.Task{ID: uuid.NewString(), Name: title, Category: category, Targets: cloneTargets(targets)}
		a.doc.Tasks = append(a.doc.Tasks, tpl)
		templateID = tpl.ID
	}
	todo := model.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		ObjectiveID: objectiveID,
		TemplateID:  templateID,
		StartDate:   date,
		Targets:     cloneTargets(targets),
	}
	if todo.Targets == nil && templateID != "" {
		if tpl, ok := a.doc.TaskByID(templateID); ok && tpl.Targets != nil {
			todo.Targets = cloneTargets(tpl.Targets)
		}
	}
	a.doc.Todos = append(a.doc.Todos, todo)
	return todo, a.save()
}

func (a *App) CompleteTodo(id string) error {
	todo, ok := a.doc.TodoByID(id)
	if !ok {
		return fmt.Errorf("todo %q not found", id)
	}
	now := a.now()
	todo.IsCompleted = true
	todo.CompletedAt = &now
	return a.save()
}

func (a *App) UncompleteTodo(id string) error {
	todo, ok := a.doc.TodoByID(id)
	if !ok {
		return fmt.Errorf("todo %q not found", id)
	}
	todo.IsCompleted = false
	todo.CompletedAt = nil
	return a.save()
}

func (a *App) DeleteTodo(id string) error {
	kept := a.doc.Todos[:0]
	found := false
	for _, todo := range a.doc.Todos {
		if todo.ID == id {
			found = true
			continue
		}
		kept = append(kept, todo)
	}
	if !found {
		return fmt.Errorf("todo %q not found", id)
	}
	a.doc.Todos = kept
	return a.save()
}

func (a *App) AddSubTask(todoID, title string) error {
	todo, ok := a.doc.TodoByID(todoID)
	if !ok {
		return fmt.Errorf("todo %q not found", todoID)
	}
	todo.SubTasks = append(todo.SubTasks, model.SubTask{ID: uuid.NewString(), Title: title})
	return a.save()
}

func (a *App) ToggleSubTask(todoID, subID string) error {
	todo, ok := a.doc.TodoByID(todoID)
	if !ok {
		return fmt.Errorf("todo %q not found", todoID)
	}
	for i := range todo.SubTasks {
		if todo.SubTasks[i].ID == subID {
			todo.SubTasks[i].IsCompleted = !todo.SubTasks[i].IsCompleted
			return a.save()
		}
	}
	return fmt.Errorf("subtask %q not found", subID)
}

// SetFrog marks one todo as the day's top priority; any other frog on the
// same date is demoted.
func (a *App) SetFrog(id string) error {
	todo, ok := a.doc.TodoByID(id)
	if !ok {
		return fmt.Errorf("todo %q not found", id)
	}
	for i := range a.doc.Todos {
		if a.doc.Todos[i].StartDate == todo.StartDate {
			a.doc.Todos[i].IsFrog = false
		}
	}
	todo.IsFrog = true
	return a.save()
}

// TodosFor lists the todos whose StartDate is the given date.
func (a *App) TodosFor(date string) []model.Todo {
	var out []model.Todo
	for _, todo := range a.doc.Todos {
		if todo.StartDate == date {
			out = append(out, todo)
		}
	}
	return out
}

func cloneTargets(t *model.Targets) *model.Targets {
	if t == nil {
		return nil
	}
	c := *t
	if t.TotalValue != nil {
		v := *t.TotalValue
		c.TotalValue = &v
	}
	return &c
}
