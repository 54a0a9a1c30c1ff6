package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

func (a *App) SetRollover(enabled bool, maxDays int) error {
	if maxDays < 0 {
		return fmt.Errorf("maxDays must be non-negative")
	}
	a.doc.Rollover = &model.RolloverSettings{Enabled: enabled, MaxDays: maxDays}
	return a.save()
}

func (a *App) SetTheme(color string) error {
	a.doc.ThemeColor = color
	return a.save()
}

func (a *App) AddReviewTemplate(name, content string) (model.ReviewTemplate, error) {
	tpl := model.ReviewTemplate{ID: uuid.NewString(), Name: name, Content: content}
	a.doc.ReviewTemplates = append(a.doc.ReviewTemplates, tpl)
	return tpl, a.save()
}

func (a *App) DeleteReviewTemplate(id string) error {
	kept := a.doc.ReviewTemplates[:0]
	found := false
	for _, tpl := range a.doc.ReviewTemplates {
		if tpl.ID == id {
			found = true
			continue
		}
		kept = append(kept, tpl)
	}
	if !found {
		return fmt.Errorf("review template %q not found", id)
	}
	a.doc.ReviewTemplates = kept
	return a.save()
}
