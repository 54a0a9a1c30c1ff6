package app

import (
	"encoding/json"
	"fmt"

	"github.com/ramanasai/dayflow/internal/model"
)

// ExportJSON serializes the full document for backup or transfer.
func (a *App) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(a.doc, "", "  ")
}

// ImportJSON replaces the document wholesale with the given payload. The
// payload is rejected, leaving the current document untouched, unless it
// carries recognizable top-level task and objective collections.
func (a *App) ImportJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("invalid import payload: %w", err)
	}
	if _, ok := probe["tasks"]; !ok {
		return fmt.Errorf("import payload has no tasks collection")
	}
	if _, ok := probe["objectives"]; !ok {
		return fmt.Errorf("import payload has no objectives collection")
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid import payload: %w", err)
	}
	a.doc = model.Repair(&doc)
	return a.save()
}

// ClearRecords empties every historical collection while keeping templates
// and settings: tasks, objectives, category order, recurring schedule,
// rating dimensions, shop catalog, review templates, rollover policy and
// theme all survive.
func (a *App) ClearRecords() error {
	a.doc.Todos = []model.Todo{}
	a.doc.Schedule = map[string]*model.DayData{}
	a.doc.Records = map[string]*model.DayData{}
	a.doc.Blocks = map[string][]model.TimeBlock{}
	a.doc.Ratings = map[string]*model.DayRating{}
	a.doc.Redemptions = []model.Redemption{}
	return a.save()
}
