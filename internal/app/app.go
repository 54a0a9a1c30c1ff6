// Package app owns the in-memory document and every mutation on it. Each
// mutation applies to the document and persists the whole thing through the
// store; reads recompute aggregates from the current document via the engine.
package app

import (
	"fmt"
	"log"
	"time"

	"github.com/ramanasai/dayflow/internal/engine"
	"github.com/ramanasai/dayflow/internal/model"
	"github.com/ramanasai/dayflow/internal/store"
)

type App struct {
	st  store.Store
	doc *model.Document
	now func() time.Time
}

// Open loads the document (falling back to a fresh default on a missing or
// unreadable store), repairs missing collections and runs rollover once.
func Open(st store.Store) (*App, error) {
	return openWithClock(st, time.Now)
}

// openWithClock is Open with an injected clock, for tests.
func openWithClock(st store.Store, now func() time.Time) (*App, error) {
	a := &App{st: st, now: now}
	doc, err := st.Load()
	switch {
	case err != nil:
		log.Printf("dayflow: could not load document, starting fresh: %v", err)
		doc = model.DefaultDocument()
	case doc == nil:
		doc = model.DefaultDocument()
	default:
		model.Repair(doc)
	}
	a.doc = doc

	if shifted := engine.Rollover(doc.Todos, *doc.Rollover, a.now()); shifted > 0 {
		if err := a.save(); err != nil {
			return nil, fmt.Errorf("persist rollover: %w", err)
		}
	}
	return a, nil
}

func (a *App) Doc() *model.Document { return a.doc }

// Today returns the current date key.
func (a *App) Today() string { return a.now().Format(model.DateFormat) }

// Now exposes the controller clock.
func (a *App) Now() time.Time { return a.now() }

func (a *App) save() error { return a.st.Save(a.doc) }

// EffectivePlan merges a date's specific schedule with the recurring
// template. The recorded side is returned as-is, never merged.
func (a *App) EffectivePlan(date string) model.DayData {
	return engine.MergePlanned(a.doc.Schedule[date], a.doc.RecurringSchedule)
}

// Balance is the current spendable points balance.
func (a *App) Balance() int {
	return engine.Balance(a.doc.Ratings, a.doc.Redemptions)
}
