package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/dayflow/internal/model"
)

// memStore is an in-memory Store fake.
type memStore struct {
	doc     *model.Document
	loadErr error
	saves   int
}

func (m *memStore) Load() (*model.Document, error) { return m.doc, m.loadErr }
func (m *memStore) Save(doc *model.Document) error {
	m.doc = doc
	m.saves++
	return nil
}
func (m *memStore) Close() error { return nil }

func fixedClock(date string) func() time.Time {
	t, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestApp(t *testing.T, doc *model.Document) (*App, *memStore) {
	t.Helper()
	st := &memStore{doc: doc}
	a, err := openWithClock(st, fixedClock("2026-03-10"))
	require.NoError(t, err)
	return a, st
}

func TestOpenFallsBackOnLoadError(t *testing.T) {
	st := &memStore{loadErr: errors.New("disk on fire")}
	a, err := Open(st)
	require.NoError(t, err)
	assert.NotEmpty(t, a.Doc().Tasks, "default document expected")
}

func TestOpenRepairsMissingCollections(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Ratings = nil
	todos := doc.Todos

	a, _ := newTestApp(t, doc)

	assert.NotNil(t, a.Doc().Ratings)
	assert.Empty(t, a.Doc().Ratings)
	assert.Equal(t, todos, a.Doc().Todos, "repair must not touch present keys")
}

func TestOpenRunsRolloverOnce(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Rollover = &model.RolloverSettings{Enabled: true, MaxDays: 3}
	doc.Todos = []model.Todo{
		{ID: "a", Title: "recent", StartDate: "2026-03-08"},
		{ID: "b", Title: "ancient", StartDate: "2026-03-01"},
	}

	a, st := newTestApp(t, doc)

	assert.Equal(t, "2026-03-10", a.Doc().Todos[0].StartDate)
	assert.Equal(t, "2026-03-01", a.Doc().Todos[1].StartDate)
	assert.Equal(t, 1, st.saves, "rollover persists exactly once")
}

func TestDisabledRolloverSurvivesReopen(t *testing.T) {
	a, st := newTestApp(t, model.DefaultDocument())
	require.NoError(t, a.SetRollover(false, 0))
	_, err := a.AddTodo("overdue", "2026-03-09", "", "", nil)
	require.NoError(t, err)

	reopened, err := openWithClock(st, fixedClock("2026-03-10"))
	require.NoError(t, err)
	require.NotNil(t, reopened.Doc().Rollover)
	assert.False(t, reopened.Doc().Rollover.Enabled)
	assert.Zero(t, reopened.Doc().Rollover.MaxDays)
	require.Len(t, reopened.Doc().Todos, 1)
	assert.Equal(t, "2026-03-09", reopened.Doc().Todos[0].StartDate,
		"disabled rollover must not shift todos")
}

func TestAddTodoAutoCreatesTemplate(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	total := 50.0
	before := len(a.Doc().Tasks)

	todo, err := a.AddTodo("Practice guitar", "", "growth", "", &model.Targets{
		Mode: model.ModeDuration, Value: 1, Frequency: 1, TotalValue: &total,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", todo.StartDate)
	require.NotEmpty(t, todo.TemplateID)
	assert.Len(t, a.Doc().Tasks, before+1)

	tpl, ok := a.Doc().TaskByID(todo.TemplateID)
	require.True(t, ok)
	assert.Equal(t, "Practice guitar", tpl.Name)
	assert.Equal(t, "growth", tpl.Category)
	require.NotNil(t, tpl.Targets.TotalValue)
	assert.Equal(t, 50.0, *tpl.Targets.TotalValue)
}

func TestAddTodoPlainQuickAdd(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	before := len(a.Doc().Tasks)

	todo, err := a.AddTodo("Buy milk", "2026-03-11", "", "", nil)
	require.NoError(t, err)

	assert.Empty(t, todo.TemplateID)
	assert.Len(t, a.Doc().Tasks, before, "no template for a one-off")
}

func TestSetFrogIsExclusivePerDay(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	t1, _ := a.AddTodo("one", "2026-03-10", "", "", nil)
	t2, _ := a.AddTodo("two", "2026-03-10", "", "", nil)
	other, _ := a.AddTodo("elsewhere", "2026-03-11", "", "", nil)
	require.NoError(t, a.SetFrog(other.ID))

	require.NoError(t, a.SetFrog(t1.ID))
	require.NoError(t, a.SetFrog(t2.ID))

	get := func(id string) model.Todo {
		todo, ok := a.Doc().TodoByID(id)
		require.True(t, ok)
		return *todo
	}
	assert.False(t, get(t1.ID).IsFrog)
	assert.True(t, get(t2.ID).IsFrog)
	assert.True(t, get(other.ID).IsFrog, "other days unaffected")
}

func TestCompleteTodoSetsTimestamp(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	todo, _ := a.AddTodo("one", "", "", "", nil)

	require.NoError(t, a.CompleteTodo(todo.ID))
	got, _ := a.Doc().TodoByID(todo.ID)
	assert.True(t, got.IsCompleted)
	require.NotNil(t, got.CompletedAt)

	require.NoError(t, a.UncompleteTodo(todo.ID))
	got, _ = a.Doc().TodoByID(todo.ID)
	assert.False(t, got.IsCompleted)
	assert.Nil(t, got.CompletedAt)
}

func TestDeleteObjectiveReassignsTasks(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())

	require.NoError(t, a.DeleteObjective("health"))

	task, ok := a.Doc().TaskByID("default-exercise")
	require.True(t, ok)
	assert.Equal(t, model.UncategorizedID, task.Category)
	assert.NotContains(t, a.Doc().CategoryOrder, "health")
	_, ok = a.Doc().ObjectiveByID("health")
	assert.False(t, ok)
}

func TestBuyChecksBalance(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	item, err := a.AddShopItem("Movie night", 20, "🎬")
	require.NoError(t, err)

	_, err = a.Buy(item.ID)
	assert.ErrorContains(t, err, "not enough points")

	require.NoError(t, a.RateDay("2026-03-09", map[string]int{"focus": 2}, ""))
	// Still short: 2 < 20.
	_, err = a.Buy(item.ID)
	assert.Error(t, err)

	for i := 0; i < 10; i++ {
		date := time.Date(2026, 2, i+1, 0, 0, 0, 0, time.UTC).Format(model.DateFormat)
		require.NoError(t, a.RateDay(date, map[string]int{"focus": 2}, ""))
	}
	r, err := a.Buy(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movie night", r.ItemName)
	assert.Equal(t, 20, r.Cost)
	assert.Equal(t, 2, a.Balance())

	// Redemption survives catalog edits.
	require.NoError(t, a.DeleteShopItem(item.ID))
	assert.Equal(t, "Movie night", a.Doc().Redemptions[0].ItemName)
}

func TestExportImportRoundTrip(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	_, err := a.AddTodo("round trip", "2026-03-10", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, a.RecordHour("2026-03-10", 9, "default-exercise"))

	exported, err := a.ExportJSON()
	require.NoError(t, err)

	b, _ := newTestApp(t, model.DefaultDocument())
	require.NoError(t, b.ImportJSON(exported))
	assert.Equal(t, a.Doc(), b.Doc())
}

func TestImportRejectsUnrecognizedPayload(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	before, err := a.ExportJSON()
	require.NoError(t, err)

	assert.Error(t, a.ImportJSON([]byte(`{"foo": 1}`)))
	assert.Error(t, a.ImportJSON([]byte(`not json`)))
	assert.Error(t, a.ImportJSON([]byte(`{"tasks": []}`)), "objectives required too")

	after, err := a.ExportJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "rejected import must not mutate")
}

func TestClearRecordsPreservesTemplatesAndSettings(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	_, err := a.AddTodo("gone", "", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, a.PlanHour("2026-03-10", 9, "default-exercise"))
	require.NoError(t, a.RecordHour("2026-03-10", 9, "default-exercise"))
	require.NoError(t, a.SetRecurringHour(7, "default-exercise"))
	require.NoError(t, a.RateDay("", map[string]int{"focus": 1}, "ok"))
	item, _ := a.AddShopItem("Treat", 1, "")
	_, err = a.Buy(item.ID)
	require.NoError(t, err)

	require.NoError(t, a.ClearRecords())

	doc := a.Doc()
	assert.Empty(t, doc.Todos)
	assert.Empty(t, doc.Schedule)
	assert.Empty(t, doc.Records)
	assert.Empty(t, doc.Blocks)
	assert.Empty(t, doc.Ratings)
	assert.Empty(t, doc.Redemptions)

	assert.NotEmpty(t, doc.Tasks)
	assert.NotEmpty(t, doc.Objectives)
	assert.NotEmpty(t, doc.CategoryOrder)
	assert.Equal(t, []string{"default-exercise"}, doc.RecurringSchedule[7])
	assert.NotEmpty(t, doc.RatingItems)
	assert.NotEmpty(t, doc.ShopItems)
}

func TestPlanHourCapAndMerge(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, a.PlanHour("2026-03-10", 9, id))
	}
	require.NoError(t, a.SetRecurringHour(9, "r"))

	plan := a.EffectivePlan("2026-03-10")
	assert.ElementsMatch(t, []string{"b", "c", "d", "e", "r"}, plan.Hours[9],
		"cap applies at write time, merge unions on read")
}

func TestAddBlockMarksHours(t *testing.T) {
	a, _ := newTestApp(t, model.DefaultDocument())

	block, err := a.AddBlock("2026-03-10", "t", 540, 660)
	require.NoError(t, err)

	day := a.Doc().Records["2026-03-10"]
	require.NotNil(t, day)
	assert.Equal(t, []string{"t"}, day.Hours[9])
	assert.Equal(t, []string{"t"}, day.Hours[10])
	assert.Empty(t, day.Hours[11], "end boundary excluded")

	require.NoError(t, a.DeleteBlock("2026-03-10", block.ID))
	assert.Empty(t, a.Doc().Records["2026-03-10"].Hours)
	assert.Empty(t, a.Doc().Blocks["2026-03-10"])

	_, err = a.AddBlock("2026-03-10", "t", 700, 600)
	assert.Error(t, err)
}
