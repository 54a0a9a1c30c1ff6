package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/dayflow/internal/app"
	"github.com/ramanasai/dayflow/internal/model"
)

type stubStore struct{ doc *model.Document }

func (s *stubStore) Load() (*model.Document, error) { return s.doc, nil }
func (s *stubStore) Save(doc *model.Document) error { s.doc = doc; return nil }
func (s *stubStore) Close() error                   { return nil }

func testApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.Open(&stubStore{doc: model.DefaultDocument()})
	require.NoError(t, err)
	return a
}

func TestResolveEmptyRefPassesThrough(t *testing.T) {
	a := testApp(t)
	assert.Equal(t, "", resolveObjective(a, ""))
	assert.Equal(t, "", resolveTask(a, ""))
	assert.Equal(t, "", resolveTodo(a, ""))
	assert.Equal(t, "", resolveShopItem(a, ""))
}

func TestResolveObjectiveByNameAndPrefix(t *testing.T) {
	a := testApp(t)
	assert.Equal(t, "health", resolveObjective(a, "Health"))
	assert.Equal(t, "health", resolveObjective(a, "hea"))
	assert.Equal(t, "missing", resolveObjective(a, "missing"))
}

func TestQuickAddWithoutObjectiveStaysUncategorized(t *testing.T) {
	a := testApp(t)

	todo, err := a.AddTodo("call the bank", "", resolveObjective(a, ""), "", nil)
	require.NoError(t, err)
	assert.Empty(t, todo.ObjectiveID)

	// the auto-created template of a targeted quick-add lands in the
	// uncategorized bucket, not the first objective
	targets := &model.Targets{Mode: model.ModeDuration, Value: 1, Frequency: 1}
	withGoal, err := a.AddTodo("practice guitar", "", resolveObjective(a, ""), "", targets)
	require.NoError(t, err)
	tpl, ok := a.Doc().TaskByID(withGoal.TemplateID)
	require.True(t, ok)
	assert.Equal(t, model.UncategorizedID, tpl.Category)
}
