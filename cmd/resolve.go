package cmd

import (
	"strings"

	"github.com/ramanasai/dayflow/internal/app"
)

// The resolve helpers accept an id, an id prefix, or a (case-insensitive)
// name and return the full id. Empty and unresolvable input is returned as
// given so the mutation applies its own default or not-found handling.

func resolveObjective(a *app.App, ref string) string {
	if ref == "" {
		return ref
	}
	for _, o := range a.Doc().Objectives {
		if o.ID == ref || strings.EqualFold(o.Title, ref) {
			return o.ID
		}
	}
	for _, o := range a.Doc().Objectives {
		if strings.HasPrefix(o.ID, ref) {
			return o.ID
		}
	}
	return ref
}

func resolveTask(a *app.App, ref string) string {
	if ref == "" {
		return ref
	}
	for _, t := range a.Doc().Tasks {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t.ID
		}
	}
	for _, t := range a.Doc().Tasks {
		if strings.HasPrefix(t.ID, ref) {
			return t.ID
		}
	}
	return ref
}

func resolveTodo(a *app.App, ref string) string {
	if ref == "" {
		return ref
	}
	for _, todo := range a.Doc().Todos {
		if todo.ID == ref || strings.EqualFold(todo.Title, ref) {
			return todo.ID
		}
	}
	for _, todo := range a.Doc().Todos {
		if strings.HasPrefix(todo.ID, ref) {
			return todo.ID
		}
	}
	return ref
}

func resolveShopItem(a *app.App, ref string) string {
	if ref == "" {
		return ref
	}
	for _, item := range a.Doc().ShopItems {
		if item.ID == ref || strings.EqualFold(item.Name, ref) {
			return item.ID
		}
	}
	for _, item := range a.Doc().ShopItems {
		if strings.HasPrefix(item.ID, ref) {
			return item.ID
		}
	}
	return ref
}
