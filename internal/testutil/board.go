// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Columns builds columns whose IDs and titles are both the given names.
func Columns(names ...string) []models.Column {
	out := make([]models.Column, len(names))
	for i, name := range names {
		out[i] = models.Column{ID: types.ID(name), Title: name}
	}
	return out
}

// Tasks builds tasks from "id:column" pairs. Content equals the ID.
func Tasks(t *testing.T, pairs ...string) []models.Task {
	t.Helper()

	out := make([]models.Task, 0, len(pairs))
	for _, pair := range pairs {
		id, column, ok := strings.Cut(pair, ":")
		if !ok || id == "" || column == "" {
			t.Fatalf("task fixture %q is not id:column", pair)
		}
		out = append(out, models.Task{ID: types.ID(id), ColumnID: types.ID(column), Content: id})
	}
	return out
}

// Board builds a State from column names and "id:column" task pairs.
func Board(t *testing.T, columns []string, tasks ...string) board.State {
	t.Helper()
	return board.New(Columns(columns...), Tasks(t, tasks...))
}

// ColumnIDs lists column IDs in order.
func ColumnIDs(columns []models.Column) []types.ID {
	out := make([]types.ID, len(columns))
	for i, c := range columns {
		out[i] = c.ID
	}
	return out
}

// TaskIDs lists task IDs in order.
func TaskIDs(tasks []models.Task) []types.ID {
	out := make([]types.ID, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}
