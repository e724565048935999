// Package board holds the immutable snapshot of a kanban board.
//
// A State is never modified after it is built. Every operation returns a new
// State whose changed collection is a fresh slice and whose revision counter
// for that collection has been bumped, so observers can detect change by
// comparing revisions.
package board

import (
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Revision counts wholesale replacements of each collection.
type Revision struct {
	Columns uint64 `json:"columns"`
	Tasks   uint64 `json:"tasks"`
}

// State is an immutable board snapshot.
// The zero value is an empty board.
type State struct {
	columns []models.Column
	tasks   []models.Task
	rev     Revision
}

// New builds a State from existing collections. The slices are copied.
func New(columns []models.Column, tasks []models.Task) State {
	return State{
		columns: append([]models.Column(nil), columns...),
		tasks:   append([]models.Task(nil), tasks...),
	}
}

// Columns returns the ordered column list.
// The slice is shared with the snapshot - callers must not modify it.
func (s State) Columns() []models.Column {
	return s.columns
}

// Tasks returns the ordered task list across all columns.
// The slice is shared with the snapshot - callers must not modify it.
func (s State) Tasks() []models.Task {
	return s.tasks
}

// Revision returns the snapshot's revision counters.
func (s State) Revision() Revision {
	return s.rev
}

// Same reports whether both snapshots carry the same revision. It is only
// meaningful for snapshots along one history: two edits branched from a
// common snapshot share a revision even when their contents differ.
func (s State) Same(other State) bool {
	return s.rev == other.rev
}

// Column looks up a column by ID.
func (s State) Column(id types.ID) (models.Column, bool) {
	for _, c := range s.columns {
		if c.ID == id {
			return c, true
		}
	}
	return models.Column{}, false
}

// Task looks up a task by ID.
func (s State) Task(id types.ID) (models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Kind resolves which collection an ID belongs to.
// Returns KindNone when the ID is not live.
func (s State) Kind(id types.ID) models.ElementKind {
	if id.IsZero() {
		return models.KindNone
	}
	if _, ok := s.Column(id); ok {
		return models.KindColumn
	}
	if _, ok := s.Task(id); ok {
		return models.KindTask
	}
	return models.KindNone
}

// TasksInColumn returns the tasks owned by a column in board order.
// This is the filtered view a renderer draws under each column.
func (s State) TasksInColumn(columnID types.ID) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

// WithColumns replaces the column list wholesale.
func (s State) WithColumns(columns []models.Column) State {
	s.columns = columns
	s.rev.Columns++
	return s
}

// WithTasks replaces the task list wholesale.
func (s State) WithTasks(tasks []models.Task) State {
	s.tasks = tasks
	s.rev.Tasks++
	return s
}
