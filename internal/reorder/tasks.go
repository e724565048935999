package reorder

import (
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Target is the element currently under the pointer.
type Target struct {
	ID   types.ID
	Kind models.ElementKind
}

// TaskIndex returns the position of the task with the given ID, or -1.
func TaskIndex(tasks []models.Task, id types.ID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// MoveTask reparents and relocates the active task relative to over.
//
// Over a task, the active task takes the target's column and moves to the
// target's index. Over a column, the active task takes that column and keeps
// its index; the slice is still replaced so observers see the membership
// change. Columns are not looked up: the caller resolves column targets.
//
// The boolean is false when nothing happened, in which case tasks is
// returned unchanged.
func MoveTask(tasks []models.Task, activeID types.ID, over Target) ([]models.Task, bool) {
	if over.ID.IsZero() || activeID == over.ID {
		return tasks, false
	}

	from := TaskIndex(tasks, activeID)
	if from < 0 {
		return tasks, false
	}

	switch over.Kind {
	case models.KindTask:
		to := TaskIndex(tasks, over.ID)
		if to < 0 {
			return tasks, false
		}
		out := Relocate(tasks, from, to)
		// After the move the active task sits at index to.
		out[to].ColumnID = tasks[to].ColumnID
		return out, true

	case models.KindColumn:
		out := Relocate(tasks, from, from)
		out[from].ColumnID = over.ID
		return out, true
	}

	return tasks, false
}
