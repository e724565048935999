package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/paso-board/internal/types"
)

// Invariant violations reported by Check
var (
	ErrDanglingTask = errors.New("task references a missing column")
	ErrDuplicateID  = errors.New("duplicate identifier")
)

// Check verifies the board invariants: unique IDs within each collection and
// no task pointing at a deleted column. It is meant for debug builds and
// tests; board operations never produce a State that fails it.
func (s State) Check() error {
	var errs []error

	columns := make(map[types.ID]struct{}, len(s.columns))
	for _, c := range s.columns {
		if _, dup := columns[c.ID]; dup {
			errs = append(errs, fmt.Errorf("column %s: %w", c.ID, ErrDuplicateID))
		}
		columns[c.ID] = struct{}{}
	}

	tasks := make(map[types.ID]struct{}, len(s.tasks))
	for _, t := range s.tasks {
		if _, dup := tasks[t.ID]; dup {
			errs = append(errs, fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID))
		}
		tasks[t.ID] = struct{}{}

		if _, ok := columns[t.ColumnID]; !ok {
			errs = append(errs, fmt.Errorf("task %s -> column %s: %w", t.ID, t.ColumnID, ErrDanglingTask))
		}
	}

	return errors.Join(errs...)
}
