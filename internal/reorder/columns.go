package reorder

import (
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// ColumnIndex returns the position of the column with the given ID, or -1.
func ColumnIndex(columns []models.Column, id types.ID) int {
	for i := range columns {
		if columns[i].ID == id {
			return i
		}
	}
	return -1
}

// MoveColumn relocates the active column to the index currently held by the
// over column. The boolean reports whether a new slice was produced; when it
// is false the input slice is returned as is.
func MoveColumn(columns []models.Column, activeID, overID types.ID) ([]models.Column, bool) {
	if activeID == overID {
		return columns, false
	}

	from := ColumnIndex(columns, activeID)
	to := ColumnIndex(columns, overID)
	if from < 0 || to < 0 || from == to {
		return columns, false
	}

	return Relocate(columns, from, to), true
}
