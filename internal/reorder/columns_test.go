package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

func columnIDs(columns []models.Column) []types.ID {
	ids := make([]types.ID, len(columns))
	for i, c := range columns {
		ids[i] = c.ID
	}
	return ids
}

func abcColumns() []models.Column {
	return []models.Column{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	}
}

// TestMoveColumn_FirstOntoLast drags A onto C: [A,B,C] becomes [B,C,A].
func TestMoveColumn_FirstOntoLast(t *testing.T) {
	t.Parallel()

	got, changed := MoveColumn(abcColumns(), "a", "c")

	require.True(t, changed)
	assert.Equal(t, []types.ID{"b", "c", "a"}, columnIDs(got))
}

func TestMoveColumn_LastOntoFirst(t *testing.T) {
	t.Parallel()

	got, changed := MoveColumn(abcColumns(), "c", "a")

	require.True(t, changed)
	assert.Equal(t, []types.ID{"c", "a", "b"}, columnIDs(got))
}

func TestMoveColumn_NoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		active, target types.ID
	}{
		{"onto itself", "b", "b"},
		{"unknown active", "zz", "a"},
		{"unknown target", "a", "zz"},
		{"empty target", "a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			columns := abcColumns()
			got, changed := MoveColumn(columns, tt.active, tt.target)
			assert.False(t, changed)
			assert.Equal(t, columns, got)
		})
	}
}

// TestMoveColumn_IsPermutation checks every (from, to) pair keeps the same
// multiset of columns.
func TestMoveColumn_IsPermutation(t *testing.T) {
	t.Parallel()

	columns := []models.Column{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}

	for _, from := range columns {
		for _, to := range columns {
			got, _ := MoveColumn(columns, from.ID, to.ID)
			assert.ElementsMatch(t, columns, got, "move %s onto %s", from.ID, to.ID)
			assert.Len(t, got, len(columns))
		}
	}
}
