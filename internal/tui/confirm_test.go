package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
	"github.com/thenoetrevino/paso-board/internal/types"
)

func columnWithTasks() Model {
	return setupTestModel(threeColumns, []models.Task{
		{ID: "t1", ColumnID: "A", Content: "one"},
		{ID: "t2", ColumnID: "B", Content: "two"},
	})
}

func TestConfirmDelete_OpensForColumnWithTasks(t *testing.T) {
	m := press(t, columnWithTasks(), "X")

	require.Equal(t, state.ConfirmDeleteMode, m.UiState.Mode())
	require.NotNil(t, m.deleting)
	assert.Equal(t, types.ID("A"), m.deleting.columnID)
	assert.Equal(t, 1, m.deleting.tasks)
	assert.Len(t, m.Session.State().Columns(), 3, "nothing is deleted before confirming")
	assert.Contains(t, m.View().Content, "holds 1 task(s)")
}

func TestConfirmDelete_AcceptCascades(t *testing.T) {
	m := press(t, columnWithTasks(), "X")
	require.NotNil(t, m.deleting)

	*m.deleting.confirm = true
	m.finishDeleteConfirm()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.deleting)
	assert.Equal(t, []types.ID{"B", "C"}, columnIDs(m))
	require.Len(t, m.Session.State().Tasks(), 1)
	assert.Equal(t, types.ID("t2"), m.Session.State().Tasks()[0].ID)
}

func TestConfirmDelete_DeclineKeepsColumn(t *testing.T) {
	m := press(t, columnWithTasks(), "X")
	require.NotNil(t, m.deleting)

	m.finishDeleteConfirm()

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.Session.State().Columns(), 3)
}

func TestConfirmDelete_EscKeepsColumn(t *testing.T) {
	m := press(t, columnWithTasks(), "X", "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.deleting)
	assert.Len(t, m.Session.State().Columns(), 3)
	assert.Len(t, m.Session.State().Tasks(), 2)
}
