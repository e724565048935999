package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/testutil"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
	"github.com/thenoetrevino/paso-board/internal/types"
)

func TestDrag_ColumnDropReorders(t *testing.T) {
	m := setupTestModel(threeColumns, nil)

	m = press(t, m, "space")
	require.Equal(t, state.DragMode, m.UiState.Mode())
	require.True(t, m.Session.Drag().IsDragging())

	m = press(t, m, "l", "l")
	assert.Equal(t, []types.ID{"A", "B", "C"}, columnIDs(m), "columns move only on drop")
	require.NotNil(t, m.target)
	assert.Equal(t, types.ID("C"), m.target.ID)

	m = press(t, m, "enter")
	assert.Equal(t, []types.ID{"B", "C", "A"}, columnIDs(m))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.Session.Drag().IsDragging())
	assert.Equal(t, 2, m.UiState.SelectedColumn(), "cursor follows the dropped column")
}

func TestDrag_ColumnCancelLeavesOrder(t *testing.T) {
	m := setupTestModel(threeColumns, nil)
	before := m.Session.State().Revision()

	m = press(t, m, "space", "l", "esc")

	assert.Equal(t, []types.ID{"A", "B", "C"}, columnIDs(m))
	assert.Equal(t, before, m.Session.State().Revision())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.target)
}

func TestDrag_ColumnDropOnItselfIsNoop(t *testing.T) {
	m := setupTestModel(threeColumns, nil)
	before := m.Session.State().Revision()

	m = press(t, m, "space", "enter")

	assert.Equal(t, before, m.Session.State().Revision())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDrag_TaskOntoEmptyColumnReparents(t *testing.T) {
	m := setupTestModel(threeColumns, []models.Task{
		{ID: "t1", ColumnID: "A", Content: "one"},
		{ID: "t2", ColumnID: "A", Content: "two"},
	})
	m.UiState.SetSelectedTask(0)

	m = press(t, m, "space", "l")

	task, ok := m.Session.State().Task("t1")
	require.True(t, ok)
	assert.Equal(t, types.ID("B"), task.ColumnID, "over moves the task live")
	assert.Equal(t, 1, m.UiState.SelectedColumn(), "cursor follows the held task")
	assert.Equal(t, 0, m.UiState.SelectedTask())

	m = press(t, m, "enter")
	task, _ = m.Session.State().Task("t1")
	assert.Equal(t, types.ID("B"), task.ColumnID)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDrag_TaskOntoTaskTakesItsIndex(t *testing.T) {
	m := setupTestModel(threeColumns, []models.Task{
		{ID: "t1", ColumnID: "A", Content: "one"},
		{ID: "t2", ColumnID: "B", Content: "two"},
		{ID: "t3", ColumnID: "B", Content: "three"},
	})
	m.UiState.SetSelectedTask(0)

	m = press(t, m, "space", "l")

	tasks := m.Session.State().Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, types.ID("t1"), tasks[1].ID, "t1 takes t2's former index")
	assert.Equal(t, types.ID("B"), tasks[1].ColumnID)

	inB := m.Session.State().TasksInColumn("B")
	require.Len(t, inB, 3)
	assert.Equal(t, types.ID("t2"), inB[0].ID)
	assert.Equal(t, types.ID("t1"), inB[1].ID)
}

func TestDrag_TaskWithinColumn(t *testing.T) {
	m := setupTestModel(threeColumns, []models.Task{
		{ID: "t1", ColumnID: "A", Content: "one"},
		{ID: "t2", ColumnID: "A", Content: "two"},
		{ID: "t3", ColumnID: "A", Content: "three"},
	})
	m.UiState.SetSelectedTask(0)

	m = press(t, m, "space", "j", "j", "enter")

	inA := m.Session.State().TasksInColumn("A")
	require.Len(t, inA, 3)
	assert.Equal(t, []types.ID{"t2", "t3", "t1"}, testutil.TaskIDs(inA))
	assert.Equal(t, 2, m.UiState.SelectedTask())
}

func TestDrag_TaskCancelKeepsLiveMoves(t *testing.T) {
	m := setupTestModel(threeColumns, []models.Task{
		{ID: "t1", ColumnID: "A", Content: "one"},
	})
	m.UiState.SetSelectedTask(0)

	m = press(t, m, "space", "l", "esc")

	task, _ := m.Session.State().Task("t1")
	assert.Equal(t, types.ID("B"), task.ColumnID)
	assert.False(t, m.Session.Drag().IsDragging())
}

func TestDrag_PickUpOnEmptyBoardStaysNormal(t *testing.T) {
	m := setupTestModel(nil, nil)
	m = press(t, m, "space")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.Session.Drag().IsDragging())
}
