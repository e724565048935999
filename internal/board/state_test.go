package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestGen() *SequenceGenerator {
	return NewSequenceGenerator("", "")
}

func taskIDs(tasks []models.Task) []types.ID {
	ids := make([]types.ID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestAddColumn_AppendsWithPlaceholder(t *testing.T) {
	t.Parallel()
	gen := newTestGen()

	s, first := State{}.AddColumn(gen)
	s, second := s.AddColumn(gen)

	require.Len(t, s.Columns(), 2)
	assert.Equal(t, first, s.Columns()[0])
	assert.Equal(t, second, s.Columns()[1])
	assert.Equal(t, "Column 1", first.Title)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, Revision{Columns: 2}, s.Revision())
}

func TestAddColumn_DoesNotTouchPreviousSnapshot(t *testing.T) {
	t.Parallel()
	gen := newTestGen()

	before, _ := State{}.AddColumn(gen)
	after, _ := before.AddColumn(gen)

	assert.Len(t, before.Columns(), 1)
	assert.Len(t, after.Columns(), 2)
	assert.False(t, before.Same(after))
}

func TestSame_ComparesRevisionsOnly(t *testing.T) {
	t.Parallel()
	base, col := State{}.AddColumn(newTestGen())

	tests := []struct {
		name  string
		left  State
		right State
		want  bool
	}{
		{"no-op along one history", base, base.RenameColumn("missing", "x"), true},
		{"edit along one history", base, base.RenameColumn(col.ID, "Renamed"), false},
		{"sibling branches", base.RenameColumn(col.ID, "Left"), base.RenameColumn(col.ID, "Right"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.left.Same(tt.right))
		})
	}
}

func TestRandomGenerator_Placeholders(t *testing.T) {
	t.Parallel()
	gen := NewRandomGenerator("", "Card")

	assert.True(t, strings.HasPrefix(gen.ColumnTitle(), "Column "))
	assert.True(t, strings.HasPrefix(gen.TaskContent(), "Card "))
	assert.NotEqual(t, gen.NewID(), gen.NewID())
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()
	gen := newTestGen()
	s, col := State{}.AddColumn(gen)

	renamed := s.RenameColumn(col.ID, "Doing")

	got, ok := renamed.Column(col.ID)
	require.True(t, ok)
	assert.Equal(t, "Doing", got.Title)
	assert.Equal(t, "Column 1", s.Columns()[0].Title, "old snapshot keeps old title")
}

func TestRemoveColumn_CascadesTasks(t *testing.T) {
	t.Parallel()
	gen := newTestGen()

	s, a := State{}.AddColumn(gen)
	s, b := s.AddColumn(gen)
	s, t1 := s.AddTask(gen, a.ID)
	s, t2 := s.AddTask(gen, a.ID)
	s, t3 := s.AddTask(gen, b.ID)
	_ = t1
	_ = t2

	s = s.RemoveColumn(a.ID)

	assert.Equal(t, []types.ID{t3.ID}, taskIDs(s.Tasks()))
	require.Len(t, s.Columns(), 1)
	assert.Equal(t, b.ID, s.Columns()[0].ID)
	assert.NoError(t, s.Check())
}

// TestRemoveColumn_NoDanglingReferences runs interleaved adds and removes and
// checks the board invariants after every step.
func TestRemoveColumn_NoDanglingReferences(t *testing.T) {
	t.Parallel()
	gen := newTestGen()

	var s State
	var columns []models.Column
	for i := 0; i < 6; i++ {
		var c models.Column
		s, c = s.AddColumn(gen)
		columns = append(columns, c)
		for j := 0; j <= i%3; j++ {
			s, _ = s.AddTask(gen, c.ID)
		}
	}

	for i := len(columns) - 1; i >= 0; i -= 2 {
		s = s.RemoveColumn(columns[i].ID)
		require.NoError(t, s.Check())
		assert.Empty(t, s.TasksInColumn(columns[i].ID))
	}
}

func TestMissingIDsAreNoOps(t *testing.T) {
	t.Parallel()
	gen := newTestGen()
	s, col := State{}.AddColumn(gen)
	s, _ = s.AddTask(gen, col.ID)

	tests := []struct {
		name string
		op   func(State) State
	}{
		{"remove column", func(s State) State { return s.RemoveColumn("missing") }},
		{"rename column", func(s State) State { return s.RenameColumn("missing", "x") }},
		{"remove task", func(s State) State { return s.RemoveTask("missing") }},
		{"edit task", func(s State) State { return s.EditTask("missing", "x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(s)
			assert.True(t, got.Same(s))
			assert.Equal(t, s.Columns(), got.Columns())
			assert.Equal(t, s.Tasks(), got.Tasks())
		})
	}
}

func TestTaskCRUD(t *testing.T) {
	t.Parallel()
	gen := newTestGen()
	s, col := State{}.AddColumn(gen)
	s, task := s.AddTask(gen, col.ID)

	assert.Equal(t, col.ID, task.ColumnID)
	assert.Equal(t, "Task 1", task.Content)

	s = s.EditTask(task.ID, "write tests")
	got, ok := s.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "write tests", got.Content)

	s = s.RemoveTask(task.ID)
	_, ok = s.Task(task.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Tasks())
}

func TestKind(t *testing.T) {
	t.Parallel()
	gen := newTestGen()
	s, col := State{}.AddColumn(gen)
	s, task := s.AddTask(gen, col.ID)

	assert.Equal(t, models.KindColumn, s.Kind(col.ID))
	assert.Equal(t, models.KindTask, s.Kind(task.ID))
	assert.Equal(t, models.KindNone, s.Kind("missing"))
	assert.Equal(t, models.KindNone, s.Kind(""))
}

func TestTasksInColumn_KeepsBoardOrder(t *testing.T) {
	t.Parallel()

	s := New(
		[]models.Column{{ID: "a"}, {ID: "b"}},
		[]models.Task{
			{ID: "t1", ColumnID: "a"},
			{ID: "t2", ColumnID: "b"},
			{ID: "t3", ColumnID: "a"},
		},
	)

	assert.Equal(t, []types.ID{"t1", "t3"}, taskIDs(s.TasksInColumn("a")))
	assert.Equal(t, []types.ID{"t2"}, taskIDs(s.TasksInColumn("b")))
}

func TestCheck_ReportsViolations(t *testing.T) {
	t.Parallel()

	s := New(
		[]models.Column{{ID: "a"}, {ID: "a"}},
		[]models.Task{{ID: "t1", ColumnID: "gone"}},
	)

	err := s.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.True(t, errors.Is(err, ErrDanglingTask))
}
