package board

import (
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// ============================================================================
// COLUMN OPERATIONS
// ============================================================================

// AddColumn appends a new column with a generated ID and placeholder title.
func (s State) AddColumn(gen Generator) (State, models.Column) {
	column := models.Column{
		ID:    gen.NewID(),
		Title: gen.ColumnTitle(),
	}

	columns := make([]models.Column, 0, len(s.columns)+1)
	columns = append(columns, s.columns...)
	columns = append(columns, column)
	return s.WithColumns(columns), column
}

// RemoveColumn deletes a column and every task it owns.
// Returns s unchanged if the column does not exist.
func (s State) RemoveColumn(id types.ID) State {
	if _, ok := s.Column(id); !ok {
		return s
	}

	columns := make([]models.Column, 0, len(s.columns)-1)
	for _, c := range s.columns {
		if c.ID != id {
			columns = append(columns, c)
		}
	}
	next := s.WithColumns(columns)

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ColumnID != id {
			tasks = append(tasks, t)
		}
	}
	return next.WithTasks(tasks)
}

// RenameColumn replaces a column's title.
// Returns s unchanged if the column does not exist.
func (s State) RenameColumn(id types.ID, title string) State {
	if _, ok := s.Column(id); !ok {
		return s
	}

	columns := make([]models.Column, len(s.columns))
	for i, c := range s.columns {
		if c.ID == id {
			c.Title = title
		}
		columns[i] = c
	}
	return s.WithColumns(columns)
}

// ============================================================================
// TASK OPERATIONS
// ============================================================================

// AddTask appends a new task bound to columnID.
// The column is not checked; callers only pass IDs they received from the board.
func (s State) AddTask(gen Generator, columnID types.ID) (State, models.Task) {
	task := models.Task{
		ID:       gen.NewID(),
		ColumnID: columnID,
		Content:  gen.TaskContent(),
	}

	tasks := make([]models.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, s.tasks...)
	tasks = append(tasks, task)
	return s.WithTasks(tasks), task
}

// RemoveTask deletes a single task.
// Returns s unchanged if the task does not exist.
func (s State) RemoveTask(id types.ID) State {
	if _, ok := s.Task(id); !ok {
		return s
	}

	tasks := make([]models.Task, 0, len(s.tasks)-1)
	for _, t := range s.tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	return s.WithTasks(tasks)
}

// EditTask replaces a task's content.
// Returns s unchanged if the task does not exist.
func (s State) EditTask(id types.ID, content string) State {
	if _, ok := s.Task(id); !ok {
		return s
	}

	tasks := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID == id {
			t.Content = content
		}
		tasks[i] = t
	}
	return s.WithTasks(tasks)
}
