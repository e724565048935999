package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/gesture"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/session"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Model represents the application state for the TUI.
// It is the presentation surface over a session: key presses become board
// operations and gesture events, and every frame is drawn from the
// session's current snapshot.
type Model struct {
	Session *session.Session
	Config  *config.Config
	UiState *state.UIState

	// Inline editor used by EditColumnMode and EditTaskMode
	input  textinput.Model
	editID types.ID

	// target is the element under the cursor while dragging
	target *gesture.Element

	// deleting is the open column delete confirmation
	deleting *deleteConfirm

	// help caches the rendered help overlay for the current width
	help      string
	helpWidth int

	styles Styles
}

// InitialModel creates the TUI model over an existing session
func InitialModel(sess *session.Session, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		Session: sess,
		Config:  cfg,
		UiState: state.NewUIState(),
		input:   ti,
		styles:  NewStyles(cfg.ColorScheme),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// ============================================================================
// SELECTION ACCESSORS
// ============================================================================

func (m Model) columns() []models.Column {
	return m.Session.State().Columns()
}

func (m Model) tasksAt(col int) []models.Task {
	columns := m.columns()
	if col < 0 || col >= len(columns) {
		return nil
	}
	return m.Session.State().TasksInColumn(columns[col].ID)
}

// selectedColumn returns the column under the cursor.
func (m Model) selectedColumn() (models.Column, bool) {
	columns := m.columns()
	col := m.UiState.SelectedColumn()
	if col < 0 || col >= len(columns) {
		return models.Column{}, false
	}
	return columns[col], true
}

// selectedTask returns the task under the cursor, if a task row is selected.
func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.tasksAt(m.UiState.SelectedColumn())
	row := m.UiState.SelectedTask()
	if row < 0 || row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[row], true
}

// selectedElement returns the element under the cursor: a task when a task
// row is selected, otherwise the column.
func (m Model) selectedElement() (gesture.Element, bool) {
	if task, ok := m.selectedTask(); ok {
		return gesture.Task(task.ID), true
	}
	if column, ok := m.selectedColumn(); ok {
		return gesture.Column(column.ID), true
	}
	return gesture.Element{}, false
}

// clampSelection keeps the cursor inside the board after a change.
func (m Model) clampSelection() {
	m.UiState.Clamp(len(m.columns()), func(col int) int { return len(m.tasksAt(col)) })
}

// selectElement moves the cursor onto the element with the given ID.
func (m Model) selectElement(id types.ID) {
	for ci, column := range m.columns() {
		if column.ID == id {
			m.UiState.SetSelectedColumn(ci)
			m.UiState.SetSelectedTask(state.HeaderRow)
			return
		}
		for ti, task := range m.tasksAt(ci) {
			if task.ID == id {
				m.UiState.SetSelectedColumn(ci)
				m.UiState.SetSelectedTask(ti)
				return
			}
		}
	}
}
