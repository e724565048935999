package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
)

// ConfigChangedMsg carries a config reloaded from disk
type ConfigChangedMsg struct {
	Config *config.Config
}

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, nil

	case ConfigChangedMsg:
		if msg.Config != nil {
			m.Config = msg.Config
			m.styles = NewStyles(msg.Config.ColorScheme)
			m.help = ""
		}
		return m, nil
	}

	if m.UiState.Mode() == state.ConfirmDeleteMode {
		return m.handleConfirmMode(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.EditColumnMode, state.EditTaskMode:
			return m.handleEditMode(msg)
		case state.HelpMode:
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		case state.DragMode:
			return m.handleDragMode(msg.String())
		default:
			return m.handleNormalMode(msg.String())
		}
	}

	if m.isEditing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) isEditing() bool {
	mode := m.UiState.Mode()
	return mode == state.EditColumnMode || mode == state.EditTaskMode
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.helpView()
		m.UiState.SetMode(state.HelpMode)
	case km.CreateColumn:
		column := m.Session.AddColumn()
		m.selectElement(column.ID)
	case km.AddTask:
		if column, ok := m.selectedColumn(); ok {
			task := m.Session.AddTask(column.ID)
			m.selectElement(task.ID)
		}
	case km.DeleteColumn:
		cmd := m.deleteSelectedColumn()
		return m, cmd
	case km.DeleteTask:
		if task, ok := m.selectedTask(); ok {
			m.Session.RemoveTask(task.ID)
			m.clampSelection()
		}
	case km.RenameColumn:
		return m.startColumnEdit()
	case km.EditTask:
		return m.startTaskEdit()
	case km.PickUp:
		m.pickUp()
	case km.PrevColumn, "left":
		m.moveCursor(-1, 0)
	case km.NextColumn, "right":
		m.moveCursor(1, 0)
	case km.PrevTask, "up":
		m.moveCursor(0, -1)
	case km.NextTask, "down":
		m.moveCursor(0, 1)
	}
	return m, nil
}

// moveCursor shifts the selection by whole columns or rows and clamps it.
// Moving to another column keeps the row where possible.
func (m Model) moveCursor(dCol, dRow int) {
	if len(m.columns()) == 0 {
		return
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + dCol)
	m.UiState.SetSelectedTask(m.UiState.SelectedTask() + dRow)
	m.clampSelection()
}

// ============================================================================
// EDIT MODE HANDLERS
// ============================================================================

func (m Model) startColumnEdit() (tea.Model, tea.Cmd) {
	column, ok := m.selectedColumn()
	if !ok {
		return m, nil
	}
	m.editID = column.ID
	m.input.SetValue(column.Title)
	m.input.CursorEnd()
	m.UiState.SetMode(state.EditColumnMode)
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) startTaskEdit() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	m.editID = task.ID
	m.input.SetValue(task.Content)
	m.input.CursorEnd()
	m.UiState.SetMode(state.EditTaskMode)
	cmd := m.input.Focus()
	return m, cmd
}

// handleEditMode commits on enter, aborts on esc and otherwise forwards the
// key to the text input.
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		if m.UiState.Mode() == state.EditColumnMode {
			m.Session.RenameColumn(m.editID, value)
		} else {
			m.Session.EditTask(m.editID, value)
		}
		m.stopEdit()
		return m, nil
	case "esc":
		m.stopEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEdit() {
	m.input.Blur()
	m.input.SetValue("")
	m.editID = ""
	m.UiState.SetMode(state.NormalMode)
}
