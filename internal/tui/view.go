package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/paso-board/internal/gesture"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		view.Content = m.place(m.styles.HelpBox.Render(m.helpView()))
	case state.EditColumnMode, state.EditTaskMode:
		view.Content = m.place(m.editView())
	case state.ConfirmDeleteMode:
		view.Content = m.place(m.confirmView())
	default:
		view.Content = lipgloss.JoinVertical(lipgloss.Left,
			m.boardView(),
			m.statusBar(),
		)
	}
	return view
}

func (m Model) place(content string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) editView() string {
	prompt := "Rename column"
	if m.UiState.Mode() == state.EditTaskMode {
		prompt = "Edit task"
	}
	return m.styles.EditBox.Render(prompt + "\n\n" + m.input.View())
}

// ============================================================================
// BOARD
// ============================================================================

func (m Model) boardView() string {
	columns := m.columns()
	if len(columns) == 0 {
		hint := fmt.Sprintf("No columns yet. Press %s to create one, %s for help.",
			m.Config.KeyMappings.CreateColumn, m.Config.KeyMappings.ShowHelp)
		return m.styles.Subtle.Render(hint)
	}

	boxes := make([]string, 0, len(columns))
	for ci, column := range columns {
		boxes = append(boxes, m.columnView(ci, column))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) columnView(ci int, column models.Column) string {
	selectedCol := ci == m.UiState.SelectedColumn()
	selectedRow := m.UiState.SelectedTask()
	active, dragging := m.Session.Drag().Active()

	title := m.styles.Title
	if selectedCol && selectedRow == state.HeaderRow {
		title = m.styles.SelectedTitle
	}

	parts := []string{title.Render(column.Title)}

	tasks := m.tasksAt(ci)
	if len(tasks) == 0 {
		parts = append(parts, m.styles.Subtle.Render("no tasks"))
	}
	for ti, task := range tasks {
		style := m.styles.Task
		switch {
		case dragging && active.ID == task.ID:
			style = m.styles.HeldTask
		case m.isTarget(string(task.ID)):
			style = m.styles.TargetTask
		case selectedCol && ti == selectedRow:
			style = m.styles.SelectedTask
		}
		parts = append(parts, style.Render(task.Content))
	}

	box := m.styles.Column
	switch {
	case m.isTarget(string(column.ID)):
		box = m.styles.TargetColumn
	case selectedCol:
		box = m.styles.SelectedColumn
	}
	return box.Render(strings.Join(parts, "\n"))
}

// ============================================================================
// STATUS BAR
// ============================================================================

func (m Model) statusBar() string {
	mode := m.styles.Mode.Render(m.UiState.Mode().String())

	drag := m.Session.Drag()
	if !drag.IsDragging() {
		rev := m.Session.State().Revision()
		info := fmt.Sprintf("%d columns, %d tasks (rev %d/%d)",
			len(m.columns()), len(m.Session.State().Tasks()), rev.Columns, rev.Tasks)
		return lipgloss.JoinHorizontal(lipgloss.Center, mode, m.styles.StatusBar.Render(info))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		mode,
		m.styles.Floating.Render(m.floatingLabel(drag)),
		m.styles.StatusBar.Render(" → "+m.targetLabel()),
	)
}

// floatingLabel describes the held element from the copy kept by the drag.
func (m Model) floatingLabel(drag gesture.Drag) string {
	if column, ok := drag.Column(); ok {
		return "▤ " + column.Title
	}
	if task, ok := drag.Task(); ok {
		return "▪ " + task.Content
	}
	return ""
}

func (m Model) targetLabel() string {
	if m.target == nil {
		return "no target"
	}
	current := m.Session.State()
	switch m.target.Kind {
	case models.KindColumn:
		if column, ok := current.Column(m.target.ID); ok {
			return "column " + column.Title
		}
	case models.KindTask:
		if task, ok := current.Task(m.target.ID); ok {
			return "task " + task.Content
		}
	}
	return "no target"
}
