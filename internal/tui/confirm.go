package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// deleteConfirm holds the open confirmation dialog for a column delete.
// Deleting a column also deletes its tasks, so a column with tasks asks first.
type deleteConfirm struct {
	form     *huh.Form
	confirm  *bool
	columnID types.ID
	title    string
	tasks    int
}

func newDeleteConfirmForm(confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title("Delete this column?").
			Affirmative("Delete").
			Negative("Keep").
			Value(confirm),
	))
}

// deleteSelectedColumn removes an empty column at once and asks before
// removing one that holds tasks.
func (m *Model) deleteSelectedColumn() tea.Cmd {
	column, ok := m.selectedColumn()
	if !ok {
		return nil
	}

	tasks := len(m.Session.State().TasksInColumn(column.ID))
	if tasks == 0 {
		m.Session.RemoveColumn(column.ID)
		m.clampSelection()
		return nil
	}

	confirm := new(bool)
	m.deleting = &deleteConfirm{
		form:     newDeleteConfirmForm(confirm),
		confirm:  confirm,
		columnID: column.ID,
		title:    column.Title,
		tasks:    tasks,
	}
	m.UiState.SetMode(state.ConfirmDeleteMode)
	return m.deleting.form.Init()
}

// handleConfirmMode forwards every message to the form. Esc keeps the column.
func (m Model) handleConfirmMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.deleting == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		m.closeDeleteConfirm()
		return m, nil
	}

	model, cmd := m.deleting.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.deleting.form = form
	}

	switch m.deleting.form.State {
	case huh.StateCompleted:
		m.finishDeleteConfirm()
		return m, nil
	case huh.StateAborted:
		m.closeDeleteConfirm()
		return m, nil
	}
	return m, cmd
}

// finishDeleteConfirm applies the answer and closes the dialog.
func (m *Model) finishDeleteConfirm() {
	if m.deleting != nil && *m.deleting.confirm {
		m.Session.RemoveColumn(m.deleting.columnID)
		m.clampSelection()
	}
	m.closeDeleteConfirm()
}

func (m *Model) closeDeleteConfirm() {
	m.deleting = nil
	m.UiState.SetMode(state.NormalMode)
}

func (m Model) confirmView() string {
	if m.deleting == nil {
		return ""
	}
	warning := fmt.Sprintf("Column %q holds %d task(s). They will be deleted too.",
		m.deleting.title, m.deleting.tasks)
	return m.styles.ConfirmBox.Render(warning + "\n\n" + m.deleting.form.View())
}
