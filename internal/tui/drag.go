package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/paso-board/internal/gesture"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/tui/state"
)

// ============================================================================
// DRAG MODE
// ============================================================================
//
// The keyboard stands in for a pointer. Picking up sends Start for the
// selected element, each cursor move sends Over for whatever is now under the
// cursor, and enter or esc ends the gesture with Drop or Cancel.

// pickUp starts dragging the selected element.
func (m *Model) pickUp() {
	el, ok := m.selectedElement()
	if !ok {
		return
	}

	m.Session.Dispatch(gesture.Start(el))
	if !m.Session.Drag().IsDragging() {
		return
	}
	m.target = nil
	m.UiState.SetMode(state.DragMode)
}

// handleDragMode handles navigation and release while an element is held.
func (m Model) handleDragMode(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case "ctrl+c":
		m.cancelDrag()
		return m, tea.Quit
	case km.Drop:
		m.drop()
	case km.Cancel, km.PickUp:
		m.cancelDrag()
	case km.PrevColumn, "left":
		m.dragMove(-1, 0)
	case km.NextColumn, "right":
		m.dragMove(1, 0)
	case km.PrevTask, "up":
		m.dragMove(0, -1)
	case km.NextTask, "down":
		m.dragMove(0, 1)
	}
	return m, nil
}

// dragMove moves the cursor and reports the element now under it.
// A held task follows the cursor because Over relocates it live; a held
// column stays put until it is dropped.
func (m *Model) dragMove(dCol, dRow int) {
	active, ok := m.Session.Drag().Active()
	if !ok {
		m.UiState.SetMode(state.NormalMode)
		return
	}

	if active.Kind == models.KindColumn {
		// Columns are dropped onto columns; keep the cursor on headers.
		dRow = 0
		m.UiState.SetSelectedTask(state.HeaderRow)
	}
	m.moveCursor(dCol, dRow)

	over, ok := m.selectedElement()
	if !ok {
		m.target = nil
		return
	}
	if over.ID == active.ID {
		m.target = nil
		return
	}
	m.target = &over

	m.Session.Dispatch(gesture.Over(active, m.target))
	if active.Kind == models.KindTask {
		m.selectElement(active.ID)
	}
}

// drop releases the held element above the current target.
func (m *Model) drop() {
	active, ok := m.Session.Drag().Active()
	m.Session.Dispatch(gesture.Drop(active, m.target))
	m.target = nil
	m.UiState.SetMode(state.NormalMode)
	if ok {
		m.selectElement(active.ID)
	}
}

// cancelDrag abandons the gesture without a drop.
func (m *Model) cancelDrag() {
	active, ok := m.Session.Drag().Active()
	m.Session.Dispatch(gesture.Cancel())
	m.target = nil
	m.UiState.SetMode(state.NormalMode)
	if ok {
		m.selectElement(active.ID)
	}
}

// isTarget reports whether id is the current drop target.
func (m Model) isTarget(id string) bool {
	return m.target != nil && string(m.target.ID) == id
}
