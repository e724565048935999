package gesture

import (
	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/reorder"
)

// Reduce applies one gesture event.
//
// When the event changes nothing the returned State is the input State, so
// callers can use State.Same to skip re-rendering. Over and Drop events carry
// their own active element; a Drag is not required for them to apply.
func Reduce(state board.State, drag Drag, ev Event) (board.State, Drag) {
	switch ev.Type {
	case EventStart:
		return state, pickUp(state, ev.Active)

	case EventOver:
		active := activeFor(ev, drag)
		next := applyOver(state, active, ev.Over)
		if drag.IsDragging() && !next.Same(state) {
			drag = pickUp(next, drag.active)
		}
		return next, drag

	case EventDrop:
		// The held element is released no matter where the drop lands.
		return applyDrop(state, activeFor(ev, drag), ev.Over), Drag{}

	case EventCancel:
		return state, Drag{}
	}

	return state, drag
}

// activeFor prefers the event's own active element and falls back to the
// element held since Start.
func activeFor(ev Event, drag Drag) Element {
	if !ev.Active.ID.IsZero() {
		return ev.Active
	}
	return drag.active
}

// resolve fills in the kind of an element from the board when the caller
// left it out, and reports whether the element is live with that kind.
func resolve(state board.State, el Element) (Element, bool) {
	kind := state.Kind(el.ID)
	if kind == models.KindNone {
		return el, false
	}
	if el.Kind == models.KindNone {
		el.Kind = kind
	}
	return el, el.Kind == kind
}

func pickUp(state board.State, active Element) Drag {
	active, ok := resolve(state, active)
	if !ok {
		return Drag{}
	}

	drag := Drag{active: active}
	switch active.Kind {
	case models.KindColumn:
		drag.column, _ = state.Column(active.ID)
	case models.KindTask:
		drag.task, _ = state.Task(active.ID)
	}
	return drag
}

// applyOver reparents and relocates a dragged task. Dragging a column over
// anything does nothing here; columns only move on drop.
func applyOver(state board.State, active Element, over *Element) board.State {
	if over == nil || active.ID == over.ID {
		return state
	}

	active, ok := resolve(state, active)
	if !ok || active.Kind != models.KindTask {
		return state
	}

	target, ok := resolve(state, *over)
	if !ok {
		return state
	}

	tasks, changed := reorder.MoveTask(state.Tasks(), active.ID, reorder.Target{ID: target.ID, Kind: target.Kind})
	if !changed {
		return state
	}
	return state.WithTasks(tasks)
}

// applyDrop relocates the active column onto the column under the pointer.
// Anything that does not resolve to two distinct live columns is a no-op.
func applyDrop(state board.State, active Element, over *Element) board.State {
	if over == nil || active.ID == over.ID {
		return state
	}
	active, ok := resolve(state, active)
	if !ok || active.Kind != models.KindColumn {
		return state
	}
	target, ok := resolve(state, *over)
	if !ok || target.Kind != models.KindColumn {
		return state
	}

	columns, changed := reorder.MoveColumn(state.Columns(), active.ID, target.ID)
	if !changed {
		return state
	}
	return state.WithColumns(columns)
}
