// Package session owns the live board for one run of the program.
//
// A Session holds the current immutable snapshot and the in-progress drag,
// applies CRUD operations and gesture events, then logs and publishes every
// change. It is not safe for concurrent use: all calls are expected to come
// from the single UI or replay loop that owns it.
package session

import (
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/gesture"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Session is the mutable owner of the board snapshot.
type Session struct {
	state board.State
	drag  gesture.Drag
	gen   board.Generator
	bus   events.EventPublisher
	log   *slog.Logger
	debug bool
}

// New creates a Session over an empty board.
func New(opts ...Option) *Session {
	s := &Session{
		gen: board.NewRandomGenerator("", ""),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Session) State() board.State {
	return s.state
}

// Drag returns the in-progress drag, which is idle outside a gesture.
func (s *Session) Drag() gesture.Drag {
	return s.drag
}

// Subscribe registers fn for change events. Without a publisher it is a no-op.
func (s *Session) Subscribe(fn events.Handler) func() {
	if s.bus == nil {
		return func() {}
	}
	return s.bus.Subscribe(fn)
}

// ============================================================================
// BOARD OPERATIONS
// ============================================================================

// AddColumn appends a new column with a placeholder title.
func (s *Session) AddColumn() models.Column {
	next, column := s.state.AddColumn(s.gen)
	s.commit("add_column", next)
	return column
}

// RemoveColumn deletes a column and its tasks. Unknown IDs are ignored.
func (s *Session) RemoveColumn(id types.ID) {
	s.commit("remove_column", s.state.RemoveColumn(id))
}

// RenameColumn replaces a column title. Unknown IDs are ignored.
func (s *Session) RenameColumn(id types.ID, title string) {
	s.commit("rename_column", s.state.RenameColumn(id, title))
}

// AddTask appends a new task to a column.
func (s *Session) AddTask(columnID types.ID) models.Task {
	next, task := s.state.AddTask(s.gen, columnID)
	s.commit("add_task", next)
	return task
}

// RemoveTask deletes a task. Unknown IDs are ignored.
func (s *Session) RemoveTask(id types.ID) {
	s.commit("remove_task", s.state.RemoveTask(id))
}

// EditTask replaces a task's content. Unknown IDs are ignored.
func (s *Session) EditTask(id types.ID, content string) {
	s.commit("edit_task", s.state.EditTask(id, content))
}

// ============================================================================
// GESTURES
// ============================================================================

// Dispatch feeds one gesture event through the reducer.
// It reports whether the board changed.
func (s *Session) Dispatch(ev gesture.Event) bool {
	wasDragging := s.drag.IsDragging()

	next, drag := gesture.Reduce(s.state, s.drag, ev)
	s.drag = drag

	switch {
	case !wasDragging && drag.IsDragging():
		active, _ := drag.Active()
		s.log.Debug("drag started", "id", active.ID, "kind", active.Kind)
		s.publish(events.EventDragStarted, ev.Type.String())
	case wasDragging && !drag.IsDragging():
		s.log.Debug("drag ended", "event", ev.Type.String())
		s.publish(events.EventDragEnded, ev.Type.String())
	}

	return s.commit(ev.Type.String(), next)
}

// ============================================================================
// INTERNAL
// ============================================================================

// commit installs next as the current snapshot when it differs, then logs
// and publishes one event per replaced collection.
func (s *Session) commit(op string, next board.State) bool {
	prev := s.state
	if next.Same(prev) {
		return false
	}
	s.state = next

	s.log.Debug("board changed",
		"op", op,
		"columns", len(next.Columns()),
		"tasks", len(next.Tasks()),
		"columns_rev", next.Revision().Columns,
		"tasks_rev", next.Revision().Tasks)

	if next.Revision().Columns != prev.Revision().Columns {
		s.publish(events.EventColumnsChanged, op)
	}
	if next.Revision().Tasks != prev.Revision().Tasks {
		s.publish(events.EventTasksChanged, op)
	}

	if s.debug {
		if err := next.Check(); err != nil {
			s.log.Error("board invariant violated", "op", op, "error", err)
		}
	}
	return true
}

func (s *Session) publish(t events.EventType, op string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:     t,
		Op:       op,
		Revision: s.state.Revision(),
	})
}
