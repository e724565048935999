package events

import (
	"time"

	"github.com/thenoetrevino/paso-board/internal/board"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventColumnsChanged EventType = "columns_changed"
	EventTasksChanged   EventType = "tasks_changed"
	EventDragStarted    EventType = "drag_started"
	EventDragEnded      EventType = "drag_ended"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Op         string         // Operation that caused the change (e.g. "add_task", "over")
	Revision   board.Revision // Board revision after the change
	Timestamp  time.Time      // When the event occurred
	SequenceID int64          // Monotonically increasing sequence number for ordering
}

// Handler receives published events.
type Handler func(Event)
