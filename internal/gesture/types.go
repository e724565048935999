// Package gesture reduces drag and drop input into board state changes.
//
// The presentation layer reports what it sees as a stream of events:
// Start when an element is picked up, Over each time the element under the
// pointer changes, then Drop or Cancel. Reduce folds one event into the
// current (State, Drag) pair without touching any input device.
package gesture

import (
	"fmt"

	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// EventType indicates which gesture step occurred
type EventType int

const (
	EventStart EventType = iota + 1
	EventOver
	EventDrop
	EventCancel
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventOver:
		return "over"
	case EventDrop:
		return "drop"
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Element is a draggable element as declared by the presentation layer.
type Element struct {
	ID   types.ID
	Kind models.ElementKind
}

// Column and Task build Elements of the matching kind.
func Column(id types.ID) Element { return Element{ID: id, Kind: models.KindColumn} }
func Task(id types.ID) Element   { return Element{ID: id, Kind: models.KindTask} }

// Event is one step of a drag gesture.
// Over is nil when the pointer is not above any element.
type Event struct {
	Type   EventType
	Active Element
	Over   *Element
}

// Start begins dragging active.
func Start(active Element) Event {
	return Event{Type: EventStart, Active: active}
}

// Over reports the element currently under the pointer; over may be nil.
func Over(active Element, over *Element) Event {
	return Event{Type: EventOver, Active: active, Over: over}
}

// Drop ends the gesture above over; over may be nil.
func Drop(active Element, over *Element) Event {
	return Event{Type: EventDrop, Active: active, Over: over}
}

// Cancel abandons the gesture.
func Cancel() Event {
	return Event{Type: EventCancel}
}

// Phase is the drag state machine position.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag tracks the element being dragged so a renderer can draw a floating
// duplicate of it. The zero value is idle.
type Drag struct {
	active Element
	column models.Column
	task   models.Task
}

// Phase returns Dragging while an element is held.
func (d Drag) Phase() Phase {
	if d.active.ID.IsZero() {
		return Idle
	}
	return Dragging
}

// IsDragging reports whether an element is held.
func (d Drag) IsDragging() bool {
	return d.Phase() == Dragging
}

// Active returns the held element.
func (d Drag) Active() (Element, bool) {
	return d.active, d.IsDragging()
}

// Column returns the held column, if a column is being dragged.
func (d Drag) Column() (models.Column, bool) {
	if d.active.Kind != models.KindColumn {
		return models.Column{}, false
	}
	return d.column, true
}

// Task returns the held task, if a task is being dragged.
func (d Drag) Task() (models.Task, bool) {
	if d.active.Kind != models.KindTask {
		return models.Task{}, false
	}
	return d.task, true
}
