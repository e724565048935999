package events

import (
	"log/slog"
	"time"
)

// Bus delivers events synchronously, in publish order, on the caller's
// goroutine. It is not safe for concurrent use; the board runs on a single
// event loop. A nil *Bus silently drops everything.
type Bus struct {
	handlers map[int]Handler
	order    []int
	nextID   int
	sequence int64
	now      func() time.Time
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
		now:      time.Now,
	}
}

// Publish assigns the next sequence number and timestamp, then calls each
// subscriber in subscription order.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	slog.Debug("board event",
		"type", event.Type,
		"op", event.Op,
		"sequence", event.SequenceID,
		"columns_rev", event.Revision.Columns,
		"tasks_rev", event.Revision.Tasks)

	for _, id := range b.order {
		if h, ok := b.handlers[id]; ok {
			h(event)
		}
	}
}

// Subscribe registers h. Calling the returned function more than once is safe.
func (b *Bus) Subscribe(h Handler) func() {
	if b == nil || h == nil {
		return func() {}
	}

	b.nextID++
	id := b.nextID
	b.handlers[id] = h
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.handlers[id]; !ok {
			return
		}
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Sequence returns the last assigned sequence number.
func (b *Bus) Sequence() int64 {
	if b == nil {
		return 0
	}
	return b.sequence
}
