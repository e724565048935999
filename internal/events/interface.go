package events

// EventPublisher defines the interface for broadcasting board changes.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Publish stamps the event and delivers it to every subscriber
	Publish(event Event)

	// Subscribe registers a handler and returns a function removing it
	Subscribe(h Handler) (unsubscribe func())
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
