package session

import (
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/events"
)

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets the source of IDs and placeholder text.
func WithGenerator(gen board.Generator) Option {
	return func(s *Session) {
		if gen != nil {
			s.gen = gen
		}
	}
}

// WithPublisher sets where change events are sent.
func WithPublisher(bus events.EventPublisher) Option {
	return func(s *Session) {
		s.bus = bus
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithDebug runs the board invariant check after every change.
func WithDebug(enabled bool) Option {
	return func(s *Session) {
		s.debug = enabled
	}
}

// WithState seeds the session with an existing snapshot.
func WithState(state board.State) Option {
	return func(s *Session) {
		s.state = state
	}
}
