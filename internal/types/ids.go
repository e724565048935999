package types

import "github.com/google/uuid"

// ID is the opaque identifier shared by columns and tasks.
// It is the stable key used to find an element across reorders.
// The zero value never identifies a live element.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// Short returns the first eight characters, for display.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}
