package models

// ============================================================================
// ELEMENT KIND CONSTANTS
// ============================================================================

// ElementKind is the declared type of a draggable element.
// Drag sources and drop targets always carry one of these.
type ElementKind string

const (
	KindNone   ElementKind = ""
	KindColumn ElementKind = "column"
	KindTask   ElementKind = "task"
)

// ParseElementKind converts user supplied text into an ElementKind.
// Unknown text yields KindNone.
func ParseElementKind(s string) ElementKind {
	switch s {
	case "column", "Column":
		return KindColumn
	case "task", "Task":
		return KindTask
	default:
		return KindNone
	}
}

// String returns the kind name, or "none" for KindNone.
func (k ElementKind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}
