package models

import (
	"testing"
)

// ============================================================================
// ElementKind Tests
// ============================================================================

func TestParseElementKind(t *testing.T) {
	tests := []struct {
		input string
		want  ElementKind
	}{
		{"column", KindColumn},
		{"Column", KindColumn},
		{"task", KindTask},
		{"Task", KindTask},
		{"", KindNone},
		{"card", KindNone},
	}

	for _, tt := range tests {
		if got := ParseElementKind(tt.input); got != tt.want {
			t.Errorf("ParseElementKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestElementKind_String(t *testing.T) {
	if KindNone.String() != "none" {
		t.Errorf("KindNone.String() = %q, want none", KindNone.String())
	}
	if KindTask.String() != "task" {
		t.Errorf("KindTask.String() = %q, want task", KindTask.String())
	}
}
