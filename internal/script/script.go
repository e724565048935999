// Package script replays a YAML description of board operations and drag
// gestures against a session. Elements are referred to by aliases bound when
// they are created, since generated identifiers are not known in advance.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/paso-board/internal/models"
	"gopkg.in/yaml.v3"
)

// Op names a replay step
type Op string

const (
	OpAddColumn    Op = "add_column"
	OpRenameColumn Op = "rename_column"
	OpRemoveColumn Op = "remove_column"
	OpAddTask      Op = "add_task"
	OpEditTask     Op = "edit_task"
	OpRemoveTask   Op = "remove_task"

	// OpDrag expands into start, over (when a target is given) and drop, or
	// cancel when Cancel is set.
	OpDrag Op = "drag"

	// Raw gesture events
	OpStart  Op = "start"
	OpOver   Op = "over"
	OpDrop   Op = "drop"
	OpCancel Op = "cancel"
)

// Script is a parsed replay file
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op      Op     `yaml:"op"`
	As      string `yaml:"as,omitempty"`      // alias bound by add_column / add_task
	Ref     string `yaml:"ref,omitempty"`     // element acted on by rename/remove/edit
	Column  string `yaml:"column,omitempty"`  // owning column for add_task
	Title   string `yaml:"title,omitempty"`   // rename_column
	Content string `yaml:"content,omitempty"` // edit_task
	Active  string `yaml:"active,omitempty"`  // dragged element
	Over    string `yaml:"over,omitempty"`    // element under the pointer; empty = none
	Cancel  bool   `yaml:"cancel,omitempty"`  // drag: abandon instead of dropping

	// OverKind overrides the kind the over alias was bound with, so a
	// script can report a pointer target the board disagrees with.
	OverKind string `yaml:"over_kind,omitempty"`
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Read parses a script from r
func Read(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Load parses the script file at path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Validate checks every step has the fields its op needs
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	require := func(name, value string) error {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
		return nil
	}

	switch st.Op {
	case OpAddColumn, OpCancel:
		return nil
	case OpRenameColumn, OpRemoveColumn, OpRemoveTask, OpEditTask:
		return require("ref", st.Ref)
	case OpAddTask:
		return require("column", st.Column)
	case OpDrag, OpStart, OpOver, OpDrop:
		if st.OverKind != "" && models.ParseElementKind(st.OverKind) == models.KindNone {
			return fmt.Errorf("%w: %q", ErrUnknownKind, st.OverKind)
		}
		return require("active", st.Active)
	case "":
		return fmt.Errorf("%w: op", ErrMissingField)
	default:
		return ErrUnknownOp
	}
}
