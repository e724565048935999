package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode     Mode = iota // Default navigation mode
	DragMode                   // Holding a column or task; navigation moves the drop target
	EditColumnMode             // Renaming the selected column inline
	EditTaskMode               // Editing the selected task's content inline
	HelpMode                   // Displaying help screen
	ConfirmDeleteMode          // Confirming deletion of a column that still has tasks
)

func (m Mode) String() string {
	switch m {
	case DragMode:
		return "DRAG"
	case EditColumnMode, EditTaskMode:
		return "EDIT"
	case HelpMode:
		return "HELP"
	case ConfirmDeleteMode:
		return "CONFIRM"
	default:
		return "NORMAL"
	}
}

// HeaderRow is the selectedTask value meaning the column header is selected
// rather than one of its tasks.
const HeaderRow = -1

// UIState manages the user interface state.
// This includes navigation (column/task selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column,
	// or HeaderRow when the column itself is selected
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with the header of the first column selected.
func NewUIState() *UIState {
	return &UIState{
		selectedTask: HeaderRow,
		mode:         NormalMode,
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn sets the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the selected task row, or HeaderRow.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the selected task row.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Clamp keeps the selection inside a board with columnCount columns, where
// tasksIn reports how many tasks the column at an index holds.
func (s *UIState) Clamp(columnCount int, tasksIn func(col int) int) {
	if columnCount == 0 {
		s.selectedColumn = 0
		s.selectedTask = HeaderRow
		return
	}

	s.selectedColumn = min(max(s.selectedColumn, 0), columnCount-1)

	n := tasksIn(s.selectedColumn)
	if s.selectedTask >= n {
		s.selectedTask = n - 1
	}
	if s.selectedTask < HeaderRow {
		s.selectedTask = HeaderRow
	}
}
