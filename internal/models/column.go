package models

import "github.com/thenoetrevino/paso-board/internal/types"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done")
// Columns are displayed in the order they appear in the board's column list
type Column struct {
	ID    types.ID `json:"id" yaml:"id"`       // Unique identifier for the column
	Title string   `json:"title" yaml:"title"` // Display title of the column
}
