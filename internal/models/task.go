package models

import "github.com/thenoetrevino/paso-board/internal/types"

// Task represents a single card on the kanban board
type Task struct {
	ID       types.ID `json:"id" yaml:"id"`
	ColumnID types.ID `json:"column_id" yaml:"column_id"` // FK to Column.ID
	Content  string   `json:"content" yaml:"content"`
}
