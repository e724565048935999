package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/paso-board/internal/config/colors"
)

const (
	columnWidth = 30
	taskWidth   = 26
)

// Styles holds the lipgloss styles for one color scheme.
type Styles struct {
	Column         lipgloss.Style
	SelectedColumn lipgloss.Style
	TargetColumn   lipgloss.Style

	Task         lipgloss.Style
	SelectedTask lipgloss.Style
	TargetTask   lipgloss.Style
	HeldTask     lipgloss.Style

	Title         lipgloss.Style
	SelectedTitle lipgloss.Style
	Subtle        lipgloss.Style

	// Floating duplicate of the held element in the status bar
	Floating lipgloss.Style

	EditBox    lipgloss.Style
	ConfirmBox lipgloss.Style
	HelpBox    lipgloss.Style
	StatusBar  lipgloss.Style
	Mode       lipgloss.Style
}

// NewStyles builds the board styles from a color scheme
func NewStyles(scheme colors.ColorScheme) Styles {
	scheme.ApplyDefaults()

	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(columnWidth)

	task := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1).
		Width(taskWidth)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	return Styles{
		Column:         column,
		SelectedColumn: column.BorderForeground(lipgloss.Color(scheme.SelectedBorder)),
		TargetColumn:   column.BorderForeground(lipgloss.Color(scheme.DropTarget)),

		Task:         task,
		SelectedTask: task.BorderForeground(lipgloss.Color(scheme.SelectedBorder)),
		TargetTask:   task.BorderForeground(lipgloss.Color(scheme.DropTarget)),
		HeldTask: task.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(scheme.Subtle)).
			Foreground(lipgloss.Color(scheme.Subtle)),

		Title:         title,
		SelectedTitle: title.Underline(true).Foreground(lipgloss.Color(scheme.Accent)),
		Subtle:        lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)).Italic(true),

		Floating: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(scheme.DragBorder)).
			Padding(0, 1),

		EditBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Edit)).
			Padding(1, 2).
			Width(50),

		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Delete)).
			Padding(1, 2).
			Width(50),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		Mode: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
	}
}
