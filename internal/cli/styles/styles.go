package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/config/colors"
)

var (
	// Column styles
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))
}

// ═══════════════════════════════════════════════════════════════════
// BOARD RENDERING
// ═══════════════════════════════════════════════════════════════════

// RenderBoard draws each column as a bordered box listing its tasks,
// side by side in board order.
func RenderBoard(state board.State) string {
	columns := state.Columns()
	if len(columns) == 0 {
		return SubtitleStyle.Render("(empty board)")
	}

	boxes := make([]string, 0, len(columns))
	for _, column := range columns {
		var b strings.Builder
		b.WriteString(TitleStyle.Render(column.Title))
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(column.ID.Short()))

		tasks := state.TasksInColumn(column.ID)
		if len(tasks) == 0 {
			b.WriteString("\n")
			b.WriteString(SubtitleStyle.Render("no tasks"))
		}
		for _, task := range tasks {
			b.WriteString("\n")
			b.WriteString(ValueStyle.Render("• " + task.Content))
		}

		boxes = append(boxes, ColumnStyle.Render(b.String()))
	}

	rev := state.Revision()
	footer := SubtitleStyle.Render(fmt.Sprintf("%d columns, %d tasks (rev %d/%d)",
		len(columns), len(state.Tasks()), rev.Columns, rev.Tasks))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		footer,
	)
}
