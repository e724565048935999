package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/paso-board/internal/config"
)

// KeymapMarkdown renders the key mappings as a markdown table.
func KeymapMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Action | Key |\n")
	b.WriteString("|---|---|\n")
	for _, binding := range km.Bindings() {
		fmt.Fprintf(&b, "| %s | `%s` |\n", binding.Action, binding.Key)
	}
	b.WriteString("\nWhile dragging, move the cursor to choose a target. ")
	b.WriteString("A held task moves as the cursor moves; a held column moves on drop.\n")
	return b.String()
}

// RenderHelp renders the keymap with glamour, wrapped to width.
// The raw markdown is returned if the renderer fails.
func RenderHelp(km config.KeyMappings, width int) string {
	md := KeymapMarkdown(km)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// helpView returns the cached help text, re-rendering when the width changes.
func (m *Model) helpView() string {
	width := m.UiState.Width() - 8
	if width < 40 {
		width = 40
	}
	if m.help == "" || m.helpWidth != width {
		m.help = RenderHelp(m.Config.KeyMappings, width)
		m.helpWidth = width
	}
	return m.help
}
