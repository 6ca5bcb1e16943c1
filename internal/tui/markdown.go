package tui

import (
	"hobbies-cli/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

// renderMarkdown renders help text with the glamour style matching the
// terminal background.
func renderMarkdown(md string, width int) string {
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	return docs.Render(md, style, width)
}
