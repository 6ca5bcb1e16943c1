package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws the search box as exactly one line of width w.
func renderInputLine(w int, inputView string) string {
	if w < 10 {
		w = 10
	}

	// A newline in the view would wrap and look like typed line breaks.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate styling so the cut doesn't bleed into the next line.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

// fitLine pads or cuts line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	w := xansi.StringWidth(line)
	switch {
	case w < width:
		return line + strings.Repeat(" ", width-w)
	case w > width:
		return xansi.Truncate(line, width, "…")
	}
	return line
}
