package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the header, search box, tags line, blank spacer and help bar.
const chromeLines = 5

// maxDropdown caps how many search results are drawn.
const maxDropdown = 8

func (m model) treeHeight() int {
	h := m.height - chromeLines
	if m.searching || m.sess.HasDropdown() {
		h -= min(len(m.sess.Results()), maxDropdown) + 1
	}
	return max(h, 3)
}

func (m model) View() string {
	if m.showHelp {
		return m.helpView() + "\n\n" + styleMuted().Render("press any key to close")
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Hobbies")
	b.WriteString(fitLine(title+" "+styleMuted().Render(m.summary()), m.width) + "\n")

	if m.searching {
		b.WriteString(renderInputLine(m.width, m.search.View()) + "\n")
	} else {
		b.WriteString(styleMuted().Render(fitLine("press / to search", m.width)) + "\n")
	}
	if m.searching || m.sess.HasDropdown() {
		b.WriteString(m.dropdownView())
	}

	end := min(m.offset+m.treeHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.rowView(m.rows[i], i == m.cursor && !m.searching) + "\n")
	}

	b.WriteString("\n" + m.tagsView() + "\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m model) summary() string {
	n := len(m.sess.OrderedSelection())
	if n == 1 {
		return "1 selected"
	}
	return fmt.Sprintf("%d selected", n)
}

func (m model) rowView(r row, focused bool) string {
	indent := strings.Repeat("  ", r.depth-1)
	if r.kind == rowMore {
		line := indent + "  " + styleMuted().Render(fmt.Sprintf("… show %d more", r.hidden))
		return m.finishRow(line, focused)
	}

	n := r.node
	twisty := " "
	if !n.Leaf {
		twisty = "▸"
		if m.open[r.childKey] {
			twisty = "▾"
		}
	}
	swatch := lipgloss.NewStyle().Foreground(categoryColor(n.Color)).Render("●")
	check := "[ ]"
	if n.Selected {
		check = lipgloss.NewStyle().Foreground(colorCheckedFg).Render("[x]")
	}
	name := n.Name
	if n.Depth == 1 {
		name = lipgloss.NewStyle().Bold(true).Render(name)
	}
	line := indent + twisty + " " + swatch + " " + check + " " + name
	if n.Counts.HasBadge() {
		line += " " + lipgloss.NewStyle().Foreground(colorBadgeFg).Render(fmt.Sprintf("(%d/%d)", n.Counts.Selected, n.Counts.Total))
	}
	return m.finishRow(line, focused)
}

func (m model) finishRow(line string, focused bool) string {
	line = fitLine(line, m.width)
	if !focused {
		return line
	}
	return lipgloss.NewStyle().Background(colorCursorBg).Foreground(colorCursorFg).Render(line)
}

func (m model) dropdownView() string {
	views := m.sess.ResultViews()
	if len(views) == 0 {
		if m.sess.Query() == "" {
			return ""
		}
		hint := "no matches"
		if s := m.sess.Suggest(m.sess.Query(), 3); len(s) > 0 {
			hint += "; did you mean " + strings.Join(s, ", ") + "?"
		}
		return styleMuted().Render(fitLine("  "+hint, m.width)) + "\n"
	}

	start := 0
	if m.result >= maxDropdown {
		start = m.result - maxDropdown + 1
	}
	end := min(start+maxDropdown, len(views))
	var b strings.Builder
	for i := start; i < end; i++ {
		v := views[i]
		check := "[ ]"
		if v.Selected {
			check = "[x]"
		}
		swatch := lipgloss.NewStyle().Foreground(categoryColor(v.Color)).Render("●")
		line := fitLine("  "+swatch+" "+check+" "+v.Name, m.width)
		style := lipgloss.NewStyle().Background(colorDropdownBg)
		if i == m.result {
			style = style.Background(colorCursorBg).Foreground(colorCursorFg).Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	if rest := len(views) - end; rest > 0 {
		b.WriteString(styleMuted().Render(fmt.Sprintf("  +%d more", rest)) + "\n")
	}
	return b.String()
}

// tagsView lists the selection in tree order as category-colored chips.
func (m model) tagsView() string {
	names := m.sess.OrderedSelection()
	if len(names) == 0 {
		return styleMuted().Render("nothing selected")
	}
	chips := make([]string, 0, len(names))
	for _, name := range names {
		chips = append(chips, lipgloss.NewStyle().
			Background(categoryColor(m.sess.Color(name))).
			Foreground(colorOnPastel).
			Padding(0, 1).
			Render(name))
	}
	return fitLine(strings.Join(chips, " "), m.width)
}
