package tui

import (
	"log/slog"

	"hobbies-cli/internal/docs"
	"hobbies-cli/internal/logging"
	"hobbies-cli/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	sess   *session.Session
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	// open holds the child-list keys of nodes the user has expanded. It is
	// view state only; disclosure paging lives in the session.
	open   map[string]bool
	rows   []row
	cursor int
	offset int

	search    textinput.Model
	searching bool
	// result is the highlighted search result.
	result int

	showHelp bool
	width    int
	height   int
}

func newModel(sess *session.Session, opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	in := textinput.New()
	in.Placeholder = "search hobbies"
	in.Prompt = "/ "

	m := model{
		sess:   sess,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		open:   map[string]bool{},
		search: in,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd { return nil }

// refresh rebuilds the rows from the session and clamps the cursor.
func (m *model) refresh() {
	lvl := m.sess.Tree(session.TreeOptions{Open: func(key string) bool { return m.open[key] }})
	m.rows = buildRows(lvl)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n := len(m.sess.Results()); m.result >= n {
		m.result = max(n-1, 0)
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *model) scroll() {
	h := m.treeHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-6, 10)
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showHelp {
			// Any key closes the help overlay.
			m.showHelp = false
			return m, nil
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTree(msg)
	}
	return m, nil
}

func (m model) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.sess.Query())
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		m.sess.Dismiss()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.scroll()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.sess.Clear()
		m.refresh()
		return m, nil
	}

	r, ok := m.current()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.More), key.Matches(msg, m.keys.Toggle) && r.kind == rowMore:
		if r.kind == rowMore {
			m.sess.Expand(r.listKey)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Toggle):
		m.sess.Toggle(r.node.Name)
		m.refresh()
	case key.Matches(msg, m.keys.Open):
		if r.kind == rowNode && !r.node.Leaf {
			m.open[r.childKey] = true
			m.refresh()
		}
	case key.Matches(msg, m.keys.Close):
		if r.kind == rowNode && m.open[r.childKey] {
			delete(m.open, r.childKey)
		} else if p := parentIndex(m.rows, m.cursor); p >= 0 {
			m.cursor = p
		}
		m.refresh()
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Dismiss()
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		m.result = 0
		return m, nil
	case tea.KeyUp:
		if m.result > 0 {
			m.result--
		}
		return m, nil
	case tea.KeyDown:
		if m.result < len(m.sess.Results())-1 {
			m.result++
		}
		return m, nil
	case tea.KeyEnter:
		if res := m.sess.Results(); m.result < len(res) {
			m.sess.Toggle(res[m.result])
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.sess.Query() {
		m.sess.SetQuery(v)
		m.result = 0
	}
	return m, cmd
}

// helpView renders the keys topic for the help overlay.
func (m model) helpView() string {
	body, ok := docs.Get("keys")
	if !ok {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return renderMarkdown(body, m.width)
}
