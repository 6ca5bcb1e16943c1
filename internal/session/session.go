// Package session owns the per-run hobby selector state and is the only
// thing presenters (CLI, TUI) talk to.
//
// Inputs are Toggle, Clear, SetQuery, Expand and Dismiss. Everything a
// presenter renders is derived on demand from the taxonomy and the current
// state; only category colors are computed once, in New.
package session

import (
	"log/slog"
	"strings"

	"hobbies-cli/internal/disclosure"
	"hobbies-cli/internal/model"
	"hobbies-cli/internal/palette"
	"hobbies-cli/internal/selection"
	"hobbies-cli/internal/taxonomy"

	"github.com/sahilm/fuzzy"
)

type Options struct {
	Forest    []model.Node
	Colors    *palette.Assigner
	Selection *selection.Store
	PageSize  int
	Logger    *slog.Logger
}

type Session struct {
	forest []model.Node
	colors *palette.Assigner
	sel    *selection.Store
	disc   *disclosure.State
	logger *slog.Logger

	query   string
	results []string
}

// New builds a session and assigns category colors in score order.
func New(opts Options) *Session {
	s := &Session{
		forest:  opts.Forest,
		colors:  opts.Colors,
		sel:     opts.Selection,
		disc:    disclosure.New(opts.PageSize),
		logger:  opts.Logger,
		results: []string{},
	}
	if s.colors == nil {
		s.colors = palette.New(nil)
	}
	if s.sel == nil {
		s.sel = selection.New()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.colors.Init(s.forest)
	s.logger.Debug("session ready", "categories", len(s.forest), "selected", s.sel.Len())
	return s
}

// Toggle flips the selection of name.
func (s *Session) Toggle(name string) {
	s.sel.Toggle(name)
	s.logger.Debug("toggle", "name", name, "selected", s.sel.IsSelected(name))
}

// Clear deselects everything.
func (s *Session) Clear() {
	s.sel.Clear()
	s.logger.Debug("selection cleared")
}

// SetQuery updates the search text and its results.
func (s *Session) SetQuery(text string) {
	s.query = text
	s.results = taxonomy.Search(s.forest, text)
}

// Expand reveals another page of the list at key.
func (s *Session) Expand(key string) int {
	n := s.disc.Expand(key)
	s.logger.Debug("expand", "path", key, "visible", n)
	return n
}

// Dismiss drops the transient search state. Selection and disclosure are
// left alone.
func (s *Session) Dismiss() {
	s.query = ""
	s.results = []string{}
}

func (s *Session) Forest() []model.Node { return s.forest }

// Sorted returns the forest ordered by descending score at every level.
func (s *Session) Sorted() []model.Node { return taxonomy.Sort(s.forest) }

// Flatten lists every name in the canonical pre-order of the sorted forest.
func (s *Session) Flatten() []string { return taxonomy.Flatten(s.forest) }

func (s *Session) Query() string { return s.query }

// Results returns the names matching the current query in tree order.
func (s *Session) Results() []string {
	return append([]string(nil), s.results...)
}

// HasDropdown reports whether search results should be shown at all.
func (s *Session) HasDropdown() bool { return len(s.results) > 0 }

func (s *Session) IsSelected(name string) bool { return s.sel.IsSelected(name) }

// OrderedSelection returns the selected names in tree order.
func (s *Session) OrderedSelection() []string { return s.sel.Ordered(s.forest) }

func (s *Session) VisibleCount(key string) int { return s.disc.VisibleCount(key) }

func (s *Session) PageSize() int { return s.disc.PageSize() }

// Color returns the color of the category that contains name.
func (s *Session) Color(name string) model.Color { return s.colors.ColorFor(s.forest, name) }

// Colors lists the category colors in assignment order.
func (s *Session) Colors() []palette.Entry { return s.colors.Entries() }

// Counts returns the selection badge of the node named name.
func (s *Session) Counts(name string) model.Counts {
	n, ok := taxonomy.Find(s.forest, name)
	if !ok {
		return model.Counts{}
	}
	return selection.Counts(n, s.sel)
}

// Contains reports whether the taxonomy has a node named name.
func (s *Session) Contains(name string) bool {
	_, ok := taxonomy.Find(s.forest, name)
	return ok
}

// Suggest returns up to limit names that fuzzy-match query, best first.
// It backs "did you mean" hints and is not part of search itself.
func (s *Session) Suggest(query string, limit int) []string {
	out := []string{}
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return out
	}
	for _, m := range fuzzy.Find(query, taxonomy.Flatten(s.forest)) {
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
