package session

import (
	"hobbies-cli/internal/disclosure"
	"hobbies-cli/internal/model"
	"hobbies-cli/internal/palette"
	"hobbies-cli/internal/selection"
)

// Level is one sibling list as a presenter should draw it: the visible
// prefix of the sorted list plus how many items hide behind "show more".
type Level struct {
	Key    string     `json:"key"`
	Nodes  []NodeView `json:"nodes"`
	Total  int        `json:"total"`
	Hidden int        `json:"hidden"`
}

type NodeView struct {
	Name     string       `json:"name"`
	Depth    int          `json:"depth"`
	Category string       `json:"category"`
	Color    model.Color  `json:"color"`
	Selected bool         `json:"selected"`
	Counts   model.Counts `json:"counts"`
	Leaf     bool         `json:"leaf"`

	// Children is nil for leaves and for nodes the presenter keeps closed.
	Children *Level `json:"children,omitempty"`
}

type TreeOptions struct {
	// All ignores disclosure paging and returns every sibling.
	All bool
	// MaxDepth stops descending below this depth (1 = top level only). Zero means no limit.
	MaxDepth int
	// Open reports whether the children list at key should be built.
	// Nil opens everything.
	Open func(key string) bool
}

// treeState is the read-only state shared by every level of buildLevel.
type treeState struct {
	sel    *selection.Store
	colors *palette.Assigner
	disc   *disclosure.State
	opts   TreeOptions
}

// Tree returns the sorted forest as nested levels, paged by the disclosure
// state and annotated with color, selection and counts.
func (s *Session) Tree(opts TreeOptions) Level {
	st := treeState{sel: s.sel, colors: s.colors, disc: s.disc, opts: opts}
	return buildLevel(s.Sorted(), disclosure.RootKey, 1, "", st)
}

func buildLevel(nodes []model.Node, key string, depth int, category string, st treeState) Level {
	total := len(nodes)
	visible := total
	if !st.opts.All {
		visible, _ = st.disc.Window(key, total)
	}
	lvl := Level{
		Key:    key,
		Nodes:  make([]NodeView, 0, visible),
		Total:  total,
		Hidden: total - visible,
	}
	for _, n := range nodes[:visible] {
		cat := category
		if depth == 1 {
			cat = n.Name
		}
		color, ok := st.colors.Lookup(cat)
		if !ok {
			color = palette.Fallback
		}
		v := NodeView{
			Name:     n.Name,
			Depth:    depth,
			Category: cat,
			Color:    color,
			Selected: st.sel.IsSelected(n.Name),
			Counts:   selection.Counts(n, st.sel),
			Leaf:     n.IsLeaf(),
		}
		childKey := disclosure.ChildKey(key, n.Name)
		if !v.Leaf && descend(st.opts, childKey, depth) {
			child := buildLevel(n.Items, childKey, depth+1, cat, st)
			v.Children = &child
		}
		lvl.Nodes = append(lvl.Nodes, v)
	}
	return lvl
}

func descend(opts TreeOptions, childKey string, depth int) bool {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return false
	}
	if opts.Open != nil && !opts.Open(childKey) {
		return false
	}
	return true
}

// ResultView is one search hit, annotated for display.
type ResultView struct {
	Name     string      `json:"name"`
	Color    model.Color `json:"color"`
	Selected bool        `json:"selected"`
}

// ResultViews annotates the current search results.
func (s *Session) ResultViews() []ResultView {
	out := make([]ResultView, 0, len(s.results))
	for _, name := range s.results {
		out = append(out, ResultView{Name: name, Color: s.Color(name), Selected: s.sel.IsSelected(name)})
	}
	return out
}

// Snapshot is everything a presenter needs for one render.
type Snapshot struct {
	Tree     Level           `json:"tree"`
	Selected []string        `json:"selected"`
	Query    string          `json:"query"`
	Results  []ResultView    `json:"results"`
	Visible  map[string]int  `json:"visible"`
	Colors   []palette.Entry `json:"colors"`
}

func (s *Session) Snapshot(opts TreeOptions) Snapshot {
	return Snapshot{
		Tree:     s.Tree(opts),
		Selected: s.OrderedSelection(),
		Query:    s.query,
		Results:  s.ResultViews(),
		Visible:  s.disc.Keys(),
		Colors:   s.colors.Entries(),
	}
}
