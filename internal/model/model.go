package model

// Node is one entry of the hobby taxonomy.
//
// Name doubles as the node's identity for selection, search, coloring and
// disclosure paths, so names are expected to be unique across the whole
// forest. Score only drives ordering; it is never persisted or displayed.
type Node struct {
	Name  string  `json:"name" yaml:"name"`
	Items []Node  `json:"items,omitempty" yaml:"items,omitempty"`
	Score float64 `json:"score" yaml:"score"`
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return len(n.Items) == 0 }

// Color is a "#RRGGBB" hex triple.
type Color string

// Counts is the selection badge for a node: how many of its immediate
// children are selected, out of how many.
type Counts struct {
	Selected int `json:"selected"`
	Total    int `json:"total"`
}

// HasBadge reports whether a presenter should show the counts at all.
// Leaves yield {0, 0}, which means "no badge" rather than "0 of 0".
func (c Counts) HasBadge() bool { return c.Total > 0 }
