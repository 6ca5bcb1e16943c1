package tui

import (
	"hobbies-cli/internal/disclosure"
	"hobbies-cli/internal/session"
)

type rowKind int

const (
	rowNode rowKind = iota
	// rowMore is the "show N more" line under a paged list.
	rowMore
)

type row struct {
	kind rowKind
	node session.NodeView
	// listKey is the disclosure key of the list the row belongs to.
	listKey string
	// childKey is the disclosure key of the node's own children (node rows).
	childKey string
	hidden   int
	depth    int
}

// buildRows flattens the visible part of the tree into display rows.
func buildRows(lvl session.Level) []row {
	out := []row{}
	appendLevel(&out, lvl, 1)
	return out
}

func appendLevel(out *[]row, lvl session.Level, depth int) {
	for _, n := range lvl.Nodes {
		*out = append(*out, row{
			kind:     rowNode,
			node:     n,
			listKey:  lvl.Key,
			childKey: disclosure.ChildKey(lvl.Key, n.Name),
			depth:    depth,
		})
		if n.Children != nil {
			appendLevel(out, *n.Children, depth+1)
		}
	}
	if lvl.Hidden > 0 {
		*out = append(*out, row{kind: rowMore, listKey: lvl.Key, hidden: lvl.Hidden, depth: depth})
	}
}

// parentIndex returns the index of the node row whose children list
// contains rows[i], or -1 at the top level.
func parentIndex(rows []row, i int) int {
	if i < 0 || i >= len(rows) {
		return -1
	}
	key := rows[i].listKey
	for j := i - 1; j >= 0; j-- {
		if rows[j].kind == rowNode && rows[j].childKey == key {
			return j
		}
	}
	return -1
}
