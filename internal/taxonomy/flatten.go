package taxonomy

import (
	"strings"

	"hobbies-cli/internal/model"
)

// Flatten lists every name in the forest in pre-order over the sorted view.
// This is the canonical order shared by search results and the selected
// tags list.
func Flatten(forest []model.Node) []string {
	var out []string
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for _, n := range nodes {
			out = append(out, n.Name)
			walk(n.Items)
		}
	}
	walk(Sort(forest))
	if out == nil {
		out = []string{}
	}
	return out
}

// Search returns the flattened names containing query, case-insensitively,
// in flattened order. A blank query yields an empty result.
func Search(forest []model.Node, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}
	out := []string{}
	for _, name := range Flatten(forest) {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// Find returns the first node named name, searching depth-first in sorted
// order.
func Find(forest []model.Node, name string) (model.Node, bool) {
	for _, n := range Sort(forest) {
		if found, ok := find(n, name); ok {
			return found, true
		}
	}
	return model.Node{}, false
}

func find(n model.Node, name string) (model.Node, bool) {
	if n.Name == name {
		return n, true
	}
	for _, ch := range n.Items {
		if found, ok := find(ch, name); ok {
			return found, true
		}
	}
	return model.Node{}, false
}

// CategoryOf returns the name of the top-level category whose subtree
// (including the category itself) contains a node named name.
func CategoryOf(forest []model.Node, name string) (string, bool) {
	for _, top := range Sort(forest) {
		if _, ok := find(top, name); ok {
			return top.Name, true
		}
	}
	return "", false
}
