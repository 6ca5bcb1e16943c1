package taxonomy

import (
	"sort"

	"hobbies-cli/internal/model"
)

// Stats summarizes a taxonomy for diagnostics.
type Stats struct {
	Categories int      `json:"categories"`
	Nodes      int      `json:"nodes"`
	Leaves     int      `json:"leaves"`
	MaxDepth   int      `json:"maxDepth"`
	Duplicates []string `json:"duplicates"`
}

// Inspect walks the forest once and reports its shape.
func Inspect(forest []model.Node) Stats {
	st := Stats{Categories: len(forest)}
	var walk func(nodes []model.Node, depth int)
	walk = func(nodes []model.Node, depth int) {
		for _, n := range nodes {
			st.Nodes++
			if depth > st.MaxDepth {
				st.MaxDepth = depth
			}
			if n.IsLeaf() {
				st.Leaves++
				continue
			}
			walk(n.Items, depth+1)
		}
	}
	walk(forest, 1)
	if len(forest) == 0 {
		st.MaxDepth = 0
	}
	st.Duplicates = DuplicateNames(forest)
	return st
}

// DuplicateNames returns, sorted, every name used by more than one node.
func DuplicateNames(forest []model.Node) []string {
	seen := map[string]int{}
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for _, n := range nodes {
			seen[n.Name]++
			walk(n.Items)
		}
	}
	walk(forest)

	out := []string{}
	for name, count := range seen {
		if count > 1 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
