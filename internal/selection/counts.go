package selection

import "hobbies-cli/internal/model"

// Counts reports how many of node's immediate children are selected.
// Deeper descendants are not counted; leaves yield {0, 0}.
func Counts(node model.Node, s *Store) model.Counts {
	c := model.Counts{Total: len(node.Items)}
	if s == nil {
		return c
	}
	for _, ch := range node.Items {
		if s.IsSelected(ch.Name) {
			c.Selected++
		}
	}
	return c
}
