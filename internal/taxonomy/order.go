package taxonomy

import (
	"sort"

	"hobbies-cli/internal/model"
)

// Sort returns a copy of forest where every sibling list is ordered by
// descending score. Ties keep their input order, so repeated calls over the
// same input always produce the same forest. The input is not modified.
func Sort(forest []model.Node) []model.Node {
	if forest == nil {
		return nil
	}
	out := make([]model.Node, len(forest))
	for i, n := range forest {
		out[i] = model.Node{
			Name:  n.Name,
			Score: n.Score,
			Items: Sort(n.Items),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
