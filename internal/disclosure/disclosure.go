// Package disclosure tracks how many items of each sibling list are
// revealed ("show more" paging). Counts only grow within a session.
package disclosure

import "strings"

// RootKey is the path key of the top-level category list.
const RootKey = "root"

// Separator joins ancestor names into a path key.
const Separator = "/"

// DefaultPageSize is the initial visible count and the step of Expand.
const DefaultPageSize = 5

// State maps path keys to visible counts.
type State struct {
	pageSize int
	visible  map[string]int
}

// New returns an empty State. pageSize <= 0 means DefaultPageSize.
func New(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &State{pageSize: pageSize, visible: map[string]int{}}
}

func (s *State) PageSize() int { return s.pageSize }

// VisibleCount returns how many items of the list at key are revealed.
func (s *State) VisibleCount(key string) int {
	if n, ok := s.visible[key]; ok {
		return n
	}
	return s.pageSize
}

// Expand reveals one more page of the list at key and returns the new count.
func (s *State) Expand(key string) int {
	n := s.VisibleCount(key) + s.pageSize
	s.visible[key] = n
	return n
}

// Window returns how many of total items to show at key and how many stay
// hidden behind a "show more" affordance.
func (s *State) Window(key string, total int) (visible, hidden int) {
	visible = s.VisibleCount(key)
	if visible > total {
		visible = total
	}
	return visible, total - visible
}

// Keys returns a copy of the explicitly expanded paths and their counts.
func (s *State) Keys() map[string]int {
	out := make(map[string]int, len(s.visible))
	for k, v := range s.visible {
		out[k] = v
	}
	return out
}

// ChildKey returns the path key of the children of name, whose own sibling
// list is keyed by parentKey.
func ChildKey(parentKey, name string) string {
	if parentKey == "" || parentKey == RootKey {
		return name
	}
	return parentKey + Separator + name
}

// PathKey builds the key for the children list of the node reached by
// following names from the top level. No names means the root list.
func PathKey(names ...string) string {
	if len(names) == 0 {
		return RootKey
	}
	return strings.Join(names, Separator)
}
