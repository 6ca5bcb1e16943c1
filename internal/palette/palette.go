// Package palette assigns each top-level hobby category a stable color.
//
// Colors are keyed by category name and frozen on first assignment. The
// first len(Base) categories (in score order) get the base pastels; later
// ones get a jittered variant of a base color.
package palette

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"hobbies-cli/internal/model"
	"hobbies-cli/internal/taxonomy"
)

// Fallback is returned for names that belong to no category.
const Fallback model.Color = "#FFFFFF"

// Jitter bounds the per-channel offset applied to synthesized colors.
const Jitter = 15

// Base is the fixed pastel palette, indexed by category rank.
var Base = []model.Color{
	"#FFB3BA",
	"#FFDFBA",
	"#FFFFBA",
	"#BAFFC9",
	"#BAE1FF",
	"#E0BBE4",
	"#FFDFD3",
	"#D4F0F0",
	"#FCE1E4",
	"#DAEAF6",
}

// Assigner owns the category -> color map. The map only grows; an existing
// entry is never overwritten.
type Assigner struct {
	mu     sync.Mutex
	rng    *rand.Rand
	colors map[string]model.Color
	order  []string
}

// New returns an empty Assigner. rng drives color synthesis beyond the base
// palette; nil uses a randomly seeded source.
func New(rng *rand.Rand) *Assigner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Assigner{rng: rng, colors: map[string]model.Color{}}
}

// NewSeeded returns an Assigner whose synthesized colors are reproducible.
func NewSeeded(seed uint64) *Assigner {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Assign returns the color for category, assigning one from rank if the
// category has none yet.
func (a *Assigner) Assign(category string, rank int) model.Color {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.colors[category]; ok {
		return c
	}
	var c model.Color
	if rank >= 0 && rank < len(Base) {
		c = Base[rank]
	} else {
		c = a.synthesize(rank)
	}
	a.colors[category] = c
	a.order = append(a.order, category)
	return c
}

func (a *Assigner) synthesize(rank int) model.Color {
	idx := rank % len(Base)
	if idx < 0 {
		idx += len(Base)
	}
	r, g, b, err := ParseHex(Base[idx])
	if err != nil {
		return Fallback
	}
	jitter := func(v uint8) uint8 {
		return clamp(int(v) + a.rng.IntN(2*Jitter+1) - Jitter)
	}
	return FormatHex(jitter(r), jitter(g), jitter(b))
}

// Init assigns colors to the top-level categories of forest in score order,
// so the highest-scored categories always receive the base pastels.
func (a *Assigner) Init(forest []model.Node) {
	for i, top := range taxonomy.Sort(forest) {
		a.Assign(top.Name, i)
	}
}

// Lookup returns the color already assigned to category.
func (a *Assigner) Lookup(category string) (model.Color, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.colors[category]
	return c, ok
}

// ColorFor returns the color of the category containing name, or Fallback.
func (a *Assigner) ColorFor(forest []model.Node, name string) model.Color {
	category, ok := taxonomy.CategoryOf(forest, name)
	if !ok {
		return Fallback
	}
	if c, ok := a.Lookup(category); ok {
		return c
	}
	return Fallback
}

// Entry is one category color, in assignment order.
type Entry struct {
	Category string      `json:"category"`
	Color    model.Color `json:"color"`
	Base     bool        `json:"base"`
}

// Entries lists the assigned colors in the order they were assigned.
func (a *Assigner) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, 0, len(a.order))
	for i, name := range a.order {
		c := a.colors[name]
		out = append(out, Entry{Category: name, Color: c, Base: i < len(Base) && c == Base[i]})
	}
	return out
}

// ParseHex decodes "#RRGGBB" (the leading '#' is optional).
func ParseHex(c model.Color) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", string(c))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", string(c), err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// FormatHex encodes a color as "#RRGGBB".
func FormatHex(r, g, b uint8) model.Color {
	return model.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
