// Package selection holds the set of selected hobby names and keeps it in
// durable storage.
package selection

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hobbies-cli/internal/model"
	"hobbies-cli/internal/taxonomy"
)

// Key is the durable storage key holding the selection.
const Key = "selectedHobbies"

// writeTimeout bounds a single persistence write.
const writeTimeout = 5 * time.Second

// Backend is the durable storage the Store writes through to.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store is the selection set. Every mutation writes the full set to the
// backend; write failures are logged and the in-memory set stays
// authoritative.
type Store struct {
	names   map[string]struct{}
	backend Backend
	logger  *slog.Logger
}

// New returns an empty, unpersisted selection.
func New(names ...string) *Store {
	s := &Store{names: map[string]struct{}{}, logger: discardLogger()}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

// Load restores the selection from backend. A missing or unreadable value
// yields an empty selection; Load never fails.
func Load(ctx context.Context, backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = discardLogger()
	}
	s := &Store{names: map[string]struct{}{}, backend: backend, logger: logger}
	if backend == nil {
		return s
	}
	b, ok, err := backend.Get(ctx, Key)
	if err != nil {
		logger.Warn("read selection; starting empty", "key", Key, "err", err)
		return s
	}
	if !ok {
		return s
	}
	names, err := Decode(b)
	if err != nil {
		logger.Warn("decode selection; starting empty", "key", Key, "err", err)
		return s
	}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	logger.Debug("selection restored", "count", len(s.names))
	return s
}

// Toggle adds name if absent and removes it if present.
func (s *Store) Toggle(name string) {
	if _, ok := s.names[name]; ok {
		delete(s.names, name)
	} else {
		s.names[name] = struct{}{}
	}
	s.persist()
}

// Clear empties the selection.
func (s *Store) Clear() {
	s.names = map[string]struct{}{}
	s.persist()
}

func (s *Store) IsSelected(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s *Store) Len() int { return len(s.names) }

// Names returns the selection sorted by name. Use Ordered for tree order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Ordered returns the selected names in the canonical pre-order of the
// sorted forest, so the selected tags read in the same order as the tree.
// Selected names that no longer exist in the forest are omitted.
func (s *Store) Ordered(forest []model.Node) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, name := range taxonomy.Flatten(forest) {
		if seen[name] {
			continue
		}
		if s.IsSelected(name) {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Encode serializes the selection as a JSON array of names.
func (s *Store) Encode() ([]byte, error) {
	return json.Marshal(s.Names())
}

// Decode parses a JSON array of names, dropping blanks.
func Decode(b []byte) ([]string, error) {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		if strings.TrimSpace(n) == "" {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Store) persist() {
	if s.backend == nil {
		return
	}
	b, err := s.Encode()
	if err != nil {
		s.logger.Error("encode selection", "err", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := s.backend.Put(ctx, Key, b); err != nil {
		s.logger.Error("persist selection; keeping in-memory state", "key", Key, "err", err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
