package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// KV is the durable key-value storage behind the selection store.
type KV interface {
	// Get returns the value stored under key; ok is false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store is a state directory on disk.
type Store struct {
	Dir string
}

// DefaultDir returns the state directory used when --dir is not given.
func DefaultDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state"), nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

// Open returns the KV for backend inside the store directory.
func (s Store) Open(ctx context.Context, backend string) (KV, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	switch NormalizeBackend(backend) {
	case BackendSQLite:
		return OpenSQLiteKV(ctx, filepath.Join(s.Dir, sqliteFileName))
	case BackendJSON:
		return OpenFileKV(filepath.Join(s.Dir, stateFileName))
	default:
		return nil, fmt.Errorf("unknown storage backend: %q (want %s|%s)", backend, BackendSQLite, BackendJSON)
	}
}

// NormalizeBackend maps "" to the default backend and lowercases the rest.
func NormalizeBackend(backend string) string {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		return BackendSQLite
	}
	return backend
}
