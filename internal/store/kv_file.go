package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const stateFileName = "state.json"

// FileKV keeps every key in one small JSON object on disk. It re-reads the
// file on each Get so state written by another process (CLI vs TUI) is seen.
type FileKV struct {
	mu   sync.Mutex
	path string
}

type fileState struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

func OpenFileKV(path string) (*FileKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileKV{path: path}, nil
}

func (kv *FileKV) Path() string { return kv.path }

func (kv *FileKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	st, err := kv.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := st.Values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (kv *FileKV) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()
	st, err := kv.read()
	if err != nil {
		// A corrupted file is replaced rather than blocking every write.
		st = &fileState{Version: 1, Values: map[string]json.RawMessage{}}
	}
	st.Values[key] = json.RawMessage(append([]byte(nil), value...))
	return kv.write(st)
}

func (kv *FileKV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	st, err := kv.read()
	if err != nil {
		return err
	}
	if _, ok := st.Values[key]; !ok {
		return nil
	}
	delete(st.Values, key)
	return kv.write(st)
}

func (kv *FileKV) Close() error { return nil }

func (kv *FileKV) read() (*fileState, error) {
	b, err := os.ReadFile(kv.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileState{Version: 1, Values: map[string]json.RawMessage{}}, nil
		}
		return nil, err
	}
	var st fileState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kv.path, err)
	}
	if st.Version == 0 {
		st.Version = 1
	}
	if st.Values == nil {
		st.Values = map[string]json.RawMessage{}
	}
	return &st, nil
}

func (kv *FileKV) write(st *fileState) error {
	// Compact on purpose: indenting would also reformat the raw values.
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return atomicWriteFile(filepath.Dir(kv.path), stateFileName+".*.tmp", kv.path, b, 0o644)
}
