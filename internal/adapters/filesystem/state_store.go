// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

// StateStore implements secondary.StateStore as a JSON file.
type StateStore struct {
	path string

	mu          sync.Mutex
	lastWritten []byte
}

// NewStateStore creates a state store backed by the file at path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: filepath.Clean(path)}
}

// Path returns the backing file.
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the state file. A missing file is an empty state.
func (s *StateStore) Load(ctx context.Context) (*secondary.StateRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &secondary.StateRecord{}, nil
	}
	if err != nil {
		return nil, core2err.Store("read state", err)
	}
	var st secondary.StateRecord
	if len(bytes.TrimSpace(data)) == 0 {
		return &st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, core2err.Store("parse state", fmt.Errorf("%s: %w", s.path, err))
	}
	return &st, nil
}

// Save replaces the state file. The file holds tokens and is written 0600
// through a rename so readers never see a partial file.
func (s *StateStore) Save(ctx context.Context, st *secondary.StateRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return core2err.Store("create state dir", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return core2err.Store("marshal state", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return core2err.Store("write state", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return core2err.Store("write state", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return core2err.Store("write state", err)
	}
	if err := tmp.Close(); err != nil {
		return core2err.Store("write state", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return core2err.Store("write state", err)
	}
	s.lastWritten = data
	return nil
}

// Watch calls onChange whenever another writer changes the state file, until
// ctx is done. The directory is watched so replaced files are seen.
func (s *StateStore) Watch(ctx context.Context, onChange func()) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return core2err.Store("create state dir", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return core2err.Store("watch state", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return core2err.Store("watch state", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if s.ownWrite() {
				continue
			}
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return core2err.Store("watch state", err)
		}
	}
}

// ownWrite reports whether the file still holds exactly what this store last
// saved.
func (s *StateStore) ownWrite() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWritten != nil && bytes.Equal(data, s.lastWritten)
}

var _ secondary.StateStore = (*StateStore)(nil)
