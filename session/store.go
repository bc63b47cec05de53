// Package session is the console's only window onto persisted state: the
// auth token, the signed-in admin and per-screen view preferences.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// FileStore is a MemoryStore mirrored to a JSON object on disk. Every write
// rewrites the whole file.
type FileStore struct {
	path string
	mem  *MemoryStore
}

// FileName is the session file inside the console config dir.
const FileName = "session.json"

// OpenFile loads dir/session.json, or starts empty when it does not exist.
func OpenFile(dir string) (*FileStore, error) {
	fs := &FileStore{path: filepath.Join(dir, FileName), mem: NewMemoryStore()}
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if len(data) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(data, &fs.mem.values); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", fs.path, err)
	}
	if fs.mem.values == nil {
		fs.mem.values = map[string]string{}
	}
	return fs, nil
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Get(key string) (string, bool) { return f.mem.Get(key) }

func (f *FileStore) Set(key, value string) error {
	if err := f.mem.Set(key, value); err != nil {
		return err
	}
	return f.flush()
}

func (f *FileStore) Delete(keys ...string) error {
	if err := f.mem.Delete(keys...); err != nil {
		return err
	}
	return f.flush()
}

func (f *FileStore) flush() error {
	f.mem.mu.RLock()
	snapshot := maps.Clone(f.mem.values)
	f.mem.mu.RUnlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}
