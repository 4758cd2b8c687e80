package draggable

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store is the persistence collaborator used to remember a resized
// dimension across sessions. The engine writes one string value per
// resizable container at the end of a successful resize gesture; reading
// values back to restore layout is the host's job.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool)

	// Set stores value under key.
	Set(key, value string) error
}

// sizeKey derives the persistence key for a container's resize identifier.
func sizeKey(resizeID string) string {
	return "drag-" + resizeID + "-size"
}

// MemoryStore is an in-process Store. It is the Engine default, so resize
// persistence works out of the box but does not survive a restart.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key and whether it exists.
func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key. It never fails.
func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// FileStore is a Store backed by a single JSON file, for hosts that want
// resized dimensions to survive restarts. The file is loaded once at
// construction and rewritten on every Set.
type FileStore struct {
	path   string
	values map[string]string
}

// NewFileStore opens or creates a file-backed store at path. The parent
// directory is created if it doesn't exist. A missing file is treated as
// an empty store; a corrupt file is an error.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value for key and whether it exists.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(key, value string) error {
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
