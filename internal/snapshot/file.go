package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is where the daemon keeps its state record.
const DefaultPath = "/var/lib/fourzone/state.bin"

// fileStore implements Store on a single binary file.
type fileStore struct {
	path string
}

// NewFileStore creates a file-backed snapshot store at path. An empty
// path selects DefaultPath.
func NewFileStore(path string) Store {
	if path == "" {
		path = DefaultPath
	}
	return &fileStore{path: path}
}

// Save writes the snapshot record, creating the state directory on
// first use.
func (f *fileStore) Save(s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(f.path, Marshal(s), 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot record.
func (f *fileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read state file: %w", err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// memStore is an in-memory Store for tests and the preview command.
type memStore struct {
	snap  *Snapshot
	saves int
}

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore() Store {
	return &memStore{}
}

func (m *memStore) Save(s Snapshot) error {
	saved := s
	m.snap = &saved
	m.saves++
	return nil
}

func (m *memStore) Load() (Snapshot, error) {
	if m.snap == nil {
		return Snapshot{}, ErrNotFound
	}
	return *m.snap, nil
}
