package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileName is the snapshot file name within the data directory.
const DefaultFileName = "store.json"

// Manager reads and writes the snapshot file.
type Manager struct {
	path string
}

// NewManager creates a Manager bound to a snapshot file inside dir. The
// directory is created if it does not exist.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		return nil, fmt.Errorf("snapshot: dir is required")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("snapshot: create dir: %w", err)
	}
	return &Manager{path: filepath.Join(dir, DefaultFileName)}, nil
}

// Path returns the snapshot file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the snapshot file. A missing file is not an error; an empty
// State is returned so a fresh store starts with empty collections.
func (m *Manager) Load() (*State, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", m.path, err)
	}

	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", m.path, err)
	}
	if state.AuthSession == nil {
		state.AuthSession = map[string]int64{}
	}
	return state, nil
}

// Save writes the state atomically: temp file, sync, rename.
func (m *Manager) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	tempPath := m.path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer os.Remove(tempPath)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("snapshot: write: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}

	if err := os.Rename(tempPath, m.path); err != nil {
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	return nil
}
