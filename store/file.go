package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/vegasq/gridview/view"
)

// FileStore keeps one JSON file per table under a state directory.
// State files may contain comments and trailing commas (JSONC); they
// are standardized before decoding so hand-edited files keep working.
// Writes are atomic, so a crash mid-save never leaves a torn file.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the state directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Load reads the state file for a table. A missing file is not an
// error; it returns nil state.
func (s *FileStore) Load(tableID string) (*view.ViewState, error) {
	data, err := os.ReadFile(s.path(tableID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read view state: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid view state file: %w", err)
	}

	var state view.ViewState
	if err := json.Unmarshal(standardized, &state); err != nil {
		return nil, fmt.Errorf("invalid view state file: %w", err)
	}
	return &state, nil
}

// Save writes the state file for a table atomically.
func (s *FileStore) Save(tableID string, state view.ViewState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode view state: %w", err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(s.path(tableID), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write view state: %w", err)
	}
	return nil
}

// path maps a table id to its state file, sanitizing characters that
// would escape the state directory.
func (s *FileStore) path(tableID string) string {
	return filepath.Join(s.dir, sanitizeTableID(tableID)+".json")
}

// sanitizeTableID replaces path separators and other hostile characters
// so any opaque table identifier maps to a flat file name.
func sanitizeTableID(tableID string) string {
	if tableID == "" {
		return "default"
	}
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"..", "_",
		" ", "_",
	)
	return replacer.Replace(tableID)
}
