// Package store persists the planner document. The document is a single
// blob: Load returns the whole thing (or nil when none exists yet) and Save
// overwrites it entirely. Two backends share the contract: a JSON file and
// a sqlite key-value table.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ramanasai/dayflow/internal/model"
)

// Store loads and saves the single planner document.
type Store interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
	Close() error
}

// DataDir resolves the data directory, creating it if needed. An empty
// override falls back to ~/.local/share/dayflow.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "share", "dayflow")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// FileStore keeps the document as pretty-printed JSON in a single file,
// written atomically via a temp file and rename.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "dayflow.json")}
}

func (s *FileStore) Load() (*model.Document, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) Save(doc *model.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error { return nil }
