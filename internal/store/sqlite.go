package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ramanasai/dayflow/internal/model"
)

const documentKey = "dayflow"

// SQLiteStore keeps the document as a single row in a key-value table.
// Saves still overwrite the whole document; sqlite just supplies WAL
// durability instead of file-rename atomicity.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(dir string) (*SQLiteStore, error) {
	path := filepath.Join(dir, "dayflow.db")
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS document (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (*model.Document, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM document WHERE key = ?`, documentKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return nil, fmt.Errorf("parse stored document: %w", err)
	}
	return &doc, nil
}

func (s *SQLiteStore) Save(doc *model.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO document(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, documentKey, string(b))
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Open picks a backend by name. Unknown names fall back to the file store.
func Open(backend, dir string) (Store, error) {
	resolved, err := DataDir(dir)
	if err != nil {
		return nil, err
	}
	if backend == "sqlite" {
		return OpenSQLite(resolved)
	}
	return NewFileStore(resolved), nil
}
