// Package store is the local document library: a small SQLite database
// keyed by document name, holding the element list as a JSON blob.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mithrel/readmekit/pkg/api"
)

var ErrNotFound = errors.New("document not found")

type Store struct {
	db *sql.DB
}

// Open connects to the SQLite library at path using the modernc.org/sqlite
// driver and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS documents (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  elements TEXT NOT NULL,
  hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at DESC);
`)
	return err
}

// Save upserts doc by name. When a document with the same name and an equal
// content hash already exists, the stored copy is returned unchanged and
// changed is false.
func (s *Store) Save(ctx context.Context, doc api.Document) (saved api.Document, changed bool, err error) {
	existing, err := s.Get(ctx, doc.Name)
	switch {
	case err == nil:
		if existing.Hash() == doc.Hash() {
			return existing, false, nil
		}
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	case errors.Is(err, ErrNotFound):
		if doc.ID == "" {
			doc.ID = api.NewID()
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now().UTC()
		}
	default:
		return api.Document{}, false, err
	}
	doc.Touch(time.Now())

	blob, err := json.Marshal(doc.Elements)
	if err != nil {
		return api.Document{}, false, fmt.Errorf("failed to encode elements: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO documents (id, name, elements, hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  elements = excluded.elements,
  hash = excluded.hash,
  updated_at = excluded.updated_at;
`, doc.ID, doc.Name, string(blob), doc.Hash(),
		doc.CreatedAt.Format(time.RFC3339Nano), doc.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return api.Document{}, false, err
	}
	return doc, true, nil
}

// Get loads a document by name.
func (s *Store) Get(ctx context.Context, name string) (api.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, elements, created_at, updated_at FROM documents WHERE name = ?`, name)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return api.Document{}, ErrNotFound
	}
	return doc, err
}

// List returns all documents, most recently updated first.
func (s *Store) List(ctx context.Context) ([]api.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, elements, created_at, updated_at FROM documents ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Delete removes a document by name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(r rowScanner) (api.Document, error) {
	var doc api.Document
	var blob, created, updated string
	if err := r.Scan(&doc.ID, &doc.Name, &blob, &created, &updated); err != nil {
		return api.Document{}, err
	}
	if err := json.Unmarshal([]byte(blob), &doc.Elements); err != nil {
		return api.Document{}, fmt.Errorf("failed to decode elements for %s: %w", doc.Name, err)
	}
	var err error
	if doc.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return api.Document{}, err
	}
	if doc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return api.Document{}, err
	}
	return doc, nil
}
