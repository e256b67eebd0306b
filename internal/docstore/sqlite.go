package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteStore is a Store backed by SQLite. Matching is done against
// columns lower-cased in Go at load time, so it folds case exactly like
// MemStore.
type SQLiteStore struct {
	db    *sql.DB
	count int
}

// NewSQLiteStore opens the database at path (in memory when path is empty
// or ":memory:"), replaces its contents with docs and returns the store.
func NewSQLiteStore(ctx context.Context, path string, docs []Document) (*SQLiteStore, error) {
	inMemory := path == "" || path == ":memory:"
	dsn := path
	if inMemory {
		dsn = ":memory:"
	}

	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("docstore: open database: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("docstore: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("docstore: migration: %w", err)
	}
	if err := s.load(ctx, dedupe(docs)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("docstore: load documents: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			id           TEXT    NOT NULL UNIQUE,
			title        TEXT    NOT NULL,
			text         TEXT    NOT NULL,
			url          TEXT    NOT NULL,
			search_title TEXT    NOT NULL,
			search_text  TEXT    NOT NULL
		);

		CREATE TABLE IF NOT EXISTS document_metadata (
			document_id  TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			key          TEXT NOT NULL,
			value        TEXT NOT NULL,
			search_value TEXT NOT NULL,
			PRIMARY KEY (document_id, key)
		);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// load replaces the stored documents with docs in one transaction.
func (s *SQLiteStore) load(ctx context.Context, docs []Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return err
	}

	for _, d := range docs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, title, text, url, search_title, search_text)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.Title, d.Text, d.URL, normalize(d.Title), normalize(d.Text),
		); err != nil {
			return fmt.Errorf("insert %q: %w", d.ID, err)
		}
		for k, v := range d.Metadata {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO document_metadata (document_id, key, value, search_value)
				 VALUES (?, ?, ?, ?)`,
				d.ID, k, v, normalize(v),
			); err != nil {
				return fmt.Errorf("insert metadata %q.%s: %w", d.ID, k, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.count = len(docs)
	return nil
}

// Search implements Store.
func (s *SQLiteStore) Search(ctx context.Context, query string) ([]SearchResult, error) {
	results := []SearchResult{}
	q := normalize(query)
	if q == "" {
		return results, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.title, d.url
		FROM documents d
		WHERE instr(d.search_title, ?) > 0
		   OR instr(d.search_text, ?) > 0
		   OR EXISTS (
		       SELECT 1 FROM document_metadata m
		       WHERE m.document_id = d.id AND instr(m.search_value, ?) > 0
		   )
		ORDER BY d.seq`,
		q, q, q,
	)
	if err != nil {
		return nil, fmt.Errorf("docstore: search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Title, &r.URL); err != nil {
			return nil, fmt.Errorf("docstore: search: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Fetch implements Store.
func (s *SQLiteStore) Fetch(ctx context.Context, id string) (Document, bool, error) {
	d := Document{ID: id, Metadata: map[string]string{}}
	err := s.db.QueryRowContext(ctx,
		`SELECT title, text, url FROM documents WHERE id = ?`, id,
	).Scan(&d.Title, &d.Text, &d.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, fmt.Errorf("docstore: fetch %q: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM document_metadata WHERE document_id = ?`, id,
	)
	if err != nil {
		return Document{}, false, fmt.Errorf("docstore: fetch %q metadata: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Document{}, false, fmt.Errorf("docstore: fetch %q metadata: %w", id, err)
		}
		d.Metadata[k] = v
	}
	if err := rows.Err(); err != nil {
		return Document{}, false, fmt.Errorf("docstore: fetch %q metadata: %w", id, err)
	}
	return d, true, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, url FROM documents ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("docstore: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]SearchResult, 0, s.count)
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Title, &r.URL); err != nil {
			return nil, fmt.Errorf("docstore: list: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Len implements Store.
func (s *SQLiteStore) Len() int { return s.count }

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
