// Package docstore provides the read-only document collection behind the
// search and fetch tools.
//
// A Store is built once from the full document list and never changes
// afterwards. Two backends exist: MemStore keeps everything in process
// memory and SQLiteStore keeps the documents in an SQLite database (an
// in-memory one by default). Both implement the same matching rules:
//
//   - Search is a case-insensitive substring match against the title, the
//     text and every metadata value. An empty query matches nothing.
//   - Results come back in insertion order and are not ranked.
//   - Fetch is an exact id lookup.
package docstore

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Document is one knowledge base entry.
type Document struct {
	ID       string            `json:"id" yaml:"id" validate:"required"`
	Title    string            `json:"title" yaml:"title" validate:"required"`
	Text     string            `json:"text" yaml:"text"`
	URL      string            `json:"url" yaml:"url" validate:"required"`
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// SearchResult is the summary returned for a search hit.
type SearchResult struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Store is a read-only document collection.
type Store interface {
	// Search returns every document matching query, in insertion order.
	// The result is never nil.
	Search(ctx context.Context, query string) ([]SearchResult, error)
	// Fetch returns the document with the given id. found is false when
	// no such document exists.
	Fetch(ctx context.Context, id string) (doc Document, found bool, err error)
	// List returns a summary of every document in insertion order.
	List(ctx context.Context) ([]SearchResult, error)
	// Len reports the number of documents.
	Len() int
	Close() error
}

// NotFoundTitle is the title of the placeholder returned for unknown ids.
const NotFoundTitle = "Not Found"

// NotFound returns the placeholder document for an unknown id.
func NotFound(id string) Document {
	return Document{
		ID:       id,
		Title:    NotFoundTitle,
		Text:     "Document not found",
		URL:      "#",
		Metadata: map[string]string{},
	}
}

// FetchOrPlaceholder fetches id from s and substitutes the NotFound
// placeholder on a miss.
func FetchOrPlaceholder(ctx context.Context, s Store, id string) (Document, bool, error) {
	doc, found, err := s.Fetch(ctx, id)
	if err != nil {
		return Document{}, false, err
	}
	if !found {
		return NotFound(id), false, nil
	}
	return doc, true, nil
}

// Config selects and configures a backend.
type Config struct {
	Backend string
	// Path is the SQLite database location. Empty means an in-memory
	// database.
	Path string
}

// Open builds a Store holding docs.
func Open(ctx context.Context, cfg Config, docs []Document) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemStore(docs), nil
	case BackendSQLite:
		return NewSQLiteStore(ctx, cfg.Path, docs)
	default:
		return nil, fmt.Errorf("docstore: unknown backend %q", cfg.Backend)
	}
}

// normalize lower-cases s for matching. Both backends use it so they agree
// on case folding.
func normalize(s string) string {
	return strings.ToLower(s)
}

// dedupe keeps the last document for each id at the position where the id
// first appeared.
func dedupe(docs []Document) []Document {
	pos := make(map[string]int, len(docs))
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		d = clone(d)
		if i, ok := pos[d.ID]; ok {
			out[i] = d
			continue
		}
		pos[d.ID] = len(out)
		out = append(out, d)
	}
	return out
}

func clone(d Document) Document {
	md := make(map[string]string, len(d.Metadata))
	for k, v := range d.Metadata {
		md[k] = v
	}
	d.Metadata = md
	return d
}
