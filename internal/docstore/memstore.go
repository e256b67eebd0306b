package docstore

import (
	"context"
	"strings"
)

type memEntry struct {
	doc    Document
	fields []string // lower-cased title, text and metadata values
}

// MemStore is an in-process Store.
type MemStore struct {
	entries []memEntry
	byID    map[string]int
}

// NewMemStore builds a MemStore from docs. A repeated id replaces the
// earlier document in place.
func NewMemStore(docs []Document) *MemStore {
	docs = dedupe(docs)
	s := &MemStore{
		entries: make([]memEntry, 0, len(docs)),
		byID:    make(map[string]int, len(docs)),
	}
	for _, d := range docs {
		fields := []string{normalize(d.Title), normalize(d.Text)}
		for _, v := range d.Metadata {
			fields = append(fields, normalize(v))
		}
		s.byID[d.ID] = len(s.entries)
		s.entries = append(s.entries, memEntry{doc: d, fields: fields})
	}
	return s
}

// Search implements Store.
func (s *MemStore) Search(_ context.Context, query string) ([]SearchResult, error) {
	results := []SearchResult{}
	q := normalize(query)
	if q == "" {
		return results, nil
	}
	for _, e := range s.entries {
		if matchesAny(e.fields, q) {
			results = append(results, summary(e.doc))
		}
	}
	return results, nil
}

// Fetch implements Store.
func (s *MemStore) Fetch(_ context.Context, id string) (Document, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return Document{}, false, nil
	}
	return clone(s.entries[i].doc), true, nil
}

// List implements Store.
func (s *MemStore) List(context.Context) ([]SearchResult, error) {
	out := make([]SearchResult, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, summary(e.doc))
	}
	return out, nil
}

// Len implements Store.
func (s *MemStore) Len() int { return len(s.entries) }

// Close implements Store. It is a no-op.
func (s *MemStore) Close() error { return nil }

func matchesAny(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}

func summary(d Document) SearchResult {
	return SearchResult{ID: d.ID, Title: d.Title, URL: d.URL}
}
