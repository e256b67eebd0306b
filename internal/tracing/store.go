package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
)

// TraceStore wraps a document store with tracing.
func TraceStore(store docstore.Store, tracer trace.Tracer) docstore.Store {
	return &tracedStore{
		inner:  store,
		tracer: tracer,
	}
}

type tracedStore struct {
	inner  docstore.Store
	tracer trace.Tracer
}

func (s *tracedStore) Search(ctx context.Context, query string) ([]docstore.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "docstore.Search",
		trace.WithAttributes(attribute.String("docstore.query", query)),
	)
	defer span.End()

	results, err := s.inner.Search(ctx, query)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("docstore.results", len(results)))
	return results, nil
}

func (s *tracedStore) Fetch(ctx context.Context, id string) (docstore.Document, bool, error) {
	ctx, span := s.tracer.Start(ctx, "docstore.Fetch",
		trace.WithAttributes(attribute.String("document.id", id)),
	)
	defer span.End()

	doc, found, err := s.inner.Fetch(ctx, id)
	if err != nil {
		recordError(span, err)
		return doc, found, err
	}
	span.SetAttributes(attribute.Bool("document.found", found))
	return doc, found, nil
}

func (s *tracedStore) List(ctx context.Context) ([]docstore.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "docstore.List")
	defer span.End()

	docs, err := s.inner.List(ctx)
	if err != nil {
		recordError(span, err)
	}
	return docs, err
}

func (s *tracedStore) Len() int { return s.inner.Len() }

func (s *tracedStore) Close() error { return s.inner.Close() }

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
