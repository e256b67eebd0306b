package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
)

func newRecordedStore(t *testing.T, inner docstore.Store) (docstore.Store, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return TraceStore(inner, tp.Tracer("test")), rec
}

func attr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func seedStore(t *testing.T) docstore.Store {
	t.Helper()
	docs, err := docstore.DefaultCatalog()
	require.NoError(t, err)
	return docstore.NewMemStore(docs)
}

func TestTraceStore_Search(t *testing.T) {
	store, rec := newRecordedStore(t, seedStore(t))

	results, err := store.Search(context.Background(), "react")
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "docstore.Search", spans[0].Name())
	v, ok := attr(spans[0], "docstore.results")
	require.True(t, ok)
	assert.Equal(t, int64(len(results)), v.AsInt64())
}

func TestTraceStore_Fetch(t *testing.T) {
	store, rec := newRecordedStore(t, seedStore(t))

	_, found, err := store.Fetch(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	v, ok := attr(spans[0], "document.found")
	require.True(t, ok)
	assert.False(t, v.AsBool())
	assert.Equal(t, 7, store.Len())
}

type failingStore struct{ docstore.Store }

func (failingStore) List(context.Context) ([]docstore.SearchResult, error) {
	return nil, errors.New("database is closed")
}

func TestTraceStore_ErrorStatus(t *testing.T) {
	store, rec := newRecordedStore(t, failingStore{})

	_, err := store.List(context.Background())
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1, "error recorded as span event")
}

func TestNoop(t *testing.T) {
	tp := Noop()
	_, span := tp.StartSpan(context.Background(), "x")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestInitTracing(t *testing.T) {
	tp, err := InitTracing(context.Background(), Options{
		ServiceName:    "learners-coder-test",
		ServiceVersion: "test",
		Endpoint:       "127.0.0.1:4317",
		Insecure:       true,
		SampleRate:     1,
	})
	require.NoError(t, err)
	require.NotNil(t, tp.Tracer())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}
