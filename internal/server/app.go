package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zarndearc/learners-coder-mcp/internal/config"
	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
	"github.com/zarndearc/learners-coder-mcp/internal/knowledge"
	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
	"github.com/zarndearc/learners-coder-mcp/internal/metrics"
	"github.com/zarndearc/learners-coder-mcp/internal/policy"
	"github.com/zarndearc/learners-coder-mcp/internal/tracing"
)

// App owns every long-lived dependency of a running server.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Knowledge *knowledge.Base
	Store     docstore.Store
	Assembler *mentor.Assembler
	Metrics   *metrics.Metrics
	Tracer    *tracing.TracerProvider
	MCP       *MCP
}

// Build resolves every dependency from cfg. On error, anything already
// opened is released before returning.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	kb, err := knowledge.Load()
	if err != nil {
		return nil, fmt.Errorf("loading knowledge tables: %w", err)
	}

	docs, err := docstore.Catalog(cfg.Docstore.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading document catalog: %w", err)
	}

	var store docstore.Store
	store, err = docstore.Open(ctx, cfg.Docstore.StoreConfig(), docs)
	if err != nil {
		return nil, fmt.Errorf("opening document store: %w", err)
	}

	tracer := tracing.Noop()
	if cfg.Tracing.Enabled {
		tracer, err = tracing.InitTracing(ctx, tracing.Options{
			ServiceName:    cfg.Tracing.ServiceName,
			ServiceVersion: Version,
			Endpoint:       cfg.Tracing.Endpoint,
			Insecure:       cfg.Tracing.Insecure,
			SampleRate:     cfg.Tracing.SampleRate,
		})
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("initializing tracing: %w", err)
		}
		store = tracing.TraceStore(store, tracer.Tracer())
	}

	m := metrics.New()
	m.DocumentsIndexed.Set(float64(store.Len()))

	assembler := mentor.New(kb,
		mentor.WithEvaluator(policy.NewEvaluator(cfg.Teaching.Strict)),
		mentor.WithLimits(cfg.Teaching.Limits()),
	)

	srv := New(Deps{
		Store:     store,
		Assembler: assembler,
		Observer:  m,
		Sessions:  NewSessions(m),
	})

	logger.Info("server dependencies ready",
		zap.String("version", Version),
		zap.String("docstore", cfg.Docstore.Backend),
		zap.Int("documents", store.Len()),
		zap.Bool("strict_teaching", cfg.Teaching.Strict),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Knowledge: kb,
		Store:     store,
		Assembler: assembler,
		Metrics:   m,
		Tracer:    tracer,
		MCP:       srv,
	}, nil
}

// Close releases the document store and flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing document store: %w", err))
	}
	if err := a.Tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down tracing: %w", err))
	}
	return errors.Join(errs...)
}
