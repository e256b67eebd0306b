package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/zarndearc/learners-coder-mcp/internal/server"
)

// Serve listens on the configured port until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func Serve(ctx context.Context, app *server.App) error {
	addr := net.JoinHostPort("", strconv.Itoa(app.Config.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return ServeListener(ctx, app, ln)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, app *server.App, ln net.Listener) error {
	rt := NewRouter(app)

	// Cancelling the base context ends open SSE streams, which would
	// otherwise hold Shutdown until the timeout.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	srv := &http.Server{
		Handler:           rt.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("Learner's Coder MCP listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("sse", SSEPath),
			zap.String("messages", MessagesPath),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	timeout := time.Duration(app.Config.Server.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	app.Logger.Info("shutting down http server")
	if err := rt.Shutdown(shutdownCtx); err != nil {
		app.Logger.Warn("closing SSE sessions", zap.Error(err))
	}
	cancelStreams()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
