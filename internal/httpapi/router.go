// Package httpapi exposes the mentor over HTTP: the MCP SSE transport,
// the legacy POST /mcp endpoint, service info, health and metrics.
package httpapi

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/zarndearc/learners-coder-mcp/internal/server"
)

// MCP SSE routes.
const (
	SSEPath      = "/sse"
	MessagesPath = "/sse/messages"
)

// Router wires HTTP routes to a built App.
type Router struct {
	app    *server.App
	sse    *mcpserver.SSEServer
	logger *zap.Logger
}

// NewRouter creates the router and the SSE transport for app.
func NewRouter(app *server.App) *Router {
	opts := []mcpserver.SSEOption{
		mcpserver.WithSSEEndpoint(SSEPath),
		mcpserver.WithMessageEndpoint(MessagesPath),
		mcpserver.WithKeepAliveInterval(30 * time.Second),
	}
	if app.Config.Server.BaseURL != "" {
		opts = append(opts, mcpserver.WithBaseURL(app.Config.Server.BaseURL))
	}

	return &Router{
		app:    app,
		sse:    mcpserver.NewSSEServer(app.MCP.Server, opts...),
		logger: app.Logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(rt.logger))
	router.Use(Instrument(rt.app.Metrics))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:     rt.app.Config.CORS.AllowedOrigins,
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		ExposedHeaders:     []string{RequestIDHeader},
		OptionsPassthrough: true,
		MaxAge:             300,
	}))

	router.Get("/", rt.root)
	router.Get("/health", rt.health)

	// Both /sse and /sse/ so hosting redirects do not change behaviour.
	router.Get(SSEPath, rt.stream)
	router.Get(SSEPath+"/", rt.stream)
	router.Post(MessagesPath, rt.messages)

	router.Post("/mcp", rt.legacyMentor)

	if rt.app.Config.Metrics.Enabled {
		router.Method(http.MethodGet, rt.app.Config.Metrics.Path, rt.app.Metrics.Handler())
	}

	for _, path := range []string{"/", "/health", SSEPath, SSEPath + "/", MessagesPath, "/mcp"} {
		router.Options(path, rt.preflight)
	}

	return router
}

// Shutdown closes open SSE sessions so http.Server.Shutdown can finish.
func (rt *Router) Shutdown(ctx context.Context) error {
	return rt.sse.Shutdown(ctx)
}

func (rt *Router) stream(w http.ResponseWriter, r *http.Request) {
	rt.sse.SSEHandler().ServeHTTP(w, r)
}

// messages forwards a JSON-RPC message to the session's transport after
// checking the session id against the registry.
func (rt *Router) messages(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeText(w, http.StatusBadRequest, "Missing sessionId parameter")
		return
	}
	if !rt.app.MCP.Sessions.Has(sessionID) {
		writeText(w, http.StatusNotFound, "Session not found")
		return
	}
	rt.sse.MessageHandler().ServeHTTP(w, r)
}

// preflight answers OPTIONS requests. The cors middleware has already set
// the Access-Control headers for real preflights; bare OPTIONS probes get
// the wildcard headers when every origin is allowed.
func (rt *Router) preflight(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	if h.Get("Access-Control-Allow-Origin") == "" && slices.Contains(rt.app.Config.CORS.AllowedOrigins, "*") {
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	}
	w.WriteHeader(http.StatusNoContent)
}
