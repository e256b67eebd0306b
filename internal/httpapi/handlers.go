package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
	"github.com/zarndearc/learners-coder-mcp/internal/server"
)

// Service names reported by the info and health endpoints.
const (
	ServiceName       = "Learner's Coder MCP"
	HealthServiceName = "Learner's Coder MCP - Enterprise Edition"
)

// maxBodyBytes bounds POST /mcp bodies.
const maxBodyBytes = 1 << 20

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// InfoResponse is the GET / payload.
type InfoResponse struct {
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Status       string            `json:"status"`
	Description  string            `json:"description"`
	Endpoints    map[string]string `json:"endpoints"`
	Capabilities []string          `json:"capabilities"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status                string   `json:"status"`
	Timestamp             string   `json:"timestamp"`
	Service               string   `json:"service"`
	Capabilities          []string `json:"capabilities"`
	PaymentGateways       []string `json:"paymentGateways"`
	InfrastructureSupport []string `json:"infrastructureSupport"`
}

// MentorRequest is the POST /mcp body.
type MentorRequest struct {
	Message string `json:"message"`
	View    string `json:"view,omitempty"`
}

// root serves service info, or the SSE stream for clients that were
// given the base URL instead of /sse.
func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		rt.stream(w, r)
		return
	}

	svc := rt.app.Knowledge.Service()
	writeJSON(w, http.StatusOK, InfoResponse{
		Service:     ServiceName,
		Version:     server.Version,
		Status:      "operational",
		Description: svc.Description,
		Endpoints: map[string]string{
			"root":     "GET /",
			"health":   "GET /health",
			"sse":      "GET /sse/ - MCP SSE endpoint",
			"messages": "POST /sse/messages - MCP message endpoint (JSON-RPC)",
			"mcp":      "POST /mcp - Legacy MCP endpoint",
		},
		Capabilities: svc.Capabilities,
	})
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	svc := rt.app.Knowledge.Service()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:                "healthy",
		Timestamp:             time.Now().UTC().Format(isoMillis),
		Service:               HealthServiceName,
		Capabilities:          svc.HealthCapabilities,
		PaymentGateways:       svc.PaymentGateways,
		InfrastructureSupport: svc.InfrastructureSupport,
	})
}

// legacyMentor answers POST /mcp. A missing body or message is treated as
// an empty message; the view comes from the body or the ?view= query.
func (rt *Router) legacyMentor(w http.ResponseWriter, r *http.Request) {
	var req MentorRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.View == "" {
		req.View = r.URL.Query().Get("view")
	}

	ctx, span := rt.app.Tracer.StartSpan(r.Context(), "mentor.Respond")
	defer span.End()

	resp := rt.app.Assembler.Respond(req.Message, mentor.ParseView(req.View))
	span.SetAttributes(
		attribute.String("mentor.intent", string(resp.Intent)),
		attribute.String("mentor.view", string(resp.View)),
		attribute.Bool("mentor.blocked", resp.Decision.Blocked),
	)
	rt.app.Metrics.MentorAnswered(resp.Intent, resp.View)

	rt.logger.Debug("mentor response",
		zap.String("intent", string(resp.Intent)),
		zap.String("view", string(resp.View)),
		zap.Bool("blocked", resp.Decision.Blocked),
		zap.String("traceID", trace.SpanContextFromContext(ctx).TraceID().String()),
	)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
