// Package resources implements MCP resource handlers for the mentor.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (learners://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
	"github.com/zarndearc/learners-coder-mcp/internal/knowledge"
)

// Resource URIs.
const (
	IdentityURI = "learners://identity"
	CatalogURI  = "learners://catalog"
)

// Handler manages the mentor resource endpoints.
type Handler struct {
	store docstore.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store docstore.Store) *Handler {
	return &Handler{store: store}
}

// IdentityResource returns the MCP resource definition for the mentor identity.
func (h *Handler) IdentityResource() mcp.Resource {
	return mcp.NewResource(
		IdentityURI,
		"Mentor Identity",
		mcp.WithResourceDescription("Name, version, and teaching principles of the Learner's Coder mentor"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleIdentity returns the mentor identity as JSON.
func (h *Handler) HandleIdentity(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, knowledge.DefaultIdentity())
}

// CatalogResource returns the MCP resource definition for the document catalog.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		CatalogURI,
		"Knowledge Base Catalog",
		mcp.WithResourceDescription("Every document available to the search and fetch tools, as {id, title, url}"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog lists the documents in the store.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	docs, err := h.store.List(ctx)
	if err != nil {
		return errorResource(req.Params.URI, fmt.Sprintf("listing documents: %v", err)), nil
	}
	return jsonResource(req.Params.URI, map[string]any{
		"count":     len(docs),
		"documents": docs,
	})
}
