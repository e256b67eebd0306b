package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
)

// FetchTool handles the fetch MCP tool.
type FetchTool struct {
	observed
	store docstore.Store
}

// NewFetchTool creates a FetchTool over store.
func NewFetchTool(store docstore.Store) *FetchTool {
	return &FetchTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *FetchTool) Definition() mcp.Tool {
	return mcp.NewTool("fetch",
		mcp.WithDescription("Fetch the full contents of a knowledge base document by its id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Document id"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the fetch tool call. Unknown ids produce the
// "Not Found" placeholder document, not an error.
func (t *FetchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")

	doc, found, err := docstore.FetchOrPlaceholder(ctx, t.store, id)
	if err != nil {
		t.called("fetch", true)
		return mcp.NewToolResultError(fmt.Sprintf("fetch failed: %v", err)), nil
	}
	if !found {
		t.fetchMissed(id)
	}

	t.called("fetch", false)
	return jsonResult(doc)
}
