package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
)

// SearchTool handles the search MCP tool used by connectors and deep
// research clients.
type SearchTool struct {
	observed
	store docstore.Store
}

// NewSearchTool creates a SearchTool over store.
func NewSearchTool(store docstore.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the Learner's Coder knowledge base and return a list of relevant results."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

type searchPayload struct {
	Results []docstore.SearchResult `json:"results"`
}

// Handle processes the search tool call. The result is one text content
// holding {"results":[{id,title,url}]}, even when nothing matched.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")

	results, err := t.store.Search(ctx, query)
	if err != nil {
		t.called("search", true)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if results == nil {
		results = []docstore.SearchResult{}
	}

	t.called("search", false)
	return jsonResult(searchPayload{Results: results})
}
