// Package tools implements the MCP tool handlers of the mentor server.
//
// Each tool is a struct that receives its dependencies through its
// constructor and exposes Definition and Handle for registration with
// mcp-go. Tool handlers report user-facing problems as error results and
// reserve Go errors for failures of the server itself.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult encodes v as the single text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
