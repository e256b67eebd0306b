// Learner's Coder: a coding mentor MCP server.
//
// It teaches concepts, architecture and patterns instead of handing out
// complete implementations, and exposes that guidance to AI hosts over
// MCP (SSE or stdio) and to plain HTTP clients over POST /mcp.
//
// Usage:
//
//	learners-coder serve           # HTTP server: SSE transport, /mcp, /health, /metrics
//	learners-coder stdio           # MCP over stdio for local hosts
//	learners-coder ask "message"   # one-off mentor response as JSON
//	learners-coder version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
