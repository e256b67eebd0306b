// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on
// abstractions. No teaching logic lives here, only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
	"github.com/zarndearc/learners-coder-mcp/internal/prompts"
	"github.com/zarndearc/learners-coder-mcp/internal/resources"
	"github.com/zarndearc/learners-coder-mcp/internal/tools"
)

// Name is the MCP server name announced during initialize.
const Name = "learners-coder"

// Version is set at build time via ldflags.
var Version = "2.0.0"

// Deps are the collaborators the MCP server is built from.
type Deps struct {
	Store     docstore.Store
	Assembler *mentor.Assembler
	// Observer receives tool activity. Optional.
	Observer tools.Observer
	// Sessions receives session lifecycle events. Optional: a fresh
	// registry is created when nil.
	Sessions *Sessions
}

// MCP bundles the configured server with its session registry.
type MCP struct {
	Server   *server.MCPServer
	Sessions *Sessions
}

// New creates and configures the MCP server with all tools, prompts and
// resources registered.
func New(d Deps) *MCP {
	sessions := d.Sessions
	if sessions == nil {
		sessions = NewSessions(nil)
	}

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithHooks(sessions.Hooks()),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	searchTool := tools.NewSearchTool(d.Store)
	searchTool.SetObserver(d.Observer)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	fetchTool := tools.NewFetchTool(d.Store)
	fetchTool.SetObserver(d.Observer)
	s.AddTool(fetchTool.Definition(), fetchTool.Handle)

	mentorTool := tools.NewMentorTool(d.Assembler)
	mentorTool.SetObserver(d.Observer)
	s.AddTool(mentorTool.Definition(), mentorTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(d.Store)
	s.AddResource(resourceHandler.IdentityResource(), resourceHandler.HandleIdentity)
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)

	return &MCP{Server: s, Sessions: sessions}
}

// serverInstructions returns the system instructions that tell the AI
// how to use the mentor.
func serverInstructions() string {
	return `You have access to Learner's Coder, a coding mentor MCP server.

## PURPOSE

Learner's Coder helps people LEARN to build software. It teaches concepts,
architecture and patterns. It does not hand out complete implementations,
and neither should you while using it.

## TOOLS

- mentor: send the user's request as "message". The response carries the
  detected intent, clarifying questions and a concept breakdown. Pass
  view="full" to also get tools, tech stacks, production advice and, when
  relevant, payment gateway or infrastructure guidance.
- search: find knowledge base documents by keyword ("query").
- fetch: read one document by "id" (ids come from search results).

## HOW TO TEACH WITH IT

1. Call mentor first for any "how do I build..." request
2. Ask the clarifying questions before explaining anything
3. Walk through the concepts one at a time with their small examples
4. Point at documents from search/fetch for deeper reading
5. Let the user write the final code; review it instead of replacing it

## TEACHING POLICY

If the user asks for "the full code" or "the complete project", the mentor
answers with a refusal note and switches to concept snippets. Respect it:
explain the pieces and show short snippets only.

Code examples in mentor responses are already shortened. Never expand
them into a complete program.`
}
