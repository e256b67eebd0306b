package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
)

// MentorTool exposes the mentor pipeline as an MCP tool, mirroring the
// legacy POST /mcp endpoint.
type MentorTool struct {
	observed
	assembler *mentor.Assembler
}

// NewMentorTool creates a MentorTool.
func NewMentorTool(a *mentor.Assembler) *MentorTool {
	return &MentorTool{assembler: a}
}

// Definition returns the MCP tool definition for registration.
func (t *MentorTool) Definition() mcp.Tool {
	return mcp.NewTool("mentor",
		mcp.WithDescription(
			"Ask the Learner's Coder mentor about what you are building. "+
				"Returns the detected intent, clarifying questions and a concept breakdown. "+
				"With view='full' it also returns tools, tech stacks, production advice, "+
				"and payment or infrastructure guidance, with code examples shortened to snippets.",
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("What you are building or trying to learn"),
		),
		mcp.WithString("view",
			mcp.Description("Response view: 'concepts' (default) or 'full'"),
			mcp.Enum(string(mentor.ViewConcepts), string(mentor.ViewFull)),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the mentor tool call. An empty message is answered like
// any other message.
func (t *MentorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := req.GetString("message", "")
	view := mentor.ParseView(req.GetString("view", ""))

	resp := t.assembler.Respond(message, view)
	t.answered(resp.Intent, resp.View)
	t.called("mentor", false)
	return jsonResult(resp)
}
