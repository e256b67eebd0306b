package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the mentor-review MCP prompt.
// It asks the AI to review a planned stack against the production guidance.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("mentor-review",
		mcp.WithPromptDescription(
			"Review your planned stack against production recommendations, "+
				"security practices, and scalability tips.",
		),
		mcp.WithArgument("stack",
			mcp.ArgumentDescription("The stack or architecture you plan to use"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the mentor-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	stack := strings.TrimSpace(req.Params.Arguments["stack"])
	if stack == "" {
		return nil, fmt.Errorf("argument 'stack' is required")
	}

	return &mcp.GetPromptResult{
		Description: "Stack review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Here is the stack I plan to use: %s\n\n"+
						"Please run `mentor` with that description and view='full'. Then:\n"+
						"1. Compare my choices with the recommended tools and tech stack\n"+
						"2. Point out gaps against the security and scalability lists\n"+
						"3. Mention which production recommendations apply to me\n"+
						"4. Keep code to short snippets",
					stack,
				)),
			},
		},
	}, nil
}
