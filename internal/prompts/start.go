// Package prompts implements MCP prompt handlers for the mentor.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the mentor-start MCP prompt.
// It starts a concept-first learning session on a topic.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("mentor-start",
		mcp.WithPromptDescription(
			"Start a learning session with the Learner's Coder mentor. "+
				"The mentor asks clarifying questions and explains concepts "+
				"instead of writing the project for you.",
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("What you want to build or learn, e.g. 'MERN todo app'"),
		),
	)
}

// Handle processes the mentor-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := "a web application"
	if args := req.Params.Arguments; args != nil {
		if t, ok := args["topic"]; ok && strings.TrimSpace(t) != "" {
			topic = strings.TrimSpace(t)
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Learn: %s", topic),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to learn how to build %s.\n\n"+
						"Please:\n"+
						"1. Run `mentor` with message='%s'\n"+
						"2. Ask me the clarifying questions it returns, one at a time\n"+
						"3. Explain each concept in the breakdown with the small example it gives\n"+
						"4. Use `search` and `fetch` if a knowledge base document covers the topic\n\n"+
						"Do not write the complete project for me. I will assemble the final solution myself.",
					topic, topic,
				)),
			},
		},
	}, nil
}
