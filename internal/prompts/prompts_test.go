package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, res *mcp.GetPromptResult) string {
	t.Helper()
	if res == nil || len(res.Messages) != 1 {
		t.Fatalf("messages = %v, want exactly one", res)
	}
	tc, ok := res.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Messages[0].Content)
	}
	return tc.Text
}

func TestStartPrompt_Definition(t *testing.T) {
	def := NewStartPrompt().Definition()
	if def.Name != "mentor-start" {
		t.Errorf("name = %q, want mentor-start", def.Name)
	}
	if len(def.Arguments) != 1 || def.Arguments[0].Name != "topic" {
		t.Errorf("arguments = %+v", def.Arguments)
	}
}

func TestStartPrompt_Handle(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"topic": "  MERN todo app "}

	res, err := NewStartPrompt().Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	text := promptText(t, res)
	if !strings.Contains(text, "message='MERN todo app'") {
		t.Errorf("prompt does not pass the topic to mentor:\n%s", text)
	}
	if res.Description != "Learn: MERN todo app" {
		t.Errorf("description = %q", res.Description)
	}
}

func TestStartPrompt_DefaultTopic(t *testing.T) {
	res, err := NewStartPrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(promptText(t, res), "a web application") {
		t.Error("default topic missing")
	}
}

func TestReviewPrompt_Handle(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"stack": "Express + Postgres"}

	res, err := NewReviewPrompt().Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	text := promptText(t, res)
	if !strings.Contains(text, "Express + Postgres") || !strings.Contains(text, "view='full'") {
		t.Errorf("unexpected prompt:\n%s", text)
	}
}

func TestReviewPrompt_MissingStack(t *testing.T) {
	if _, err := NewReviewPrompt().Handle(context.Background(), mcp.GetPromptRequest{}); err == nil {
		t.Fatal("expected error for missing stack")
	}
}
