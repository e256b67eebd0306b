package tools

import (
	"github.com/zarndearc/learners-coder-mcp/internal/intent"
	"github.com/zarndearc/learners-coder-mcp/internal/mentor"
)

// Observer is notified about tool activity. It's an optional dependency:
// tools work fine with a nil observer.
type Observer interface {
	// ToolCalled is called once per Handle with the tool name and whether
	// the call produced an error result.
	ToolCalled(tool string, failed bool)
	// FetchMissed is called when fetch falls back to the placeholder.
	FetchMissed(id string)
	// MentorAnswered is called after the mentor tool built a response.
	MentorAnswered(tag intent.Tag, view mentor.View)
}

// observed is embedded by every tool to share the nil-safe observer hooks.
type observed struct {
	obs Observer
}

// SetObserver attaches an observer. Passing nil detaches it.
func (o *observed) SetObserver(obs Observer) {
	o.obs = obs
}

func (o *observed) called(tool string, failed bool) {
	if o.obs == nil {
		return
	}
	o.obs.ToolCalled(tool, failed)
}

func (o *observed) fetchMissed(id string) {
	if o.obs == nil {
		return
	}
	o.obs.FetchMissed(id)
}

func (o *observed) answered(tag intent.Tag, view mentor.View) {
	if o.obs == nil {
		return
	}
	o.obs.MentorAnswered(tag, view)
}
