package server

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mark3labs/mcp-go/server"
)

// SessionObserver is told when SSE sessions come and go.
type SessionObserver interface {
	SessionOpened()
	SessionClosed()
}

// Sessions tracks connected MCP sessions. It is the only mutable state
// shared between requests and is safe for concurrent use.
type Sessions struct {
	active sync.Map // session id -> struct{}
	count  atomic.Int64
	obs    SessionObserver
}

// NewSessions creates an empty registry. obs may be nil.
func NewSessions(obs SessionObserver) *Sessions {
	return &Sessions{obs: obs}
}

// Has reports whether id belongs to a connected session.
func (s *Sessions) Has(id string) bool {
	_, ok := s.active.Load(id)
	return ok
}

// Len returns the number of connected sessions.
func (s *Sessions) Len() int {
	return int(s.count.Load())
}

func (s *Sessions) add(id string) {
	if _, loaded := s.active.LoadOrStore(id, struct{}{}); loaded {
		return
	}
	s.count.Add(1)
	if s.obs != nil {
		s.obs.SessionOpened()
	}
}

func (s *Sessions) remove(id string) {
	if _, loaded := s.active.LoadAndDelete(id); !loaded {
		return
	}
	s.count.Add(-1)
	if s.obs != nil {
		s.obs.SessionClosed()
	}
}

// Hooks returns mcp-go hooks that keep the registry in sync with the
// server's own session bookkeeping.
func (s *Sessions) Hooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddOnRegisterSession(func(_ context.Context, session server.ClientSession) {
		s.add(session.SessionID())
	})
	hooks.AddOnUnregisterSession(func(_ context.Context, session server.ClientSession) {
		s.remove(session.SessionID())
	})
	return hooks
}
