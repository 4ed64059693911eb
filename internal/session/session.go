// Package session models a chat conversation: an append-only turn log
// per session and a responder that produces the assistant turn after a
// simulated latency. Sessions are independent; nothing is shared
// between them.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a session's history. Turns are immutable once
// appended. Content may carry markdown; the session treats it as
// opaque text.
type Turn struct {
	ID      string
	Role    Role
	Content string
}

// State is the session's turn-taking state.
type State int

const (
	// Idle means the session will accept a submission.
	Idle State = iota
	// AwaitingResponse means a user turn is in and the assistant turn
	// is pending; further submissions are rejected until it lands.
	AwaitingResponse
)

// Session owns an ordered, append-only turn list. The responder
// appends the assistant turn from its own goroutine, so access is
// guarded internally; callers never need a lock.
type Session struct {
	id string

	mu    sync.Mutex
	turns []Turn
	state State
}

// New creates an empty session in the Idle state.
func New() *Session {
	return &Session{id: uuid.New().String()}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Turns returns a snapshot of the history, in append order. The user
// turn of an exchange always precedes its assistant turn.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// State reports whether the session is idle or waiting on the
// assistant turn.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) append(t Turn) {
	s.mu.Lock()
	s.turns = append(s.turns, t)
	s.mu.Unlock()
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// beginExchange appends the user turn and moves to AwaitingResponse in
// one step. Returns false without touching the log if the session is
// already awaiting a response.
func (s *Session) beginExchange(t Turn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return false
	}
	s.turns = append(s.turns, t)
	s.state = AwaitingResponse
	return true
}
