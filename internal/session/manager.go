package session

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Manager tracks live sessions and the context guarding each one's
// pending completion. Discarding a session cancels its context, so a
// response still in flight is suppressed instead of appending to a
// defunct session.
type Manager struct {
	responder *Responder

	mu       sync.Mutex
	sessions map[string]*tracked
}

type tracked struct {
	session *Session
	cancel  context.CancelFunc
	ctx     context.Context
	pending <-chan Turn
}

// NewManager creates a Manager that submits through r.
func NewManager(r *Responder) *Manager {
	return &Manager{responder: r, sessions: make(map[string]*tracked)}
}

// Open creates and tracks a new session.
func (m *Manager) Open() *Session {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.sessions[s.ID()] = &tracked{session: s, cancel: cancel, ctx: ctx}
	m.mu.Unlock()
	return s
}

// Get returns a tracked session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return t.session, true
}

// Submit routes user text to the session with the given id. It carries
// the session's own context, so Discard suppresses the completion.
func (m *Manager) Submit(id, text string) (<-chan Turn, bool) {
	m.mu.Lock()
	t, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}

	ch, ok := m.responder.Submit(t.ctx, t.session, text)
	if !ok {
		return nil, false
	}

	m.mu.Lock()
	t.pending = ch
	m.mu.Unlock()
	return ch, true
}

// Discard stops tracking a session and cancels any pending completion.
func (m *Manager) Discard(id string) {
	m.mu.Lock()
	t, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		t.cancel()
	}
}

// Drain waits until every tracked session's pending completion has
// either landed or been suppressed. ctx bounds the wait.
func (m *Manager) Drain(ctx context.Context) error {
	m.mu.Lock()
	var pending []<-chan Turn
	for _, t := range m.sessions {
		if t.pending != nil {
			pending = append(pending, t.pending)
		}
	}
	m.mu.Unlock()

	g, gCtx := errgroup.WithContext(ctx)
	for _, ch := range pending {
		ch := ch
		g.Go(func() error {
			select {
			case <-ch:
				return nil
			case <-gCtx.Done():
				return gCtx.Err()
			}
		})
	}
	return g.Wait()
}

// Close discards every session, cancelling all pending completions.
func (m *Manager) Close() {
	m.mu.Lock()
	all := make([]*tracked, 0, len(m.sessions))
	for id, t := range m.sessions {
		all = append(all, t)
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	for _, t := range all {
		t.cancel()
	}
}
