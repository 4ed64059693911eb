package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is the simulated think time before the assistant turn
// is appended.
const DefaultDelay = 1500 * time.Millisecond

// Classifier turns a user message into a response. It must be total:
// always a response, never an error.
type Classifier interface {
	Classify(message string) string
}

// Responder drives a session's Idle -> AwaitingResponse -> Idle cycle.
// The latency is simulation only, not a reliability mechanism; there is
// no retry and no queueing.
type Responder struct {
	classifier Classifier
	delay      time.Duration

	// after is time.After unless a test swaps it out to control the
	// clock deterministically.
	after func(time.Duration) <-chan time.Time
}

// NewResponder creates a Responder with the given classifier and
// delay. A negative delay means DefaultDelay; zero is honored so tests
// and one-shot commands can skip the wait.
func NewResponder(c Classifier, delay time.Duration) *Responder {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Responder{classifier: c, delay: delay, after: time.After}
}

// Submit submits user text to a session. The trimmed text is rejected
// (nil channel, false) if it is empty or if the session already has a
// response pending; rejection appends nothing and changes no state.
//
// On acceptance the user turn is appended synchronously, the session
// moves to AwaitingResponse, and after the delay the classified
// assistant turn is appended and delivered on the returned channel
// with the session back at Idle.
//
// Cancelling ctx before the delay elapses suppresses the assistant
// turn entirely: nothing is appended, the channel is closed without a
// value, and the session returns to Idle. Callers that discard a
// session cancel its context so no completion can reach a defunct
// turn list.
func (r *Responder) Submit(ctx context.Context, s *Session, text string) (<-chan Turn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	user := Turn{ID: uuid.New().String(), Role: RoleUser, Content: text}
	if !s.beginExchange(user) {
		return nil, false
	}

	done := make(chan Turn, 1)
	go func() {
		defer close(done)

		select {
		case <-r.after(r.delay):
		case <-ctx.Done():
			s.setState(Idle)
			return
		}

		assistant := Turn{
			ID:      uuid.New().String(),
			Role:    RoleAssistant,
			Content: r.classifier.Classify(text),
		}
		s.append(assistant)
		s.setState(Idle)
		done <- assistant
	}()

	return done, true
}

// Delay reports the configured simulated latency.
func (r *Responder) Delay() time.Duration { return r.delay }
