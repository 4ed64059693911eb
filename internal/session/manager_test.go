package session

import (
	"context"
	"testing"
	"time"
)

func TestManager_OpenSubmitGet(t *testing.T) {
	m := NewManager(NewResponder(echoClassifier{prefix: "re: "}, 0))
	s := m.Open()

	got, ok := m.Get(s.ID())
	if !ok || got != s {
		t.Fatal("Get did not return the opened session")
	}

	ch, ok := m.Submit(s.ID(), "hello")
	if !ok {
		t.Fatal("Submit rejected")
	}
	turn, delivered := waitTurn(t, ch)
	if !delivered || turn.Content != "re: hello" {
		t.Errorf("turn = %+v, delivered = %v", turn, delivered)
	}
}

func TestManager_SubmitUnknownSession(t *testing.T) {
	m := NewManager(NewResponder(echoClassifier{}, 0))
	if _, ok := m.Submit("missing", "hello"); ok {
		t.Error("Submit accepted for an unknown session id")
	}
}

func TestManager_DiscardSuppressesPending(t *testing.T) {
	clock := newManualClock()
	r := NewResponder(echoClassifier{}, 0)
	r.after = clock.after
	m := NewManager(r)

	s := m.Open()
	ch, ok := m.Submit(s.ID(), "never answered")
	if !ok {
		t.Fatal("Submit rejected")
	}

	m.Discard(s.ID())

	if _, delivered := waitTurn(t, ch); delivered {
		t.Error("discarded session still received an assistant turn")
	}
	if len(s.Turns()) != 1 {
		t.Errorf("len(turns) = %d after discard, want 1", len(s.Turns()))
	}
	if _, ok := m.Get(s.ID()); ok {
		t.Error("discarded session still tracked")
	}
}

func TestManager_DrainWaitsForCompletions(t *testing.T) {
	m := NewManager(NewResponder(echoClassifier{}, 5*time.Millisecond))
	a := m.Open()
	b := m.Open()
	m.Submit(a.ID(), "one")
	m.Submit(b.ID(), "two")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.Drain(ctx); err != nil {
		t.Fatalf("Drain: %v", err)
	}

	if len(a.Turns()) != 2 || len(b.Turns()) != 2 {
		t.Errorf("turns after drain = %d/%d, want 2/2", len(a.Turns()), len(b.Turns()))
	}
}

func TestManager_DrainTimesOut(t *testing.T) {
	clock := newManualClock()
	r := NewResponder(echoClassifier{}, 0)
	r.after = clock.after
	m := NewManager(r)

	s := m.Open()
	m.Submit(s.ID(), "stuck")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := m.Drain(ctx); err == nil {
		t.Error("Drain returned nil while a completion was still pending")
	}

	m.Close()
}

func TestManager_CloseCancelsEverything(t *testing.T) {
	clock := newManualClock()
	r := NewResponder(echoClassifier{}, 0)
	r.after = clock.after
	m := NewManager(r)

	s := m.Open()
	ch, _ := m.Submit(s.ID(), "bye")

	m.Close()

	if _, delivered := waitTurn(t, ch); delivered {
		t.Error("assistant turn delivered after Close")
	}
	if _, ok := m.Get(s.ID()); ok {
		t.Error("session still tracked after Close")
	}
}
