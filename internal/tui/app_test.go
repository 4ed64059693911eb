package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxiq/inboxiq/internal/intent"
	"github.com/inboxiq/inboxiq/internal/mailbox"
	"github.com/inboxiq/inboxiq/internal/session"
)

func testModel(t *testing.T) Model {
	t.Helper()
	mgr := session.NewManager(session.NewResponder(intent.NewRouter(nil, ""), 0))
	return NewModel(mailbox.Seed(), mgr, intent.ExampleQueries(), "Tester")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModel_ShowsAllRecords(t *testing.T) {
	m := testModel(t)
	if len(m.filtered) != 7 {
		t.Errorf("filtered = %d records, want the full seed inbox", len(m.filtered))
	}
}

func TestApplyFilter_SearchNarrowsList(t *testing.T) {
	m := testModel(t)
	m.searchInput.SetValue("dad's")
	m.applyFilter()

	if len(m.filtered) != 1 || m.filtered[0].ID != "6" {
		t.Errorf("filtered after search = %v, want only record 6", m.filtered)
	}

	m.searchInput.SetValue("")
	m.applyFilter()
	if len(m.filtered) != 7 {
		t.Errorf("clearing the query left %d records, want 7", len(m.filtered))
	}
}

func TestFolderCycle_UnreadAndStarred(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.folder != folderUnread {
		t.Fatalf("folder after tab = %v, want unread", m.folder)
	}
	for _, r := range m.filtered {
		if r.Read {
			t.Errorf("unread folder contains read record %s", r.ID)
		}
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.folder != folderStarred {
		t.Fatalf("folder = %v, want starred", m.folder)
	}
	for _, r := range m.filtered {
		if !r.Starred {
			t.Errorf("starred folder contains unstarred record %s", r.ID)
		}
	}
}

func TestStarToggle_UpdatesCanonicalList(t *testing.T) {
	m := testModel(t)
	id := m.filtered[0].ID
	wasStarred := m.filtered[0].Starred

	next, _ := m.Update(keyMsg("s"))
	m = next.(Model)

	if m.emails[0].ID != id {
		t.Fatal("toggle reordered the canonical list")
	}
	if m.emails[0].Starred == wasStarred {
		t.Error("toggle did not flip Starred on the canonical list")
	}
}

func TestEnter_MarksReadBeforeFiltering(t *testing.T) {
	m := testModel(t)

	// Switch to the unread facet, then open the first message: it must
	// be marked read on the canonical list and drop out of the facet.
	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	unreadBefore := len(m.filtered)
	if unreadBefore == 0 {
		t.Fatal("seed has no unread records")
	}
	openedID := m.filtered[0].ID

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)

	if m.mode != modeDetail {
		t.Errorf("mode = %v, want detail", m.mode)
	}
	for _, r := range m.emails {
		if r.ID == openedID && !r.Read {
			t.Error("opened record not marked read on canonical list")
		}
	}
	if len(m.filtered) != unreadBefore-1 {
		t.Errorf("unread facet has %d records, want %d (stale flag used for filtering)",
			len(m.filtered), unreadBefore-1)
	}
}

func TestChat_StaleAssistantMessageDropped(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)
	if m.mode != modeChat || m.chat == nil {
		t.Fatal("chat mode not entered")
	}
	staleID := m.chat.ID()

	// New conversation discards the old session.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(Model)
	if m.chat.ID() == staleID {
		t.Fatal("ctrl+n did not open a fresh session")
	}

	next, _ = m.Update(assistantMsg{sessionID: staleID, delivered: true,
		turn: session.Turn{Role: session.RoleAssistant, Content: "late"}})
	m = next.(Model)

	if m.typing {
		t.Error("stale completion flipped the typing indicator")
	}
	if got := len(m.chat.Turns()); got != 0 {
		t.Errorf("fresh session has %d turns after stale completion, want 0", got)
	}
}

func TestQuit_LeavesPendingResponseDrainable(t *testing.T) {
	mgr := session.NewManager(session.NewResponder(intent.NewRouter(nil, ""), 50*time.Millisecond))
	m := NewModel(mailbox.Seed(), mgr, intent.ExampleQueries(), "Tester")

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)
	m.chatInput.SetValue("summarize my inbox")
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if !m.typing {
		t.Fatal("submission did not start a response")
	}
	id := m.chat.ID()

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if !m.quitting {
		t.Fatal("ctrl+c did not quit")
	}

	// Quitting must not cancel the session; the owner drains it.
	s, ok := mgr.Get(id)
	if !ok {
		t.Fatal("quit discarded the session with a response pending")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := mgr.Drain(ctx); err != nil {
		t.Fatalf("Drain after quit: %v", err)
	}
	if got := len(s.Turns()); got != 2 {
		t.Errorf("turns after drain = %d, want user and assistant", got)
	}
}

func TestChat_EmptySubmitIsNoOp(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)

	m.chatInput.SetValue("   ")
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)

	if m.typing {
		t.Error("empty submission started a response")
	}
	if got := len(m.chat.Turns()); got != 0 {
		t.Errorf("empty submission appended %d turns", got)
	}
}
