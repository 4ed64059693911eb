package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inboxiq/inboxiq/internal/session"
)

// assistantMsg carries a completed (or suppressed) assistant turn back
// into the update loop. sessionID identifies which session it belongs
// to; a result for a session the user has since reset is dropped.
type assistantMsg struct {
	sessionID string
	turn      session.Turn
	delivered bool
}

func awaitAssistant(sessionID string, ch <-chan session.Turn) tea.Cmd {
	return func() tea.Msg {
		turn, ok := <-ch
		return assistantMsg{sessionID: sessionID, turn: turn, delivered: ok}
	}
}

func (m Model) enterChat() (tea.Model, tea.Cmd) {
	if m.chat == nil {
		m.chat = m.manager.Open()
	}
	m.chatInput.Focus()
	m.mode = modeChat
	m.refreshChatView()
	return m, textinput.Blink
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.chatInput.Blur()
		m.mode = modeList
		return m, nil

	case "ctrl+n":
		// Fresh conversation: discarding cancels a pending response,
		// and its sessionID guard keeps any stale completion out.
		m.manager.Discard(m.chat.ID())
		m.chat = m.manager.Open()
		m.typing = false
		m.chatInput.SetValue("")
		m.refreshChatView()
		return m, nil

	case "tab":
		// Cycle the example queries into the input.
		if len(m.examples) > 0 {
			m.chatInput.SetValue(m.examples[m.exampleIdx])
			m.chatInput.CursorEnd()
			m.exampleIdx = (m.exampleIdx + 1) % len(m.examples)
		}
		return m, nil

	case "pgup":
		m.chatView.LineUp(3)
		return m, nil
	case "pgdown":
		m.chatView.LineDown(3)
		return m, nil

	case "enter":
		return m.submitChat()
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) submitChat() (tea.Model, tea.Cmd) {
	if m.typing {
		// One outstanding request at a time.
		return m, nil
	}

	text := strings.TrimSpace(m.chatInput.Value())
	ch, ok := m.manager.Submit(m.chat.ID(), text)
	if !ok {
		// Empty submission: no turn, no state change.
		return m, nil
	}

	m.chatInput.SetValue("")
	m.typing = true
	m.refreshChatView()
	return m, tea.Batch(awaitAssistant(m.chat.ID(), ch), m.spin.Tick)
}

func (m Model) updateAssistant(msg assistantMsg) (tea.Model, tea.Cmd) {
	if m.chat == nil || msg.sessionID != m.chat.ID() {
		// Stale completion from a discarded session.
		return m, nil
	}
	m.typing = false
	m.refreshChatView()
	return m, nil
}

// refreshChatView re-renders the conversation into the viewport and
// keeps it pinned to the latest turn.
func (m *Model) refreshChatView() {
	if m.chat == nil {
		return
	}

	turns := m.chat.Turns()
	if len(turns) == 0 {
		m.chatView.SetContent(m.renderChatEmpty())
		return
	}

	var b strings.Builder
	for _, t := range turns {
		switch t.Role {
		case session.RoleUser:
			b.WriteString(userBubbleStyle.Render("You") + " " + t.Content + "\n\n")
		case session.RoleAssistant:
			b.WriteString(assistantLabelStyle.Render("InboxIQ") + "\n")
			b.WriteString(m.renderMarkdown(t.Content))
			b.WriteString("\n")
		}
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content + "\n"
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return out
}

func (m Model) renderChatEmpty() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("What can I help with?") + "\n\n")
	b.WriteString(dimStyle.Render("  Examples of queries (Tab to fill):") + "\n")
	for _, q := range m.examples {
		b.WriteString(exampleStyle.Render("• "+q) + "\n")
	}
	return b.String()
}

func (m Model) chatStatusLine() string {
	if m.typing {
		return typingStyle.Render(m.spin.View() + " InboxIQ is typing...")
	}
	return helpStyle.Render("  Enter: send  Tab: example  Ctrl+N: new chat  Esc: inbox")
}
