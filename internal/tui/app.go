// Package tui is the terminal rendition of the InboxIQ demo: an inbox
// list with live search, a message view, and the assistant chat pane.
// It is a pure collaborator of the engine packages; all mail state
// lives in the model's canonical record slice and all chat state in
// the session manager.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/inboxiq/inboxiq/internal/mailbox"
	"github.com/inboxiq/inboxiq/internal/session"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
	modeChat
)

type folder int

const (
	folderInbox folder = iota
	folderUnread
	folderStarred
)

func (f folder) String() string {
	switch f {
	case folderUnread:
		return "unread"
	case folderStarred:
		return "starred"
	default:
		return "inbox"
	}
}

type Model struct {
	// emails is the canonical list; every flag mutation goes through
	// the mailbox ops on this slice before any filtering.
	emails   []mailbox.Record
	filtered []mailbox.Record

	cursor int
	offset int
	width  int
	height int
	mode   mode
	folder folder

	userName    string
	searchInput textinput.Model

	// detail view
	detailID     string
	detailOffset int

	// chat
	manager    *session.Manager
	chat       *session.Session
	chatInput  textinput.Model
	chatView   viewport.Model
	spin       spinner.Model
	renderer   *glamour.TermRenderer
	typing     bool
	examples   []string
	exampleIdx int

	quitting bool
}

// NewModel builds the app model. The record slice becomes the model's
// canonical list; the manager owns chat sessions and their pending
// completions.
func NewModel(records []mailbox.Record, mgr *session.Manager, examples []string, userName string) Model {
	si := textinput.New()
	si.Placeholder = "search mail..."
	si.CharLimit = 100

	ci := textinput.New()
	ci.Placeholder = "Ask AI anything"
	ci.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	m := Model{
		emails:      records,
		userName:    userName,
		searchInput: si,
		chatInput:   ci,
		chatView:    vp,
		spin:        sp,
		renderer:    renderer,
		manager:     mgr,
		examples:    examples,
		width:       120,
		height:      30,
	}
	m.applyFilter()
	return m
}

// applyFilter recomputes the visible list from the canonical one:
// search first, then the folder facet. Both steps are pure, so the
// canonical slice is never touched.
func (m *Model) applyFilter() {
	list := mailbox.Search(m.emails, m.searchInput.Value())

	m.filtered = nil
	for _, r := range list {
		switch m.folder {
		case folderUnread:
			if r.Read {
				continue
			}
		case folderStarred:
			if !r.Starred {
				continue
			}
		}
		m.filtered = append(m.filtered, r)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatView.Width = msg.Width - 2
		m.chatView.Height = max(1, msg.Height-6)
		m.clampOffset()
		if m.mode == modeChat {
			m.refreshChatView()
		}
		return m, nil

	case assistantMsg:
		return m.updateAssistant(msg)

	case spinner.TickMsg:
		if !m.typing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeChat:
			return m.updateChat(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		// Shutdown of the session manager is the caller's job; a
		// pending response may still be drained after quit.
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "enter":
		if len(m.filtered) > 0 {
			id := m.filtered[m.cursor].ID
			// Mark read on the canonical list, then re-filter; the
			// unread facet must see the fresh flag, not a stale one.
			m.emails = mailbox.MarkRead(m.emails, id)
			m.detailID = id
			m.detailOffset = 0
			m.applyFilter()
			m.mode = modeDetail
		}

	case "s":
		if len(m.filtered) > 0 {
			id := m.filtered[m.cursor].ID
			m.emails = mailbox.ToggleStarred(m.emails, id)
			m.applyFilter()
		}

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch

	case "tab":
		switch m.folder {
		case folderInbox:
			m.folder = folderUnread
		case folderUnread:
			m.folder = folderStarred
		case folderStarred:
			m.folder = folderInbox
		}
		m.applyFilter()

	case "a":
		return m.enterChat()
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.applyFilter()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeList
		return m, nil

	case "up", "k":
		if m.detailOffset > 0 {
			m.detailOffset--
		}
	case "down", "j":
		m.detailOffset++
	case "home", "g":
		m.detailOffset = 0

	case "s":
		m.emails = mailbox.ToggleStarred(m.emails, m.detailID)
		m.applyFilter()
	}
	return m, nil
}

// detailRecord looks the open message up on the canonical list so flag
// changes render immediately.
func (m Model) detailRecord() (mailbox.Record, bool) {
	for _, r := range m.emails {
		if r.ID == m.detailID {
			return r, true
		}
	}
	return mailbox.Record{}, false
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) visibleRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(runes) <= width {
		return string(runes)
	}
	if width <= 2 {
		return string(runes[:width])
	}
	return string(runes[:width-2]) + ".."
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
