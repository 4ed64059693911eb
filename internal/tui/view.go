package tui

import (
	"fmt"
	"strings"

	"github.com/inboxiq/inboxiq/internal/mailbox"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar() + "\n")

	switch m.mode {
	case modeChat:
		b.WriteString(m.chatView.View() + "\n")
		b.WriteString(statusBarStyle.Render("Ask: ") + m.chatInput.View() + "\n")
		b.WriteString(m.chatStatusLine())

	case modeDetail:
		b.WriteString(m.renderDetail())

	default:
		b.WriteString(m.renderListHeader() + "\n")
		b.WriteString(m.renderList())
		b.WriteString(m.renderBottomBar())
	}

	return b.String()
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("InboxIQ")

	greeting := ""
	if m.userName != "" {
		greeting = dimStyle.Render("  Hi, " + m.userName)
	}

	badge := dimStyle.Render(fmt.Sprintf("  [%s]  %d unread", m.folder, mailbox.UnreadCount(m.emails)))
	return title + badge + greeting
}

func (m Model) renderListHeader() string {
	w := m.colWidths()
	cols := []string{
		pad("", 2),
		pad("From", w.from),
		pad("Date", w.date),
		pad("Subject", w.subject),
	}
	return headerStyle.Render(strings.Join(cols, " "))
}

func (m Model) renderList() string {
	var b strings.Builder

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no messages match") + "\n")
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.cursor) + "\n")
	}

	rendered := end - m.offset
	if len(m.filtered) == 0 {
		rendered++
	}
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(r mailbox.Record, selected bool) string {
	w := m.colWidths()

	marker := "  "
	if r.Starred {
		marker = starTag.Render("★ ")
	}

	subject := truncate(r.Subject+"  "+r.Preview, w.subject)

	cols := []string{
		pad(r.From, w.from),
		pad(r.Date, w.date),
		subject,
	}
	row := strings.Join(cols, " ")

	if selected {
		return selectedStyle.Render(marker + row)
	}
	if !r.Read {
		return marker + unreadStyle.Render(row)
	}
	return marker + readStyle.Render(row)
}

func (m Model) renderDetail() string {
	r, ok := m.detailRecord()
	if !ok {
		return dimStyle.Render("  message gone\n") + m.renderBottomBar()
	}

	var b strings.Builder

	star := ""
	if r.Starred {
		star = " " + starTag.Render("★")
	}
	b.WriteString(detailTitleStyle.Render(r.Subject) + star + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s <%s>  %s", r.From, r.FromEmail, r.Date)) + "\n")
	if len(r.Labels) > 0 {
		b.WriteString(labelTag.Render("["+strings.Join(r.Labels, "] [")+"]") + "\n")
	}
	b.WriteString("\n")

	lines := strings.Split(r.Body, "\n")
	visible := m.visibleRows()
	offset := m.detailOffset
	if offset > max(0, len(lines)-1) {
		offset = max(0, len(lines)-1)
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[offset:end] {
		b.WriteString(line + "\n")
	}

	b.WriteString(helpStyle.Render("  ↑/↓: scroll  s: star  Esc: back"))
	return b.String()
}

func (m Model) renderBottomBar() string {
	if m.mode == modeSearch {
		return statusBarStyle.Render("Search: ") + m.searchInput.View()
	}
	if q := m.searchInput.Value(); strings.TrimSpace(q) != "" {
		filter := statusBarStyle.Render(fmt.Sprintf("filter: %q  (%d of %d)", q, len(m.filtered), len(m.emails)))
		return filter + helpStyle.Render("  /: edit  Esc in search clears")
	}
	return helpStyle.Render("  Enter: open  s: star  /: search  Tab: folder  a: assistant  q: quit")
}

type colWidths struct {
	from    int
	date    int
	subject int
}

func (m Model) colWidths() colWidths {
	w := colWidths{from: 16, date: 10}
	used := 2 + w.from + w.date + 4
	w.subject = m.width - used
	if w.subject < 20 {
		w.subject = 20
	}
	return w
}
