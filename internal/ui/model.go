// Package ui holds the ephemeral notification model shared by the terminal frontends.
package ui

import (
	"strings"
	"time"

	"github.com/episan-cli/episan/style"
	tea "github.com/charmbracelet/bubbletea"
)

// notificationTTL is how long a notice stays on screen.
const notificationTTL = 4 * time.Second

// Model renders a short-lived notice into the last line of a view.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// Notice is the message type the model listens for.
type Notice string

// clearMsg asks the model to drop the notice raised at the given time.
// A stale clearMsg from an earlier notice leaves a newer one alone.
type clearMsg struct {
	raisedAt time.Time
}

// QueuedRetryNotice announces that failed daemon handoffs were queued for
// background reconciliation.
func QueuedRetryNotice() tea.Cmd {
	return func() tea.Msg {
		return Notice("Daemon unreachable, grabs queued for retry")
	}
}

// Update processes notification messages. Other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notice:
		m.notification = string(msg)
		m.notifiedAt = time.Now()

		raisedAt := m.notifiedAt
		return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
			return clearMsg{raisedAt: raisedAt}
		})
	case clearMsg:
		if msg.raisedAt.Equal(m.notifiedAt) {
			m.notification = ""
		}
		return nil
	}

	return nil
}

// View appends the current notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return content
	}

	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
