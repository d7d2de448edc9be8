// Package tui provides the Bubble Tea front end for 2048.
// It handles the terminal UI loop, input mapping, and the countdown ticker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to drive the session clock. It carries the id of the
// session that started the ticker so ticks from a replaced session are dropped.
type TickMsg struct {
	SessionID string
	Time      time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, sessionID string) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{SessionID: sessionID, Time: t}
	})
}
