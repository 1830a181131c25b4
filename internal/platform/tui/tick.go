// Package tui provides the Bubble Tea integration for Columns.
// It handles the terminal UI loop, key bindings and the gravity timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent when the active piece should fall one row.
type GravityMsg time.Time

// gravityCmd returns a Bubble Tea command that sends one GravityMsg after the
// given interval. The model schedules the next one when it handles the message.
func gravityCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
