// Package tui provides the Bubble Tea driver for the invaders game.
// It handles frame pacing, input mapping, rendering and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// EndMsg is sent once the end-of-game pause has elapsed.
type EndMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// endCmd waits for pause before ending the program.
func endCmd(pause time.Duration) tea.Cmd {
	if pause <= 0 {
		return func() tea.Msg { return EndMsg{} }
	}
	return tea.Tick(pause, func(time.Time) tea.Msg {
		return EndMsg{}
	})
}
