package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("up/space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message to a game input.
// Unbound keys map to InputNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.UserInput {
	switch {
	case key.Matches(msg, k.Quit):
		return core.InputQuit
	case key.Matches(msg, k.Left):
		return core.InputLeft
	case key.Matches(msg, k.Right):
		return core.InputRight
	case key.Matches(msg, k.Fire):
		return core.InputUp
	}
	return core.InputNone
}
