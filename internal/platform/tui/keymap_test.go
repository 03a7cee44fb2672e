package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.UserInput
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.InputLeft},
		{"a", runeKey('a'), core.InputLeft},
		{"h", runeKey('h'), core.InputLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.InputRight},
		{"d", runeKey('d'), core.InputRight},
		{"l", runeKey('l'), core.InputRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.InputUp},
		{"w", runeKey('w'), core.InputUp},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.InputUp},
		{"q", runeKey('q'), core.InputQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.InputQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.InputQuit},
		{"unbound", runeKey('x'), core.InputNone},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 1 {
		t.Errorf("FullHelp() has %d groups, expected 1", len(km.FullHelp()))
	}
}
