package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func sampleReplays() []storage.Replay {
	now := time.Now()
	return []storage.Replay{
		{ID: 2, Player: "ann", Outcome: storage.OutcomeVictory, Ticks: 900, Width: 80, Height: 24, Difficulty: "hard", CreatedAt: now},
		{ID: 1, Player: "bob", Outcome: storage.OutcomeDefeat, Ticks: 300, Width: 40, Height: 16, CreatedAt: now},
	}
}

func updateBrowser(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BrowserModel)
	if !ok {
		t.Fatalf("Update returned %T, expected BrowserModel", next)
	}
	return bm, cmd
}

func TestBrowserSelect(t *testing.T) {
	m := NewBrowserModel(sampleReplays(), 100, 30)

	m, _ = updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !isQuit(cmd) {
		t.Error("Selecting a replay should close the browser")
	}
	if m.Selected() == nil || m.Selected().ID != 1 {
		t.Fatalf("Selected() = %+v, expected replay 1", m.Selected())
	}
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowserModel(sampleReplays(), 100, 30)

	m, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("Esc should close the browser")
	}
	if m.Selected() != nil {
		t.Error("Nothing should be selected after quitting")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestBrowserView(t *testing.T) {
	m := NewBrowserModel(sampleReplays(), 100, 30)
	view := m.View()

	for _, want := range []string{"REPLAYS", "ann", "bob", "victory", "80x24", "hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestBrowserEmpty(t *testing.T) {
	m := NewBrowserModel(nil, 80, 24)

	if !strings.Contains(m.View(), "No replays recorded yet") {
		t.Error("Empty browser should show a hint")
	}

	m, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Selected() != nil {
		t.Error("Enter on an empty browser should do nothing")
	}
}

func TestBrowserResize(t *testing.T) {
	m := NewBrowserModel(sampleReplays(), 80, 24)
	m, _ = updateBrowser(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("Size = %dx%d, expected 120x40", m.width, m.height)
	}
	if !strings.Contains(m.View(), "ann") {
		t.Error("Rows should survive a resize")
	}
}
