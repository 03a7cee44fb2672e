package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// fixedTrigger always returns the same answer.
type fixedTrigger bool

func (t fixedTrigger) Pull() bool { return bool(t) }

// countingTrigger records how often it was pulled.
type countingTrigger struct {
	pulls int
	fire  bool
}

func (t *countingTrigger) Pull() bool {
	t.pulls++
	return t.fire
}

// newTestFleet builds a fleet at the given positions with an empty cadence counter.
func newTestFleet(xMax, yMax, threshold int, trigger Trigger, positions ...[2]int) *Fleet {
	f := &Fleet{
		xMax:            xMax,
		yMax:            yMax,
		speed:           1,
		actionThreshold: threshold,
		minThreshold:    5,
		trigger:         trigger,
	}
	for _, p := range positions {
		f.invaders = append(f.invaders, NewInvader(p[0], p[1]))
	}
	return f
}

// newTestPlayer places a ship at (x, y) on a grid with the given extents.
func newTestPlayer(x, y, xMax, yMax int) *Player {
	return &Player{x: x, y: y, xMax: xMax, yMax: yMax, alive: true}
}

// newTestGame builds a 20x10 game from hand-placed actors.
func newTestGame(playerX, playerY int, positions ...[2]int) *Game {
	grid := NewGrid(20, 10)
	player := newTestPlayer(playerX, playerY, 19, 9)
	fleet := newTestFleet(19, 9, 20, fixedTrigger(false), positions...)
	return newGame(grid, player, fleet)
}

// newSeededGame builds a default game with a fixed seed.
func newSeededGame(t *testing.T, width, height int, seed int64) *Game {
	t.Helper()
	g, err := New(width, height, config.DefaultInvadersConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return g
}
