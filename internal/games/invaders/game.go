package invaders

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum grid size accepted by New.
const (
	MinWidth  = 10
	MinHeight = 5
)

// Terminal banners shown by the driver.
const (
	VictoryMessage = "You defeated the evil invaders! Hip-hip-hooray!"
	DefeatMessage  = "The evil invaders have won. Goodbye world!"
)

// Errors returned by New.
var (
	ErrGridTooSmall = errors.New("grid too small")
	ErrRowOverlap   = errors.New("player row not below fleet row")
)

// State is the outcome of the game so far.
type State int

const (
	StateRunning State = iota
	StateVictory
	StateDefeat
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// ParseState converts a name produced by String back into a State.
func ParseState(name string) (State, error) {
	switch name {
	case "running":
		return StateRunning, nil
	case "victory":
		return StateVictory, nil
	case "defeat":
		return StateDefeat, nil
	default:
		return StateRunning, fmt.Errorf("invaders: unknown state %q", name)
	}
}

// Game composes the grid, the ship and the fleet.
type Game struct {
	grid   *Grid
	player *Player
	fleet  *Fleet
	state  State
	tick   uint64
}

// New creates a game on a width x height grid. The RNG drives invader fire.
func New(width, height int, cfg config.InvadersConfig, rng *rand.Rand) (*Game, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("invaders: %w: %dx%d (need at least %dx%d)",
			ErrGridTooSmall, width, height, MinWidth, MinHeight)
	}

	xMax, yMax := width-1, height-1

	// Rows are rounded down per grid, so distinct fractions can still collide.
	fleetY := int(float64(yMax) * cfg.Fleet.Row)
	playerY := int(float64(yMax) * cfg.Player.Row)
	if playerY <= fleetY {
		return nil, fmt.Errorf("invaders: %w: rows %d and %d on a %dx%d grid",
			ErrRowOverlap, playerY, fleetY, width, height)
	}

	return newGame(
		NewGrid(width, height),
		NewPlayer(xMax, yMax, cfg.Player.Row),
		NewFleet(xMax, yMax, cfg.Fleet, NewChanceTrigger(rng, cfg.Fleet.FireChance)),
	), nil
}

// newGame draws the initial actors and returns a running game.
func newGame(grid *Grid, player *Player, fleet *Fleet) *Game {
	fleet.Place(grid)
	player.Place(grid)
	return &Game{
		grid:   grid,
		player: player,
		fleet:  fleet,
		state:  StateRunning,
	}
}

// Update advances the game by one tick. It does nothing once the game is over.
// Defeat is assigned before Victory, so a tick producing both ends in Victory.
func (g *Game) Update(input core.UserInput) {
	if g.state != StateRunning {
		return
	}
	g.tick++

	g.player.Update(input, g.grid)
	if !g.player.IsAlive() {
		g.state = StateDefeat
	}

	g.fleet.Update(g.grid)
	if g.fleet.IsDestroyed() {
		g.state = StateVictory
	}
}

// State returns the current outcome.
func (g *Game) State() State { return g.state }

// IsRunning reports whether the game is still in progress.
func (g *Game) IsRunning() bool { return g.state == StateRunning }

// IsVictory reports whether the fleet was destroyed.
func (g *Game) IsVictory() bool { return g.state == StateVictory }

// Message returns the banner for a finished game, or "" while running.
func (g *Game) Message() string {
	switch g.state {
	case StateVictory:
		return VictoryMessage
	case StateDefeat:
		return DefeatMessage
	default:
		return ""
	}
}

// Grid returns the shared tile buffer.
func (g *Game) Grid() *Grid { return g.grid }

// Tiles returns the grid rows for rendering.
func (g *Game) Tiles() []string { return g.grid.Tiles() }

// Player returns the ship.
func (g *Game) Player() *Player { return g.player }

// Fleet returns the invader wave.
func (g *Game) Fleet() *Fleet { return g.fleet }

// Tick returns the number of updates executed.
func (g *Game) Tick() uint64 { return g.tick }
