package replay

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ErrOutcomeMismatch is returned when a re-simulated run ends differently
// from what was recorded.
var ErrOutcomeMismatch = errors.New("replay: outcome mismatch")

// NewGame rebuilds the game a recording was made with.
func NewGame(rec storage.Replay) (*invaders.Game, error) {
	cfg, err := config.Parse([]byte(rec.Config))
	if err != nil {
		return nil, fmt.Errorf("replay %d: config: %w", rec.ID, err)
	}
	game, err := invaders.New(rec.Width, rec.Height, cfg, rand.New(rand.NewSource(rec.Seed)))
	if err != nil {
		return nil, fmt.Errorf("replay %d: %w", rec.ID, err)
	}
	return game, nil
}

// Load decodes a recording into a fresh game and its input script.
func Load(rec storage.Replay) (*invaders.Game, *Script, error) {
	game, err := NewGame(rec)
	if err != nil {
		return nil, nil, err
	}
	inputs, err := Decode(rec.Inputs)
	if err != nil {
		return nil, nil, fmt.Errorf("replay %d: %w", rec.ID, err)
	}
	return game, NewScript(inputs), nil
}

// Verify re-simulates a recording headless and checks its recorded outcome
// and tick count. Recordings of abandoned games only need to stay running.
func Verify(rec storage.Replay) (invaders.Snapshot, error) {
	game, script, err := Load(rec)
	if err != nil {
		return invaders.Snapshot{}, err
	}

	for in, ok := script.Next(); ok && game.IsRunning(); in, ok = script.Next() {
		game.Update(in)
	}
	snap := game.Snapshot()

	want := invaders.StateRunning
	if rec.Outcome != storage.OutcomeAbandoned {
		want, err = invaders.ParseState(rec.Outcome)
		if err != nil {
			return snap, fmt.Errorf("replay %d: %w", rec.ID, err)
		}
	}

	if snap.State != want || int(snap.Tick) != rec.Ticks {
		return snap, fmt.Errorf("%w: recorded %s after %d ticks, got %s after %d ticks",
			ErrOutcomeMismatch, rec.Outcome, rec.Ticks, snap.State, snap.Tick)
	}
	return snap, nil
}
