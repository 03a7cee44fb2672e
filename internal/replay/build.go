package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Header describes the game a recording belongs to.
type Header struct {
	Player     string
	Seed       int64
	Width      int
	Height     int
	Difficulty string
	Config     config.InvadersConfig
}

// Outcome maps a game state to its stored outcome.
func Outcome(state invaders.State) string {
	switch state {
	case invaders.StateVictory:
		return storage.OutcomeVictory
	case invaders.StateDefeat:
		return storage.OutcomeDefeat
	default:
		return storage.OutcomeAbandoned
	}
}

// Finish packages the recorded inputs and the game's current state for storage.
func (r *Recorder) Finish(h Header, game *invaders.Game) (storage.Replay, error) {
	data, err := config.Marshal(h.Config)
	if err != nil {
		return storage.Replay{}, fmt.Errorf("replay: %w", err)
	}
	return storage.Replay{
		Player:     h.Player,
		Seed:       h.Seed,
		Width:      h.Width,
		Height:     h.Height,
		Difficulty: h.Difficulty,
		Config:     string(data),
		Inputs:     r.Encoded(),
		Ticks:      int(game.Tick()),
		Outcome:    Outcome(game.State()),
	}, nil
}
