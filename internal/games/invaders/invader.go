package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// InvaderState is the lifecycle stage of an invader.
type InvaderState int

const (
	InvaderAlive    InvaderState = iota
	InvaderDead                  // Hit this tick, kill not yet credited
	InvaderInactive              // Kill credited; only the bullet keeps flying
)

// String returns a human-readable name for the state.
func (s InvaderState) String() string {
	switch s {
	case InvaderAlive:
		return "alive"
	case InvaderDead:
		return "dead"
	case InvaderInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Trigger decides whether an alive invader opens fire on a fleet move.
type Trigger interface {
	Pull() bool
}

// ChanceTrigger fires with a fixed probability drawn from its RNG.
type ChanceTrigger struct {
	rng    *rand.Rand
	chance float64
}

// NewChanceTrigger creates a trigger that fires with the given probability.
func NewChanceTrigger(rng *rand.Rand, chance float64) *ChanceTrigger {
	return &ChanceTrigger{rng: rng, chance: chance}
}

// Pull draws once from the RNG.
func (t *ChanceTrigger) Pull() bool {
	return t.rng.Float64() < t.chance
}

// Invader is a single member of the fleet.
type Invader struct {
	x, y   int
	state  InvaderState
	bullet Bullet
}

// NewInvader creates an alive invader at (x, y).
func NewInvader(x, y int) Invader {
	return Invader{x: x, y: y, state: InvaderAlive}
}

// Collide kills the invader if a bullet glyph sits on its tile.
func (inv *Invader) Collide(grid *Grid) {
	if inv.state != InvaderAlive {
		return
	}
	if grid.IsCollision(inv.x, inv.y, GlyphBullet) {
		inv.state = InvaderDead
		grid.ClearTile(inv.x, inv.y)
	}
}

// Update possibly fires, advances the owned bullet, then moves the invader
// sideways by speed. The bullet keeps flying after the invader dies.
func (inv *Invader) Update(speed int, grid *Grid, trigger Trigger) {
	if inv.state == InvaderAlive && trigger.Pull() {
		inv.bullet.Fire(inv.x, inv.y, 1)
	}
	inv.bullet.Update(grid)

	if inv.state != InvaderAlive {
		return
	}
	grid.ClearTile(inv.x, inv.y)
	inv.x = core.Clamp(inv.x+speed, 0, grid.Width()-1)
	grid.SetTile(inv.x, inv.y, GlyphInvader)
}

// X returns the invader's column.
func (inv *Invader) X() int { return inv.x }

// Y returns the invader's row.
func (inv *Invader) Y() int { return inv.y }

// State returns the lifecycle stage.
func (inv *Invader) State() InvaderState { return inv.state }

// IsAlive reports whether the invader is still in play.
func (inv *Invader) IsAlive() bool { return inv.state == InvaderAlive }

// IsDead reports whether the invader was hit and awaits kill credit.
func (inv *Invader) IsDead() bool { return inv.state == InvaderDead }

// SetInactive marks a credited kill.
func (inv *Invader) SetInactive() { inv.state = InvaderInactive }

// Bullet returns the invader's projectile.
func (inv *Invader) Bullet() *Bullet { return &inv.bullet }
