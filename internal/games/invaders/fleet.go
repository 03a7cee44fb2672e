package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Fleet is the wave of invaders. It moves every actionThreshold ticks,
// reverses at the grid edges and speeds up with every kill.
type Fleet struct {
	xMax, yMax int

	speed           int // -1 or +1
	actionPoints    int
	actionThreshold int
	minThreshold    int
	deadInvaders    int

	invaders []Invader // Left-to-right insertion order, never reordered
	trigger  Trigger
}

// NewFleet lays out a single row of invaders for a grid with the given
// extents (width-1, height-1).
func NewFleet(xMax, yMax int, cfg config.FleetConfig, trigger Trigger) *Fleet {
	f := &Fleet{
		xMax:            xMax,
		yMax:            yMax,
		speed:           1,
		actionThreshold: cfg.ActionThreshold,
		minThreshold:    cfg.MinActionThreshold,
		trigger:         trigger,
	}

	y := int(float64(yMax) * cfg.Row)
	for x := int(float64(xMax) * cfg.Left); float64(x) < float64(xMax)*cfg.Right; x += cfg.Spacing {
		f.invaders = append(f.invaders, NewInvader(x, y))
	}

	// First tick moves the fleet.
	f.actionPoints = f.actionThreshold
	return f
}

// Place draws every alive invader onto the grid.
func (f *Fleet) Place(grid *Grid) {
	for i := range f.invaders {
		inv := &f.invaders[i]
		if inv.IsAlive() {
			grid.SetTile(inv.x, inv.y, GlyphInvader)
		}
	}
}

// Update resolves at most one kill, then moves the fleet when the cadence allows.
func (f *Fleet) Update(grid *Grid) {
	f.resolveKill(grid)

	f.actionPoints++
	if f.actionPoints < f.actionThreshold {
		return
	}
	f.actionPoints = 0

	f.move(grid)
}

// resolveKill credits the first invader hit this tick.
func (f *Fleet) resolveKill(grid *Grid) {
	for i := range f.invaders {
		inv := &f.invaders[i]
		inv.Collide(grid)
		if inv.IsDead() {
			if f.actionThreshold > f.minThreshold {
				f.actionThreshold--
			}
			inv.SetInactive()
			f.deadInvaders++
			return
		}
	}
}

// move updates every invader (dead ones only advance their bullets) and
// reverses direction when the outermost alive invader reaches a wall.
func (f *Fleet) move(grid *Grid) {
	left, right := -1, -1
	for i := range f.invaders {
		inv := &f.invaders[i]
		if inv.IsAlive() {
			if left < 0 {
				left = i
			}
			right = i
		}
		inv.Update(f.speed, grid, f.trigger)
	}

	if left < 0 {
		return
	}
	if f.speed == 1 && f.invaders[right].x == f.xMax {
		f.speed = -1
	} else if f.speed == -1 && f.invaders[left].x == 0 {
		f.speed = 1
	}
}

// IsDestroyed reports whether every invader has been killed.
func (f *Fleet) IsDestroyed() bool {
	return f.deadInvaders == len(f.invaders)
}

// Invaders returns a copy of the fleet in insertion order.
func (f *Fleet) Invaders() []Invader {
	out := make([]Invader, len(f.invaders))
	copy(out, f.invaders)
	return out
}

// Len returns the number of invaders ever created.
func (f *Fleet) Len() int { return len(f.invaders) }

// Alive returns the number of invaders still in play.
func (f *Fleet) Alive() int {
	n := 0
	for i := range f.invaders {
		if f.invaders[i].IsAlive() {
			n++
		}
	}
	return n
}

// Speed returns the horizontal direction (-1 or +1).
func (f *Fleet) Speed() int { return f.speed }

// ActionThreshold returns the current cadence in ticks.
func (f *Fleet) ActionThreshold() int { return f.actionThreshold }

// ActionPoints returns the ticks accumulated toward the next move.
func (f *Fleet) ActionPoints() int { return f.actionPoints }

// DeadInvaders returns the number of credited kills.
func (f *Fleet) DeadInvaders() int { return f.deadInvaders }

// ActiveBullets returns how many invader bullets are in flight.
func (f *Fleet) ActiveBullets() int {
	n := 0
	for i := range f.invaders {
		if f.invaders[i].bullet.Active() {
			n++
		}
	}
	return n
}
