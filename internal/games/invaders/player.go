package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the grid.
type Player struct {
	x, y       int
	xMax, yMax int
	alive      bool
	bullet     Bullet
}

// NewPlayer centres the ship on the row at the given fraction of yMax.
func NewPlayer(xMax, yMax int, row float64) *Player {
	return &Player{
		x:     xMax / 2,
		y:     int(float64(yMax) * row),
		xMax:  xMax,
		yMax:  yMax,
		alive: true,
	}
}

// Place draws the ship onto the grid.
func (p *Player) Place(grid *Grid) {
	if p.alive {
		grid.SetTile(p.x, p.y, GlyphPlayer)
	}
}

// Collide kills the ship if a bullet glyph sits on its tile.
func (p *Player) Collide(grid *Grid) {
	if grid.IsCollision(p.x, p.y, GlyphBullet) {
		p.alive = false
		grid.ClearTile(p.x, p.y)
	}
}

// Update checks for a hit, applies the input and advances the ship's bullet.
func (p *Player) Update(input core.UserInput, grid *Grid) {
	p.Collide(grid)
	if !p.alive {
		return
	}

	grid.ClearTile(p.x, p.y)
	switch input {
	case core.InputLeft:
		p.x--
	case core.InputRight:
		p.x++
	}
	p.x = core.Clamp(p.x, 0, p.xMax)
	grid.SetTile(p.x, p.y, GlyphPlayer)

	if input == core.InputUp {
		p.bullet.Fire(p.x, p.y, -1)
	}
	p.bullet.Update(grid)
}

// X returns the ship's column.
func (p *Player) X() int { return p.x }

// Y returns the ship's row.
func (p *Player) Y() int { return p.y }

// IsAlive reports whether the ship is still flying.
func (p *Player) IsAlive() bool { return p.alive }

// Bullet returns the ship's projectile.
func (p *Player) Bullet() *Bullet { return &p.bullet }
