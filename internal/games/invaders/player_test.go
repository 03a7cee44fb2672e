package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestNewPlayerPlacement(t *testing.T) {
	p := NewPlayer(19, 9, 0.9)

	if p.X() != 9 || p.Y() != 8 {
		t.Errorf("Player at (%d, %d), expected (9, 8)", p.X(), p.Y())
	}
	if !p.IsAlive() {
		t.Error("Player should start alive")
	}
}

// The ship moves right one column per tick.
func TestPlayerMovesRight(t *testing.T) {
	g := NewGrid(20, 10)
	p := newTestPlayer(10, 9, 19, 9)
	p.Place(g)

	for range 3 {
		p.Update(core.InputRight, g)
	}

	if p.X() != 13 {
		t.Errorf("X = %d, expected 13", p.X())
	}
	if g.Tile(10, 9) != GlyphEmpty {
		t.Errorf("Old tile = %q, expected empty", g.Tile(10, 9))
	}
	if g.Tile(13, 9) != GlyphPlayer {
		t.Errorf("Tile (13, 9) = %q, expected player", g.Tile(13, 9))
	}
	if g.Count(GlyphPlayer) != 1 {
		t.Errorf("Expected exactly one player glyph, got %d", g.Count(GlyphPlayer))
	}
}

func TestPlayerClampedToGrid(t *testing.T) {
	g := NewGrid(20, 10)
	p := newTestPlayer(0, 9, 19, 9)
	p.Place(g)

	p.Update(core.InputLeft, g)
	if p.X() != 0 {
		t.Errorf("X = %d, expected clamp at 0", p.X())
	}

	right := newTestPlayer(19, 9, 19, 9)
	right.Update(core.InputRight, g)
	if right.X() != 19 {
		t.Errorf("X = %d, expected clamp at 19", right.X())
	}
}

func TestPlayerFiresUpward(t *testing.T) {
	g := NewGrid(20, 10)
	p := newTestPlayer(5, 9, 19, 9)
	p.Place(g)

	p.Update(core.InputUp, g)

	b := p.Bullet()
	if !b.Active() {
		t.Fatal("Player should have fired")
	}
	if x, y := b.Position(); x != 5 || y != 8 {
		t.Errorf("Bullet at (%d, %d), expected (5, 8)", x, y)
	}
	if g.Tile(5, 9) != GlyphPlayer {
		t.Error("Firing should not erase the ship")
	}

	// Second shot while the first is in flight is ignored
	p.Update(core.InputUp, g)
	if _, y := b.Position(); y != 7 {
		t.Errorf("Bullet at y=%d, expected 7", y)
	}
	if g.Count(GlyphBullet) != 1 {
		t.Errorf("Expected one bullet glyph, got %d", g.Count(GlyphBullet))
	}
}

func TestPlayerCollide(t *testing.T) {
	g := NewGrid(20, 10)
	p := newTestPlayer(5, 9, 19, 9)
	g.SetTile(5, 9, GlyphBullet)

	p.Update(core.InputRight, g)

	if p.IsAlive() {
		t.Fatal("Player should die on a bullet tile")
	}
	if p.X() != 5 {
		t.Errorf("Dead player moved to x=%d", p.X())
	}
	if g.Tile(5, 9) != GlyphEmpty {
		t.Errorf("Hit tile = %q, expected cleared", g.Tile(5, 9))
	}
	if g.Count(GlyphPlayer) != 0 {
		t.Error("Dead player should leave no glyph")
	}
}
