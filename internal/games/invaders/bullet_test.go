package invaders

import "testing"

func TestBulletFireDoesNotDraw(t *testing.T) {
	g := NewGrid(5, 5)
	var b Bullet

	b.Fire(2, 4, -1)
	if !b.Active() {
		t.Fatal("Bullet should be active after Fire")
	}
	if g.Count(GlyphBullet) != 0 {
		t.Error("Fire should not draw the bullet")
	}

	b.Update(g)
	if x, y := b.Position(); x != 2 || y != 3 {
		t.Errorf("Position = (%d, %d), expected (2, 3)", x, y)
	}
	if g.Tile(2, 3) != GlyphBullet {
		t.Error("Bullet glyph should appear after the first Update")
	}
}

func TestBulletFireWhileActiveIsNoop(t *testing.T) {
	g := NewGrid(5, 5)
	var b Bullet
	b.Fire(2, 4, -1)
	b.Update(g)

	b.Fire(0, 0, 1)

	if x, y := b.Position(); x != 2 || y != 3 {
		t.Errorf("Position changed to (%d, %d)", x, y)
	}
	if b.Speed() != -1 {
		t.Errorf("Speed changed to %d", b.Speed())
	}
	if !b.Active() {
		t.Error("Bullet should stay active")
	}
}

func TestBulletLaunchKeepsShooterTile(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetTile(2, 4, GlyphPlayer)

	var b Bullet
	b.Fire(2, 4, -1)
	b.Update(g)

	if g.Tile(2, 4) != GlyphPlayer {
		t.Errorf("Launch erased the shooter: tile = %q", g.Tile(2, 4))
	}
}

func TestBulletClearsPreviousTile(t *testing.T) {
	g := NewGrid(5, 5)
	var b Bullet
	b.Fire(1, 0, 1)
	b.Update(g) // y=1
	b.Update(g) // y=2

	if g.Tile(1, 1) != GlyphEmpty {
		t.Errorf("Previous tile should be cleared, got %q", g.Tile(1, 1))
	}
	if g.Tile(1, 2) != GlyphBullet {
		t.Errorf("Current tile should hold the bullet, got %q", g.Tile(1, 2))
	}
	if g.Count(GlyphBullet) != 1 {
		t.Errorf("Expected exactly one bullet glyph, got %d", g.Count(GlyphBullet))
	}
}

func TestBulletDoesNotEraseForeignGlyph(t *testing.T) {
	g := NewGrid(5, 5)
	var b Bullet
	b.Fire(1, 0, 1)
	b.Update(g) // y=1

	// An invader drifts onto the bullet's tile
	g.SetTile(1, 1, GlyphInvader)
	b.Update(g)

	if g.Tile(1, 1) != GlyphInvader {
		t.Errorf("Bullet erased a foreign glyph: %q", g.Tile(1, 1))
	}
}

func TestBulletDeactivatesAtBounds(t *testing.T) {
	g := NewGrid(5, 3)
	var b Bullet
	b.Fire(0, 1, -1)

	b.Update(g) // y=0
	if !b.Active() {
		t.Fatal("Bullet should still be active at y=0")
	}

	b.Update(g) // y=-1
	if b.Active() {
		t.Error("Bullet should deactivate when leaving the grid")
	}
	if g.Count(GlyphBullet) != 0 {
		t.Errorf("No bullet glyph should remain, got %d", g.Count(GlyphBullet))
	}

	// Inactive update is a no-op
	b.Update(g)
	if b.Active() {
		t.Error("Inactive bullet should stay inactive")
	}

	// A spent bullet can be fired again
	b.Fire(3, 2, -1)
	if !b.Active() {
		t.Error("Spent bullet should fire again")
	}
}
