package invaders

// Bullet is a single projectile owned by one shooter.
// It moves one row per Update in the direction of its speed.
type Bullet struct {
	x, y   int
	speed  int
	active bool

	// launched is false between Fire and the first Update, while the
	// bullet still sits on the shooter's own tile.
	launched bool
}

// Fire launches the bullet from (x, y). Ignored while the bullet is in flight.
// The glyph is not drawn until the next Update.
func (b *Bullet) Fire(x, y, speed int) {
	if b.active {
		return
	}
	b.x = x
	b.y = y
	b.speed = speed
	b.active = true
	b.launched = false
}

// Update advances an active bullet by one row.
// A bullet that would leave the grid becomes inactive.
func (b *Bullet) Update(grid *Grid) {
	if !b.active {
		return
	}

	// Only erase our own glyph; a ship or invader may have moved onto it.
	if b.launched && grid.IsCollision(b.x, b.y, GlyphBullet) {
		grid.ClearTile(b.x, b.y)
	}
	b.launched = true

	b.y += b.speed
	if grid.IsOutOfBounds(b.x, b.y) {
		b.active = false
		return
	}
	grid.SetTile(b.x, b.y, GlyphBullet)
}

// Active reports whether the bullet is in flight.
func (b *Bullet) Active() bool {
	return b.active
}

// Position returns the bullet's current tile.
func (b *Bullet) Position() (int, int) {
	return b.x, b.y
}

// Speed returns the vertical velocity (-1 up, +1 down).
func (b *Bullet) Speed() int {
	return b.speed
}
