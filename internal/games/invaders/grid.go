// Package invaders implements a Space Invaders-style game.
// The player steers a ship along the bottom row and shoots at a fleet that
// drifts sideways and returns fire. All actors share one tile
// buffer, and collisions are detected by reading it.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs stored in the grid.
const (
	GlyphEmpty   = ' '
	GlyphPlayer  = '@'
	GlyphInvader = '*'
	GlyphBullet  = '|'
)

// Grid is a fixed-size buffer of tiles shared by every actor.
// SetTile and IsCollision do not check bounds; callers must stay in range.
type Grid struct {
	bounds core.Rect
	tiles  [][]rune
}

// NewGrid creates an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		bounds: core.NewRect(0, 0, width, height),
		tiles:  make([][]rune, height),
	}
	for y := range g.tiles {
		row := make([]rune, width)
		for x := range row {
			row[x] = GlyphEmpty
		}
		g.tiles[y] = row
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.bounds.W
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.bounds.H
}

// SetTile writes a glyph at (x, y).
func (g *Grid) SetTile(x, y int, c rune) {
	g.tiles[y][x] = c
}

// ClearTile writes the empty glyph at (x, y).
func (g *Grid) ClearTile(x, y int) {
	g.tiles[y][x] = GlyphEmpty
}

// Tile returns the glyph at (x, y).
func (g *Grid) Tile(x, y int) rune {
	return g.tiles[y][x]
}

// IsOutOfBounds reports whether (x, y) lies outside [0, W) x [0, H).
func (g *Grid) IsOutOfBounds(x, y int) bool {
	return !g.bounds.Contains(x, y)
}

// IsCollision reports whether the tile at (x, y) holds c.
func (g *Grid) IsCollision(x, y int, c rune) bool {
	return g.tiles[y][x] == c
}

// Tiles returns a snapshot of the grid, one string per row.
func (g *Grid) Tiles() []string {
	rows := make([]string, len(g.tiles))
	for y, row := range g.tiles {
		rows[y] = string(row)
	}
	return rows
}

// Count returns how many tiles hold c.
func (g *Grid) Count(c rune) int {
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t == c {
				n++
			}
		}
	}
	return n
}
