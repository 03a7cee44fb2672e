package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// glyphColors maps tile glyphs to their screen colors.
var glyphColors = map[rune]core.Color{
	GlyphPlayer:  core.ColorGreen,
	GlyphInvader: core.ColorBrightMagenta,
	GlyphBullet:  core.ColorYellow,
}

// Render draws the grid into dst and, once the game is over, the banner
// centred on the middle row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	for y, row := range g.grid.tiles {
		for x, r := range row {
			dst.SetColored(x, y, r, glyphColors[r])
		}
	}

	if msg := g.Message(); msg != "" {
		_, cy := dst.Bounds().Center()
		color := core.ColorBrightWhite
		if g.state == StateDefeat {
			color = core.ColorRed
		}
		dst.DrawTextCentered(cy, msg, color)
	}
}
