package tui

import (
	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/letterpad"
)

// Hive tile geometry in terminal cells.
const (
	tileW   = 9
	tileH   = 4
	tileGap = 1

	// HiveWidth and HiveHeight are the bounds of the whole pad.
	HiveWidth  = 3*tileW + 2*tileGap
	HiveHeight = 3 * tileH
)

// outerOffsets places the six outer tiles clockwise from the top, relative
// to the center tile. Side columns sit half a tile lower or higher, which
// gives the honeycomb look on a character grid.
var outerOffsets = [letterpad.OuterTiles][2]int{
	{0, -tileH},                      // top
	{tileW + tileGap, -tileH / 2},    // upper right
	{tileW + tileGap, tileH / 2},     // lower right
	{0, tileH},                       // bottom
	{-(tileW + tileGap), tileH / 2},  // lower left
	{-(tileW + tileGap), -tileH / 2}, // upper left
}

// Layout maps pad tiles to screen rectangles.
type Layout struct {
	center core.Rect
	outer  [letterpad.OuterTiles]core.Rect
}

// NewLayout positions the hive with its top-left corner at (x, y).
func NewLayout(x, y int) Layout {
	cx := x + tileW + tileGap
	cy := y + tileH
	l := Layout{center: core.NewRect(cx, cy, tileW, tileH)}
	for i, off := range outerOffsets {
		l.outer[i] = core.NewRect(cx+off[0], cy+off[1], tileW, tileH)
	}
	return l
}

// Rect returns the full-size rectangle of a tile.
func (l Layout) Rect(t letterpad.Tile) core.Rect {
	if t == letterpad.Center {
		return l.center
	}
	if !t.Valid() {
		return core.Rect{}
	}
	return l.outer[t]
}

// TileAt hit-tests a screen position against the tiles.
func (l Layout) TileAt(x, y int) (letterpad.Tile, bool) {
	if l.center.Contains(x, y) {
		return letterpad.Center, true
	}
	for i, r := range l.outer {
		if r.Contains(x, y) {
			return letterpad.Tile(i), true
		}
	}
	return 0, false
}

// Tiles lists every tile, center first.
func Tiles() []letterpad.Tile {
	tiles := []letterpad.Tile{letterpad.Center}
	for i := 0; i < letterpad.OuterTiles; i++ {
		tiles = append(tiles, letterpad.Tile(i))
	}
	return tiles
}
