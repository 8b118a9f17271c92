package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/letterpad"
)

func TestLayoutTilesFitAndDoNotOverlap(t *testing.T) {
	l := NewLayout(0, 0)
	bounds := core.NewRect(0, 0, HiveWidth, HiveHeight)

	tiles := Tiles()
	require.Len(t, tiles, letterpad.OuterTiles+1)

	for _, a := range tiles {
		ra := l.Rect(a)
		assert.False(t, ra.Empty())
		assert.True(t, bounds.Contains(ra.X, ra.Y), "tile %d starts outside the hive", a)
		assert.True(t, bounds.Contains(ra.Right()-1, ra.Bottom()-1), "tile %d ends outside the hive", a)
	}

	for y := 0; y < HiveHeight; y++ {
		for x := 0; x < HiveWidth; x++ {
			covering := 0
			for _, tile := range tiles {
				if l.Rect(tile).Contains(x, y) {
					covering++
				}
			}
			assert.LessOrEqual(t, covering, 1, "cell (%d,%d) is covered by %d tiles", x, y, covering)
		}
	}
}

func TestLayoutTileAt(t *testing.T) {
	l := NewLayout(2, 0)

	for _, tile := range Tiles() {
		x, y := l.Rect(tile).Center()
		got, ok := l.TileAt(x, y)
		require.True(t, ok, "tile %d", tile)
		assert.Equal(t, tile, got)
	}

	_, ok := l.TileAt(0, 0)
	assert.False(t, ok, "corner of the hive is empty")
	_, ok = l.TileAt(-5, 100)
	assert.False(t, ok)

	assert.True(t, l.Rect(letterpad.Tile(9)).Empty())
}

func TestLayoutCenterIsInTheMiddle(t *testing.T) {
	l := NewLayout(0, 0)
	x, y := l.Rect(letterpad.Center).Center()
	assert.Equal(t, HiveWidth/2, x)
	assert.Equal(t, HiveHeight/2, y)
}
