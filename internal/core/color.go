package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Palette for hive elements.
const (
	ColorDefault Color = iota
	ColorKey           // required (center) letter
	ColorTile          // outer letters
	ColorPressed       // tile under the pointer
	ColorOutline       // tile borders
	ColorAccent        // titles, score
	ColorMuted         // hints, dimmed text
	ColorGood          // accepted guess
	ColorBad           // rejected guess
)
