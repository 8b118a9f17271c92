// Package core provides fundamental drawing and layout types for hive.
// It contains no Bubble Tea dependency so layout and rendering stay
// testable without a terminal.
package core

import "math"

// Rect represents an axis-aligned box in screen cells, used for tile hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale shrinks or grows the rectangle around its center.
// A factor of 0 yields an empty rect at the center; 1 returns r unchanged.
func (r Rect) Scale(f float64) Rect {
	f = ClampF(f, 0, 1)
	w := int(float64(r.W)*f + 0.5)
	h := int(float64(r.H)*f + 0.5)
	cx, cy := r.Center()
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// ClampF restricts a float64 value to be within [min, max]. NaN maps to min.
func ClampF(val, min, max float64) float64 {
	if math.IsNaN(val) || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
