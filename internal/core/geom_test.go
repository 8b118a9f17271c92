package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectScale(t *testing.T) {
	r := NewRect(10, 10, 8, 4)

	if got := r.Scale(1); got != r {
		t.Errorf("Scale(1) = %+v, expected %+v", got, r)
	}

	half := r.Scale(0.5)
	if half.W != 4 || half.H != 2 {
		t.Errorf("Scale(0.5) size = %dx%d, expected 4x2", half.W, half.H)
	}
	cx, cy := r.Center()
	hx, hy := half.Center()
	if cx != hx || cy != hy {
		t.Errorf("Scale moved the center from (%d,%d) to (%d,%d)", cx, cy, hx, hy)
	}

	if !r.Scale(0).Empty() {
		t.Error("Scale(0) should be empty")
	}
	if got := r.Scale(3); got != r {
		t.Errorf("Scale above 1 should clamp, got %+v", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name               string
		val, min, max, exp float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -1, 0, 1, 0},
		{"above", 1.5, 0, 1, 1},
		{"nan", math.NaN(), 0, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.exp {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.exp)
			}
		})
	}
	if Max(2, 3) != 3 || Max(-1, -4) != -1 {
		t.Error("Max returned wrong value")
	}
}
