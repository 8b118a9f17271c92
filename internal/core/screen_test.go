package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorKey)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorKey {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorKey", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorBad)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("Resize gave %dx%d, expected 4x3", s.Width(), s.Height())
	}
	s.Resize(-1, -1)
	if s.String() != "" {
		t.Error("Negative resize should produce an empty screen")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	n := s.DrawText(2, 1, "Hello", ColorAccent)
	if n != 5 {
		t.Errorf("DrawText returned %d columns, expected 5", n)
	}

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawWideText(t *testing.T) {
	s := NewScreen(10, 1)
	n := s.DrawText(0, 0, "蜂a", ColorDefault)
	if n != 3 {
		t.Errorf("DrawText returned %d columns, expected 3", n)
	}
	if s.Get(0, 0) != '蜂' || s.Get(1, 0) != 0 || s.Get(2, 0) != 'a' {
		t.Errorf("wide rune layout wrong: %q", s.Row(0))
	}
	if got := s.Row(0); got != "蜂a       " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorOutline)

	corners := map[[2]int]rune{
		{1, 1}: '╭',
		{5, 1}: '╮',
		{1, 4}: '╰',
		{5, 4}: '╯',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorOutline {
		t.Error("box should carry its color")
	}

	// Degenerate boxes
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1), ColorDefault)
	if s.Get(0, 0) != '█' {
		t.Errorf("1x1 box should be a block, got %q", s.Get(0, 0))
	}
	s.DrawBox(NewRect(3, 3, 0, 0), ColorDefault)
	if s.Get(3, 3) != ' ' {
		t.Error("empty box should draw nothing")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Error("out of range Row should be blank")
	}
}
