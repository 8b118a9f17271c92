package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/letterpad"
	"github.com/vovakirdan/hive/internal/puzzle"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorTile:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPressed: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorOutline: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// style returns the lipgloss style for a color, falling back to the default.
func style(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// DrawHive draws the letter pad into s using the tile positions of l.
// Outer tiles are scaled by the pad's shuffle animation; the center never moves.
func DrawHive(s *core.Screen, l Layout, pad *letterpad.Pad) {
	active, pressed := pad.Active()

	for _, t := range Tiles() {
		rect := l.Rect(t)
		if t != letterpad.Center {
			rect = rect.Scale(pad.Scale())
		}
		if rect.Empty() {
			continue
		}

		letter := pad.Letter(t)
		outline, text := core.ColorOutline, core.ColorTile
		switch {
		case pressed && active == t:
			outline, text = core.ColorPressed, core.ColorPressed
		case t == letterpad.Center:
			outline, text = core.ColorKey, core.ColorKey
		case letter == puzzle.Blank:
			outline = core.ColorMuted
		}

		s.DrawBox(rect, outline)
		if letter == puzzle.Blank || rect.W < 3 || rect.H < 3 {
			continue
		}
		label := upper(letter)
		cx, cy := rect.Center()
		s.DrawText(cx-lipgloss.Width(label)/2, cy, label, text)
	}
}

// upper renders a letter for display. Casers carry state, so one is built per call.
func upper(r rune) string {
	return cases.Upper(language.Und).String(string(r))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
