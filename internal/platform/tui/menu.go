package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
	"github.com/vovakirdan/hive/internal/storage"
)

// MenuKeyMap defines the puzzle picker bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuItem is one selectable puzzle.
type MenuItem struct {
	ID      string
	Name    string
	Letters string // key letter then the others, for a preview
	Best    int
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	quitting bool
	selected *MenuItem
}

// NewMenuModel lists the catalog entries, with best scores when a store is given.
func NewMenuModel(entries []catalog.Entry, store *storage.Store, width, height int) MenuModel {
	items := make([]MenuItem, 0, len(entries))
	for _, e := range entries {
		item := MenuItem{
			ID:      e.ID,
			Name:    e.Name,
			Letters: previewLetters(e),
		}
		if store != nil {
			if best, err := store.BestScore(e.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// previewLetters formats the raw letters as "G abcdef".
func previewLetters(e catalog.Entry) string {
	return strings.ToUpper(e.Raw.Required) + " " + strings.Join(e.Raw.Others, "")
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(style(core.ColorKey).Render("  H I V E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a puzzle", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(style(core.ColorMuted).Render("No puzzles found"), m.width))
		b.WriteString("\n")
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		cursor := "  "
		st := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			st = style(core.ColorAccent)
		}

		line := fmt.Sprintf("%s%-18s %s", cursor, truncate(item.Name, 18), item.Letters)
		if item.Best > 0 {
			line += fmt.Sprintf("   best %d", item.Best)
		}
		rows = append(rows, st.Render(line))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(style(core.ColorMuted).Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
