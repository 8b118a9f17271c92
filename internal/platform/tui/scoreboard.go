package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
	"github.com/vovakirdan/hive/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show puzzle list sidebar
	sidebarWidth       = 20  // Width of puzzle list sidebar
	maxResults         = 100 // Max results to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPuzzle key.Binding
	PrevPuzzle key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPuzzle, k.PrevPuzzle},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPuzzle: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next puzzle"),
		),
		PrevPuzzle: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev puzzle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing result history.
type ScoreboardModel struct {
	puzzles     []catalog.Entry
	cursor      int
	store       *storage.Store
	results     []storage.Result
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over the given puzzles, opened on startID.
func NewScoreboardModel(store *storage.Store, puzzles []catalog.Entry, startID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		puzzles:     puzzles,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, p := range puzzles {
		if p.ID == startID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.puzzles) > 0 {
		m.loadResults(m.puzzles[m.cursor].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	return newHistoryTable(m.height-8, true)
}

// newHistoryTable builds the result table shared by the scoreboard and the
// in-game history panel.
func newHistoryTable(height int, focused bool) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Words", Width: 7},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(focused),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	if !focused {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	return t
}

// historyRows formats results for the table.
func historyRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d/%d", r.Score, r.TotalScore),
			fmt.Sprintf("%d/%d", r.WordsFound, r.TotalWords),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// loadResults loads history for the given puzzle ID.
func (m *ScoreboardModel) loadResults(puzzleID string) {
	m.results = nil
	if m.store != nil {
		if results, err := m.store.TopResults(puzzleID, maxResults); err == nil {
			m.results = results
		}
	}
	m.table.SetRows(historyRows(m.results))
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPuzzle):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.puzzles)
				m.loadResults(m.puzzles[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPuzzle):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.puzzles)) % len(m.puzzles)
				m.loadResults(m.puzzles[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "HISTORY"
	if len(m.puzzles) > 0 {
		title = fmt.Sprintf("HISTORY - %s", m.puzzles[m.cursor].Name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(style(core.ColorMuted).Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the history with a sidebar for puzzle selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Puzzles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.puzzles {
		cursor := "  "
		st := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			st = st.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(st.Render(cursor + truncate(p.Name, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows the current puzzle between arrows above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.puzzles) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.puzzles[m.cursor].Name), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No results recorded yet.\nFinish a session to add one!")
	}
	return m.table.View()
}

// truncate shortens s to at most n display columns.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "."
}

// RunScoreboard runs the history browser.
func RunScoreboard(store *storage.Store, puzzles []catalog.Entry, startID string, width, height int) error {
	model := NewScoreboardModel(store, puzzles, startID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
