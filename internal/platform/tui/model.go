package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hive/internal/config"
	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/engine"
	"github.com/vovakirdan/hive/internal/letterpad"
	"github.com/vovakirdan/hive/internal/puzzle"
	"github.com/vovakirdan/hive/internal/storage"
)

// Play screen geometry.
const (
	hiveTop     = 3 // rows above the hive: title, stats, blank
	hiveMargin  = 2 // columns left of the hive
	panelWidth  = 36
	feedbackTTL = 1500 * time.Millisecond
	historySize = 10
)

// Settings carries what a play session needs besides the puzzle.
type Settings struct {
	Runtime core.RuntimeConfig
	Timing  letterpad.Timing
	Ranks   []config.Rank
	Store   *storage.Store // nil disables history
	Logger  *log.Logger    // nil disables logging
}

// SettingsFrom builds play settings from the loaded configuration.
func SettingsFrom(cfg config.Config) Settings {
	rt := core.DefaultConfig()
	rt.TickRate = cfg.TickRate
	return Settings{
		Runtime: rt,
		Timing:  cfg.Shuffle.Timing(),
		Ranks:   cfg.Ranks,
	}
}

// Feedback is the transient message shown under the guess.
type Feedback struct {
	Text  string
	Color core.Color
	ttl   time.Duration
}

// Visible reports whether the message is still on screen.
func (f Feedback) Visible() bool {
	return f.Text != "" && f.ttl > 0
}

// Model is the Bubble Tea model for one play session on one puzzle.
type Model struct {
	engine   *engine.Engine
	pad      *letterpad.Pad
	guess    Assembler
	layout   Layout
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	bar      progress.Model
	history  table.Model
	settings Settings

	feedback    Feedback
	tickSeq     uint64
	lastTick    time.Time
	width       int
	height      int
	best        int
	showHistory bool
	embedded    bool // running inside a SessionModel
	quitting    bool
	saved       bool
}

// NewModel creates a play model for def.
func NewModel(def puzzle.Definition, settings Settings) Model {
	def0 := core.DefaultConfig()
	rt := &settings.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def0.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def0.ScreenW, def0.ScreenH
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine: engine.New(def),
		pad: letterpad.FromPuzzle(def,
			letterpad.WithTiming(settings.Timing),
			letterpad.WithRandom(letterpad.NewSeededRandom(rt.Seed)),
		),
		layout:   NewLayout(hiveMargin, 0),
		screen:   core.NewScreen(HiveWidth+2*hiveMargin, HiveHeight),
		keys:     DefaultKeyMap(),
		help:     h,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(panelWidth-4)),
		history:  newHistoryTable(HiveHeight-2, false),
		settings: settings,
		tickSeq:  nextTickSeq(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
	m.help.Width = rt.ScreenW
	m.loadHistory()
	return m
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.settings.Runtime.TickRate, m.tickSeq)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Seq != m.tickSeq {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.saveResult()
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionSubmit:
		m.submit()
	case core.ActionDelete:
		m.guess.Backspace()
	case core.ActionClear:
		m.guess.Clear()
	case core.ActionShuffle:
		m.pad.RequestShuffle()
	case core.ActionScores:
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.loadHistory()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:
		if r, ok := letterKey(msg); ok {
			m.typeLetter(r)
		}
	}
	return m, nil
}

// typeLetter taps the tile showing r, if any.
func (m *Model) typeLetter(r rune) {
	tile, ok := m.pad.TileFor(r)
	if !ok {
		m.flash(fmt.Sprintf("%s is not in the hive", upper(r)), core.ColorMuted)
		return
	}
	if letter, ok := m.pad.Tap(tile); ok {
		m.guess.Append(letter)
	}
}

// handleMouse drives the pad with left button press/release on tiles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	tile, onTile := m.layout.TileAt(msg.X, msg.Y-hiveTop)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onTile {
			m.pad.Press(tile)
		}
	case tea.MouseActionRelease:
		if !onTile {
			m.pad.Cancel()
			break
		}
		if letter, ok := m.pad.Release(tile); ok {
			m.guess.Append(letter)
		}
	}
	return m, nil
}

// handleTick advances the shuffle animation and expires feedback.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.pad.Advance(dt)
	if m.feedback.ttl > 0 {
		m.feedback.ttl -= dt
	}

	if m.quitting {
		return m, nil
	}
	return m, tickCmd(m.settings.Runtime.TickRate, m.tickSeq)
}

// submit hands the assembled guess to the engine.
func (m *Model) submit() {
	if m.guess.Empty() {
		return
	}
	word := m.guess.Take()
	outcome := m.engine.SubmitGuess(word)

	switch {
	case outcome != engine.Accepted:
		m.flash(outcome.Message(), core.ColorBad)
	case m.engine.Complete():
		m.flash("Every word found!", core.ColorGood)
	case m.engine.IsPangram(word):
		m.flash(fmt.Sprintf("Pangram! +%d", puzzle.WordLength(word)), core.ColorGood)
	default:
		m.flash(fmt.Sprintf("%s +%d", outcome.Message(), puzzle.WordLength(word)), core.ColorGood)
	}
}

// flash shows a transient message.
func (m *Model) flash(text string, c core.Color) {
	m.feedback = Feedback{Text: text, Color: c, ttl: feedbackTTL}
}

// loadHistory refreshes the best score and the history table.
func (m *Model) loadHistory() {
	store := m.settings.Store
	id := m.engine.Definition().ID()
	if store == nil {
		return
	}
	results, err := store.TopResults(id, historySize)
	if err != nil {
		m.warn("could not load history", "puzzle", id, "error", err)
		return
	}
	m.history.SetRows(historyRows(results))
	if len(results) > 0 {
		m.best = results[0].Score
	}
}

// saveResult records the session once, when something was scored.
func (m *Model) saveResult() {
	if m.saved || m.settings.Store == nil || m.engine.Score() == 0 {
		return
	}
	m.saved = true
	if _, err := m.settings.Store.SaveResult(m.Result()); err != nil {
		m.warn("could not save result", "error", err)
	}
}

func (m *Model) warn(msg string, keyvals ...any) {
	if m.settings.Logger != nil {
		m.settings.Logger.Warn(msg, keyvals...)
	}
}

// Result summarizes the session for the history table.
func (m Model) Result() storage.Result {
	def := m.engine.Definition()
	return storage.Result{
		PuzzleID:   def.ID(),
		Score:      m.engine.Score(),
		TotalScore: def.TotalScore(),
		WordsFound: m.engine.FoundCount(),
		TotalWords: m.engine.TotalWordCount(),
	}
}

// Rank returns the current rank name, or "" when no ranks are configured.
func (m Model) Rank() string {
	return config.RankFor(m.settings.Ranks, m.engine.Progress()).Name
}

// Guess returns the working guess.
func (m Model) Guess() string {
	return m.guess.String()
}

// Feedback returns the current message.
func (m Model) Feedback() Feedback {
	return m.feedback
}

// Engine exposes the session engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Pad exposes the letter pad.
func (m Model) Pad() *letterpad.Pad {
	return m.pad
}

// IsQuitting returns true once the player has ended the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && !m.embedded {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHive(),
		"",
		m.renderGuess(),
		m.renderFeedback(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", m.renderPanel()))

	b.WriteString("\n\n")
	b.WriteString(style(core.ColorMuted).Render(m.help.View(m.keys)))
	return b.String()
}

// renderHeader produces exactly hiveTop lines.
func (m Model) renderHeader() string {
	def := m.engine.Definition()
	title := style(core.ColorAccent).Render("HIVE") + "  " + def.Name()

	stats := fmt.Sprintf("Score %d/%d   Words %d/%d",
		m.engine.Score(), def.TotalScore(), m.engine.FoundCount(), m.engine.TotalWordCount())
	if rank := m.Rank(); rank != "" {
		stats += "   " + style(core.ColorKey).Render(rank)
	}
	if m.best > 0 {
		stats += style(core.ColorMuted).Render(fmt.Sprintf("   best %d", m.best))
	}

	return title + "\n" + stats + "\n"
}

// renderHive draws the pad into the screen buffer.
func (m Model) renderHive() string {
	m.screen.Clear()
	DrawHive(m.screen, m.layout, m.pad)
	return RenderScreen(m.screen)
}

func (m Model) renderGuess() string {
	var text string
	if m.guess.Empty() {
		text = style(core.ColorMuted).Render("type or click letters")
	} else {
		text = m.styledGuess() + style(core.ColorMuted).Render("_")
	}
	return centerText(text, m.screen.Width())
}

// styledGuess highlights the required letter inside the guess.
func (m Model) styledGuess() string {
	required := m.engine.Definition().Required()
	var sb strings.Builder
	for _, r := range m.guess.Letters() {
		c := core.ColorTile
		if r == required {
			c = core.ColorKey
		}
		sb.WriteString(style(c).Render(upper(r)))
	}
	return sb.String()
}

func (m Model) renderFeedback() string {
	if !m.feedback.Visible() {
		return ""
	}
	return centerText(style(m.feedback.Color).Render(m.feedback.Text), m.screen.Width())
}

// renderPanel shows progress and either the found words or the history table.
func (m Model) renderPanel() string {
	var b strings.Builder
	b.WriteString(m.bar.ViewAs(m.engine.Progress()))
	b.WriteString("\n")
	b.WriteString(m.nextRankLine())
	b.WriteString("\n\n")

	if m.showHistory {
		b.WriteString(style(core.ColorAccent).Render("History"))
		b.WriteString("\n")
		if len(m.history.Rows()) == 0 {
			b.WriteString(style(core.ColorMuted).Render("No results yet"))
		} else {
			b.WriteString(m.history.View())
		}
	} else {
		b.WriteString(style(core.ColorAccent).Render(
			fmt.Sprintf("Found %d", m.engine.FoundCount())))
		b.WriteString("\n")
		b.WriteString(m.renderFound(HiveHeight - 2))
	}

	return lipgloss.NewStyle().Width(panelWidth).Render(b.String())
}

// nextRankLine tells how many points the next rank needs.
func (m Model) nextRankLine() string {
	next, ok := config.NextRank(m.settings.Ranks, m.engine.Progress())
	if !ok {
		return ""
	}
	total := m.engine.Definition().TotalScore()
	need := int(math.Ceil(next.MinProgress*float64(total))) - m.engine.Score()
	if need <= 0 {
		return ""
	}
	return style(core.ColorMuted).Render(fmt.Sprintf("%d to %s", need, next.Name))
}

// renderFound lists found words alphabetically in columns of the given height.
func (m Model) renderFound(rows int) string {
	words := m.engine.FoundWords()
	if len(words) == 0 {
		return style(core.ColorMuted).Render("Nothing yet")
	}
	sort.Strings(words)
	rows = max(rows, 1)

	var columns []string
	for start := 0; start < len(words); start += rows {
		end := min(start+rows, len(words))
		lines := make([]string, 0, end-start)
		for _, w := range words[start:end] {
			c := core.ColorDefault
			if m.engine.IsPangram(w) {
				c = core.ColorKey
			}
			lines = append(lines, style(c).Render(w))
		}
		columns = append(columns, strings.Join(lines, "\n"), "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Run starts the Bubble Tea program for def and returns the final model.
func Run(def puzzle.Definition, settings Settings) (Model, error) {
	model := NewModel(def, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
