package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/puzzle"
)

// KeyMap defines the play screen bindings. Printable letters are not bound:
// they go to the letter pad, so no command may use a letter key.
type KeyMap struct {
	Submit  key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Shuffle key.Binding
	Scores  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Shuffle, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete, k.Clear},
		{k.Shuffle, k.Scores},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default play screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "ctrl+u"),
			key.WithHelp("esc", "clear"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shuffle"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action translates a key message to a command, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Submit):
		return core.ActionSubmit
	case key.Matches(msg, k.Delete):
		return core.ActionDelete
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Shuffle):
		return core.ActionShuffle
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// letterKey extracts a single typed letter, normalized the way answers are.
func letterKey(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	s := []rune(puzzle.Normalize(string(msg.Runes)))
	if len(s) != 1 || s[0] == puzzle.Blank {
		return 0, false
	}
	return s[0], true
}
