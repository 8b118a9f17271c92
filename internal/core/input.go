package core

// Action represents a semantic command, abstracted from physical key presses.
// Letter keys are not actions; they are resolved against the letter pad.
type Action int

const (
	ActionNone    Action = iota
	ActionSubmit         // Enter - submit the current guess
	ActionDelete         // Backspace - remove the last letter
	ActionClear          // Esc - clear the current guess
	ActionShuffle        // Space - shuffle the outer letters
	ActionScores         // Tab - toggle the result history
	ActionHelp           // ? - toggle full help
	ActionQuit           // Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionDelete:
		return "Delete"
	case ActionClear:
		return "Clear"
	case ActionShuffle:
		return "Shuffle"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
