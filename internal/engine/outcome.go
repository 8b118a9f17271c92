package engine

// Outcome classifies a submitted guess. Outcomes are results, not errors.
type Outcome int

const (
	TooShort Outcome = iota
	MissingRequiredLetter
	NotInAnswerSet
	AlreadyFound
	Accepted
)

// String returns a stable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case TooShort:
		return "TooShort"
	case MissingRequiredLetter:
		return "MissingRequiredLetter"
	case NotInAnswerSet:
		return "NotInAnswerSet"
	case AlreadyFound:
		return "AlreadyFound"
	case Accepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

// Message returns short player-facing feedback.
func (o Outcome) Message() string {
	switch o {
	case TooShort:
		return "Too short"
	case MissingRequiredLetter:
		return "Missing center letter"
	case NotInAnswerSet:
		return "Not in word list"
	case AlreadyFound:
		return "Already found"
	case Accepted:
		return "Nice!"
	default:
		return ""
	}
}
