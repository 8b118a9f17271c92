package tui

import (
	"strings"
)

// maxGuessLength bounds the working guess; no answer is this long.
const maxGuessLength = 32

// Assembler collects emitted letters into the working guess.
type Assembler struct {
	letters []rune
}

// Append adds a letter. Letters past maxGuessLength are dropped.
func (a *Assembler) Append(r rune) bool {
	if len(a.letters) >= maxGuessLength {
		return false
	}
	a.letters = append(a.letters, r)
	return true
}

// Backspace removes the last letter, if any.
func (a *Assembler) Backspace() {
	if len(a.letters) > 0 {
		a.letters = a.letters[:len(a.letters)-1]
	}
}

// Clear empties the guess.
func (a *Assembler) Clear() {
	a.letters = nil
}

// Take returns the guess and clears it.
func (a *Assembler) Take() string {
	s := a.String()
	a.Clear()
	return s
}

// Len returns the number of letters.
func (a Assembler) Len() int {
	return len(a.letters)
}

// Empty reports whether no letters have been entered.
func (a Assembler) Empty() bool {
	return len(a.letters) == 0
}

// Letters returns a copy of the entered letters.
func (a Assembler) Letters() []rune {
	return append([]rune(nil), a.letters...)
}

func (a Assembler) String() string {
	var sb strings.Builder
	for _, r := range a.letters {
		sb.WriteRune(r)
	}
	return sb.String()
}
