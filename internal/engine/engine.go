// Package engine owns the mutable state of one puzzle session:
// which words have been found and the score they add up to.
// It performs no I/O and is driven synchronously by the caller.
package engine

import (
	"strings"

	"github.com/vovakirdan/hive/internal/puzzle"
)

// Engine validates guesses against a loaded puzzle.
// The zero value is usable and behaves like an empty puzzle.
type Engine struct {
	def   puzzle.Definition
	found map[string]struct{}
	order []string // found words in submission order
	score int      // always scoreOf(order)
}

// New creates an engine with def already loaded.
func New(def puzzle.Definition) *Engine {
	e := &Engine{}
	e.LoadPuzzle(def)
	return e
}

// LoadPuzzle replaces the puzzle and discards every found word.
func (e *Engine) LoadPuzzle(def puzzle.Definition) {
	e.def = def
	e.found = make(map[string]struct{})
	e.order = nil
	e.score = 0
}

// SubmitGuess classifies raw and, only when it is Accepted, records it.
// Checks run in order and stop at the first failure.
func (e *Engine) SubmitGuess(raw string) Outcome {
	word := puzzle.Normalize(raw)

	if puzzle.WordLength(word) < puzzle.MinWordLength {
		return TooShort
	}
	if !strings.ContainsRune(word, e.def.Required()) {
		return MissingRequiredLetter
	}
	if _, ok := e.found[word]; ok {
		return AlreadyFound
	}
	if !e.def.IsAnswer(word) {
		return NotInAnswerSet
	}

	if e.found == nil {
		e.found = make(map[string]struct{})
	}
	e.found[word] = struct{}{}
	e.order = append(e.order, word)
	e.score = scoreOf(e.order)
	return Accepted
}

// scoreOf is the single definition of score: total letters found.
func scoreOf(words []string) int {
	total := 0
	for _, w := range words {
		total += puzzle.WordLength(w)
	}
	return total
}

// Score returns the sum of lengths of the found words.
func (e *Engine) Score() int {
	return e.score
}

// Progress returns Score/TotalScore in [0, 1], or 0 for an empty puzzle.
func (e *Engine) Progress() float64 {
	total := e.def.TotalScore()
	if total <= 0 {
		return 0
	}
	p := float64(e.score) / float64(total)
	if p > 1 {
		return 1
	}
	return p
}

// TotalWordCount returns the puzzle's declared number of answers.
func (e *Engine) TotalWordCount() int {
	return e.def.TotalWords()
}

// FoundWords returns the found words in the order they were accepted.
func (e *Engine) FoundWords() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// FoundCount returns how many words have been found.
func (e *Engine) FoundCount() int {
	return len(e.order)
}

// HasFound reports whether word (in any case) has been found.
func (e *Engine) HasFound(word string) bool {
	_, ok := e.found[puzzle.Normalize(word)]
	return ok
}

// Complete reports whether every answer has been found.
func (e *Engine) Complete() bool {
	return e.def.TotalScore() > 0 && e.score >= e.def.TotalScore()
}

// IsPangram reports whether word uses every letter of the puzzle.
func (e *Engine) IsPangram(word string) bool {
	letters := e.def.Letters()
	if len(letters) == 0 {
		return false
	}
	word = puzzle.Normalize(word)
	for _, r := range letters {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Definition returns the loaded puzzle.
func (e *Engine) Definition() puzzle.Definition {
	return e.def
}
