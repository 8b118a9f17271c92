// Package puzzle holds the immutable definition of a word-hive puzzle and
// the rules for building one from loader input.
// It has no dependency on the engine or the UI so both can share it.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Puzzle shape constants.
const (
	MinWordLength   = 4   // Shortest word that can score
	MaxOuterLetters = 6   // Letters around the center tile
	Blank           = ' ' // Letter used by the placeholder puzzle
)

// ErrMalformedPuzzle is returned when loader input breaks the puzzle rules.
// Callers recover by falling back to Placeholder.
var ErrMalformedPuzzle = errors.New("malformed puzzle")

// Raw is the structural record handed over by a loader.
// Fields are consumed positionally; nothing is normalized yet.
type Raw struct {
	ID         string
	Name       string
	Required   string   // The key letter
	Others     []string // Up to six outer letters, in layout order
	Answers    []string // Every word the puzzle accepts
	TotalWords int      // Declared number of answers (<= 0 means count them)
}

// Definition is an immutable puzzle. Build it with Load or Placeholder.
type Definition struct {
	id         string
	name       string
	required   rune
	others     []rune
	letters    map[rune]struct{}
	answers    map[string]struct{}
	totalScore int
	totalWords int
}

// Load validates raw input and builds a Definition.
// Letters and answers are normalized (NFC, lowercase). Duplicate letters and
// duplicate answers collapse. Errors wrap ErrMalformedPuzzle.
func Load(raw Raw) (Definition, error) {
	req := []rune(Normalize(raw.Required))
	if len(req) != 1 {
		return Definition{}, fmt.Errorf("puzzle: required letter %q is not a single letter: %w", raw.Required, ErrMalformedPuzzle)
	}

	if n := len(raw.Others); n < 1 || n > MaxOuterLetters {
		return Definition{}, fmt.Errorf("puzzle: got %d other letters, want 1-%d: %w", n, MaxOuterLetters, ErrMalformedPuzzle)
	}

	def := Definition{
		id:       raw.ID,
		name:     raw.Name,
		required: req[0],
		letters:  map[rune]struct{}{req[0]: {}},
	}

	for i, o := range raw.Others {
		r := []rune(Normalize(o))
		if len(r) != 1 {
			return Definition{}, fmt.Errorf("puzzle: other letter %d (%q) is not a single letter: %w", i, o, ErrMalformedPuzzle)
		}
		if _, dup := def.letters[r[0]]; dup {
			continue
		}
		def.letters[r[0]] = struct{}{}
		def.others = append(def.others, r[0])
	}
	if len(def.others) == 0 {
		return Definition{}, fmt.Errorf("puzzle: no other letters besides %q: %w", def.required, ErrMalformedPuzzle)
	}

	def.answers = make(map[string]struct{}, len(raw.Answers))
	for _, w := range raw.Answers {
		w = Normalize(w)
		if w == "" {
			continue
		}
		for _, r := range w {
			if _, ok := def.letters[r]; !ok {
				return Definition{}, fmt.Errorf("puzzle: answer %q uses %q outside the letter set: %w", w, r, ErrMalformedPuzzle)
			}
		}
		if _, dup := def.answers[w]; dup {
			continue
		}
		def.answers[w] = struct{}{}
		def.totalScore += WordLength(w)
	}

	def.totalWords = raw.TotalWords
	if def.totalWords <= 0 {
		def.totalWords = len(def.answers)
	}

	return def, nil
}

// Placeholder returns the degenerate puzzle used when loading fails:
// every letter is blank and the only answer is four blanks.
func Placeholder() Definition {
	word := string([]rune{Blank, Blank, Blank, Blank})
	return Definition{
		id:         "placeholder",
		name:       "No puzzle loaded",
		required:   Blank,
		letters:    map[rune]struct{}{Blank: {}},
		answers:    map[string]struct{}{word: {}},
		totalScore: WordLength(word),
		totalWords: 1,
	}
}

// ID returns the puzzle identifier (usually the file name without extension).
func (d Definition) ID() string {
	return d.id
}

// Name returns the display name, falling back to the ID.
func (d Definition) Name() string {
	if d.name == "" {
		return d.id
	}
	return d.name
}

// Required returns the letter every answer must contain.
func (d Definition) Required() rune {
	return d.required
}

// Others returns the outer letters in their supplied order.
func (d Definition) Others() []rune {
	out := make([]rune, len(d.others))
	copy(out, d.others)
	return out
}

// Letters returns the allowed letter set, sorted.
func (d Definition) Letters() []rune {
	out := make([]rune, 0, len(d.letters))
	for r := range d.letters {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasLetter reports whether r is in the allowed set.
func (d Definition) HasLetter(r rune) bool {
	_, ok := d.letters[r]
	return ok
}

// IsAnswer reports whether the already normalized word is a valid answer.
func (d Definition) IsAnswer(word string) bool {
	_, ok := d.answers[word]
	return ok
}

// Answers returns all valid answers, sorted.
func (d Definition) Answers() []string {
	out := make([]string, 0, len(d.answers))
	for w := range d.answers {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// TotalScore is the sum of answer lengths: the denominator for progress.
func (d Definition) TotalScore() int {
	return d.totalScore
}

// TotalWords is the declared number of answers.
func (d Definition) TotalWords() int {
	return d.totalWords
}

// Normalize puts a word into the form answers are stored in:
// NFC composed, then lowercased. Spaces are kept.
func Normalize(s string) string {
	// Casers carry state, so one is built per call.
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// WordLength counts letters, not bytes.
func WordLength(s string) int {
	return utf8.RuneCountInString(s)
}
