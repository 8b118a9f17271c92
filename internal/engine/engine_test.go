package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hive/internal/puzzle"
)

func mustLoad(t *testing.T, raw puzzle.Raw) puzzle.Definition {
	t.Helper()
	def, err := puzzle.Load(raw)
	require.NoError(t, err)
	return def
}

func gPuzzle(t *testing.T, answers ...string) puzzle.Definition {
	return mustLoad(t, puzzle.Raw{
		Required:   "g",
		Others:     []string{"a", "b", "c", "d", "e", "f"},
		Answers:    answers,
		TotalWords: len(answers),
	})
}

// The worked example lists "faced" as an answer even though it lacks the
// required letter, and calls "bed" a missing-letter case though it is only
// three letters long. The ordered checks decide both: "faced" stops at the
// required-letter check and "bed" at the length check.
func TestWorkedExample(t *testing.T) {
	e := New(gPuzzle(t, "cabbage", "faced"))
	require.Equal(t, 12, e.Definition().TotalScore())

	assert.Equal(t, Accepted, e.SubmitGuess("cabbage"))
	assert.Equal(t, 7, e.Score())
	assert.InDelta(t, 7.0/12.0, e.Progress(), 1e-9)

	assert.Equal(t, MissingRequiredLetter, e.SubmitGuess("faced"))
	assert.Equal(t, 7, e.Score())

	assert.Equal(t, TooShort, e.SubmitGuess("cab"))
	assert.Equal(t, TooShort, e.SubmitGuess("bed"))
	assert.Equal(t, MissingRequiredLetter, e.SubmitGuess("bead"))
	assert.Equal(t, 7, e.Score())
	assert.Equal(t, 2, e.TotalWordCount())
}

func TestFullProgress(t *testing.T) {
	e := New(gPuzzle(t, "cabbage", "gaffe"))

	assert.Equal(t, Accepted, e.SubmitGuess("cabbage"))
	assert.False(t, e.Complete())
	assert.Equal(t, Accepted, e.SubmitGuess("GAFFE"))
	assert.Equal(t, 12, e.Score())
	assert.Equal(t, 1.0, e.Progress())
	assert.True(t, e.Complete())
	assert.Equal(t, []string{"cabbage", "gaffe"}, e.FoundWords())
}

func TestSubmitGuessOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		want  Outcome
	}{
		{"accepted", "badge", Accepted},
		{"uppercase accepted", "BADGE", Accepted},
		{"too short even though valid", "bag", TooShort},
		{"empty", "", TooShort},
		{"missing required letter", "face", MissingRequiredLetter},
		{"not in answer set", "gggg", NotInAnswerSet},
		{"letters outside puzzle", "gzzz", NotInAnswerSet},
		{"embedded space is not stripped", "bad ge", NotInAnswerSet},
		{"leading space is not trimmed", " badge", NotInAnswerSet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(gPuzzle(t, "badge", "bag"))
			assert.Equal(t, tc.want, e.SubmitGuess(tc.guess))
			if tc.want != Accepted {
				assert.Zero(t, e.Score(), "non-accepted outcomes must not change score")
				assert.Zero(t, e.FoundCount())
			}
		})
	}
}

func TestAlreadyFound(t *testing.T) {
	e := New(gPuzzle(t, "cabbage"))

	assert.Equal(t, Accepted, e.SubmitGuess("cabbage"))
	assert.Equal(t, AlreadyFound, e.SubmitGuess("cabbage"))
	assert.Equal(t, AlreadyFound, e.SubmitGuess("Cabbage"))
	assert.Equal(t, 7, e.Score(), "score increases once")
	assert.Equal(t, 1, e.FoundCount())
	assert.True(t, e.HasFound("CABBAGE"))
}

func TestLoadPuzzleResetsSession(t *testing.T) {
	e := New(gPuzzle(t, "cabbage"))
	require.Equal(t, Accepted, e.SubmitGuess("cabbage"))

	e.LoadPuzzle(gPuzzle(t, "cabbage", "badge"))
	assert.Zero(t, e.Score())
	assert.Empty(t, e.FoundWords())
	assert.Equal(t, Accepted, e.SubmitGuess("cabbage"), "no carry-over between puzzles")
}

func TestProgressMonotonicAndBounded(t *testing.T) {
	e := New(gPuzzle(t, "cabbage", "badge", "gaffe"))
	guesses := []string{"x", "cabbage", "face", "cabbage", "zzzzg", "badge", "gaffe", "gaffe", "bag"}

	prev := e.Progress()
	for _, g := range guesses {
		e.SubmitGuess(g)
		p := e.Progress()
		assert.False(t, math.IsNaN(p))
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		assert.GreaterOrEqual(t, p, prev, "progress never decreases (after %q)", g)
		prev = p
	}
	assert.Equal(t, 1.0, prev)
}

func TestEmptyPuzzleProgress(t *testing.T) {
	var e Engine
	assert.Equal(t, 0.0, e.Progress())
	assert.Equal(t, MissingRequiredLetter, e.SubmitGuess("abcd"))
	assert.Zero(t, e.TotalWordCount())

	def := mustLoad(t, puzzle.Raw{Required: "g", Others: []string{"a"}})
	e.LoadPuzzle(def)
	assert.Equal(t, 0.0, e.Progress(), "zero total score must not divide by zero")
	assert.False(t, e.Complete())
}

func TestScoreMatchesFoundWords(t *testing.T) {
	e := New(gPuzzle(t, "cabbage", "badge", "gaffe"))
	for _, g := range []string{"badge", "nope", "gaffe", "badge"} {
		e.SubmitGuess(g)
		sum := 0
		for _, w := range e.FoundWords() {
			sum += puzzle.WordLength(w)
		}
		assert.Equal(t, sum, e.Score())
	}
}

func TestPlaceholderPuzzle(t *testing.T) {
	e := New(puzzle.Placeholder())

	assert.Equal(t, TooShort, e.SubmitGuess("   "))
	assert.Equal(t, Accepted, e.SubmitGuess("    "))
	assert.Equal(t, 1.0, e.Progress())
}

func TestUnicodeLength(t *testing.T) {
	e := New(mustLoad(t, puzzle.Raw{
		Required: "ä",
		Others:   []string{"r", "g", "e", "n", "s", "t"},
		Answers:  []string{"säge", "ärger"},
	}))

	assert.Equal(t, Accepted, e.SubmitGuess("SÄGE"))
	assert.Equal(t, 4, e.Score())
	assert.Equal(t, TooShort, e.SubmitGuess("äre"))
}

func TestIsPangram(t *testing.T) {
	e := New(mustLoad(t, puzzle.Raw{
		Required: "l",
		Others:   []string{"a", "p", "e", "n", "t", "y"},
		Answers:  []string{"penalty", "plate"},
	}))

	assert.True(t, e.IsPangram("penalty"))
	assert.True(t, e.IsPangram("PENALTY"))
	assert.False(t, e.IsPangram("plate"))

	var empty Engine
	assert.False(t, empty.IsPangram("anything"))
}

func TestOutcomeStrings(t *testing.T) {
	for _, o := range []Outcome{TooShort, MissingRequiredLetter, NotInAnswerSet, AlreadyFound, Accepted} {
		assert.NotEqual(t, "Unknown", o.String())
		assert.NotEmpty(t, o.Message())
	}
	assert.Equal(t, "Unknown", Outcome(99).String())
}
