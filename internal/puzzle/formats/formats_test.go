package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
  "key_letter": "g",
  "other_letters": ["a", "b", "c", "d", "e", "f"],
  "words": ["cabbage", "faced"],
  "total_words": 2
}`)

	raw, err := Parse(data, ".json")
	require.NoError(t, err)

	assert.Equal(t, "g", raw.Required)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, raw.Others)
	assert.Equal(t, []string{"cabbage", "faced"}, raw.Answers)
	assert.Equal(t, 2, raw.TotalWords)
	assert.Empty(t, raw.ID)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: pantry
name: Pantry
key_letter: l
other_letters: [a, p, e, n, t, y]
words:
  - penalty
  - plate
total_words: 2
`)

	for _, ext := range []string{".yaml", ".YML"} {
		raw, err := Parse(data, ext)
		require.NoError(t, err, ext)

		assert.Equal(t, "pantry", raw.ID)
		assert.Equal(t, "Pantry", raw.Name)
		assert.Equal(t, "l", raw.Required)
		assert.Len(t, raw.Others, 6)
		assert.Equal(t, []string{"penalty", "plate"}, raw.Answers)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{`), ".json")
	assert.Error(t, err)

	_, err = Parse([]byte("key_letter: [unterminated"), ".yaml")
	assert.Error(t, err)

	_, err = Parse([]byte(`{}`), ".txt")
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".json", ".yaml", ".yml"}, Extensions())
	assert.True(t, Supported(".JSON"))
	assert.False(t, Supported(".txt"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(".json", ParseJSON)
	})
}
