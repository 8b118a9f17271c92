package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	var a Assembler
	assert.True(t, a.Empty())
	assert.Equal(t, "", a.String())

	for _, r := range "gaffe" {
		assert.True(t, a.Append(r))
	}
	assert.Equal(t, "gaffe", a.String())
	assert.Equal(t, 5, a.Len())

	a.Backspace()
	assert.Equal(t, "gaff", a.String())

	assert.Equal(t, "gaff", a.Take())
	assert.True(t, a.Empty())

	// Backspace on empty is a no-op.
	a.Backspace()
	assert.True(t, a.Empty())
}

func TestAssemblerUnicodeAndLimit(t *testing.T) {
	var a Assembler
	a.Append('ä')
	a.Append('r')
	assert.Equal(t, "är", a.String())
	a.Backspace()
	assert.Equal(t, []rune{'ä'}, a.Letters())

	a.Clear()
	for i := 0; i < maxGuessLength; i++ {
		assert.True(t, a.Append('a'))
	}
	assert.False(t, a.Append('b'))
	assert.Equal(t, maxGuessLength, a.Len())
}
