package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"rotate", "rotate", 0},
		{"rotat", "rotate", 1},
		{"rotaet", "rotate", 2},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevenshteinDistance(tt.s1, tt.s2), "%s -> %s", tt.s1, tt.s2)
		assert.Equal(t, tt.expected, LevenshteinDistance(tt.s2, tt.s1), "%s -> %s", tt.s2, tt.s1)
	}
}

func TestSuggest(t *testing.T) {
	commands := []string{"add", "subtract", "rotate", "mirror"}

	s, ok := Suggest(" Rotat ", commands)
	assert.True(t, ok)
	assert.Equal(t, "rotate", s)

	_, ok = Suggest("explode", commands)
	assert.False(t, ok)

	assert.Equal(t, " (did you mean mirror?)", DidYouMean("miror", commands))
	assert.Empty(t, DidYouMean("explode", commands))
}
