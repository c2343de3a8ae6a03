package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"michael", "micheal", 2},
		{"chen", "chan", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EditDistance(tt.a, tt.b), "EditDistance(%q, %q)", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Michael Chen", "michael chen"))
	assert.Equal(t, 1.0, Similarity("", ""))

	// One substitution in a 12-rune name.
	assert.InDelta(t, 1.0-1.0/12.0, Similarity("Michael Chen", "Michael Chan"), 1e-9)

	// Unrelated strings score low.
	assert.Less(t, Similarity("Michael Chen", "Quarterly Report"), 0.4)
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Michael Chen", "Micheal Chen"},
		{"Sarah", "Sara"},
		{"engineering", "marketing"},
	}
	for _, pair := range pairs {
		assert.Equal(t, Similarity(pair[0], pair[1]), Similarity(pair[1], pair[0]))
	}
}
