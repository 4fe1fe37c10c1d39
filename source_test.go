package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceLineCol(t *testing.T) {
	s := newSource("ab\ncd\n\nefg")
	for _, tc := range []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},  // the newline itself
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
		{-1, 1, 1},
		{100, 4, 4}, // clamped to end of text
	} {
		line, col := s.lineCol(tc.offset)
		assert.Equal(t, tc.line, line, "offset %d", tc.offset)
		assert.Equal(t, tc.col, col, "offset %d", tc.offset)
	}
}

func TestSourceLineColCountsRunes(t *testing.T) {
	s := newSource("état -> fin")
	// é is two bytes but one column
	_, col := s.lineCol(5)
	assert.Equal(t, 5, col)
}

func TestScannerSkipsComments(t *testing.T) {
	s := newScanner(newSource("  // line comment\n# another\n\ttok rest"))
	tok, offset, ok := s.ident()
	assert.True(t, ok)
	assert.Equal(t, "tok", tok)
	line, col := s.src.lineCol(offset)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}
