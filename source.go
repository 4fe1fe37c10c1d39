package statemachine

import (
	"strings"
	"unicode/utf8"
)

// source wraps one compilation input and maps byte offsets to line/column
// positions. Line starts are collected once up front so repeated error
// positioning stays cheap.
type source struct {
	text       string
	lineStarts []int
}

func newSource(text string) *source {
	s := &source{text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// lineCol returns the 1-based line and rune column of a byte offset.
func (s *source) lineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.text) {
		offset = len(s.text)
	}
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	start := s.lineStarts[lo]
	return lo + 1, utf8.RuneCountInString(s.text[start:offset]) + 1
}

// column returns the 1-based rune column only.
func (s *source) column(offset int) int {
	_, col := s.lineCol(offset)
	return col
}

// scanner is a cursor over a source. Whitespace and single-line comments
// (`//` and `#`) are insignificant between tokens.
type scanner struct {
	src *source
	pos int
}

func newScanner(src *source) *scanner {
	return &scanner{src: src}
}

// skipInsignificant advances past whitespace and line comments.
func (s *scanner) skipInsignificant() {
	text := s.src.text
	for s.pos < len(text) {
		switch c := text[s.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++
		case c == '#' || (c == '/' && s.pos+1 < len(text) && text[s.pos+1] == '/'):
			if nl := strings.IndexByte(text[s.pos:], '\n'); nl >= 0 {
				s.pos += nl + 1
			} else {
				s.pos = len(text)
			}
		default:
			return
		}
	}
}

// ident fetches one identifier token. It returns the token text and its
// starting offset, or ok=false when the next significant character cannot
// start an identifier; the cursor then rests on that character.
func (s *scanner) ident() (tok string, offset int, ok bool) {
	s.skipInsignificant()
	text := s.src.text
	start := s.pos
	if start >= len(text) || !isIdentStart(text[start]) {
		return "", start, false
	}
	end := start + 1
	for end < len(text) && isIdentPart(text[end]) {
		end++
	}
	s.pos = end
	return text[start:end], start, true
}

// literal consumes an exact token such as "->" or ")->". On failure the
// cursor rests on the next significant character.
func (s *scanner) literal(lit string) bool {
	s.skipInsignificant()
	if strings.HasPrefix(s.src.text[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// peekLiteral reports whether the literal is next, without consuming it.
func (s *scanner) peekLiteral(lit string) bool {
	s.skipInsignificant()
	return strings.HasPrefix(s.src.text[s.pos:], lit)
}
