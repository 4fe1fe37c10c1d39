package statemachine

import "fmt"

// SyntaxError reports that a statemachine block failed to parse.
//
// The grammar commits to a block as soon as it sees the `statemachine`
// keyword at a word boundary; any failure after that point is surfaced as a
// SyntaxError and never recovered. Offset is a byte offset into the source,
// Line and Col are 1-based with Col counted in runes.
type SyntaxError struct {
	Msg    string
	Offset int
	Line   int
	Col    int
}

// SyntaxError will be printed as:
//
//	line 3 col 14: cannot use reserved word "func" as state identifier
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d col %d: %s", e.Line, e.Col, e.Msg)
}

func syntaxErrorf(s *source, offset int, format string, args ...any) *SyntaxError {
	line, col := s.lineCol(offset)
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}
