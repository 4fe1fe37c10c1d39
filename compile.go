package statemachine

import "strings"

// Compile transforms source text by replacing every statemachine block, of
// either dialect, with the Go rendering of its compiled form; all text
// outside matched blocks passes through unchanged, comments included. Text
// containing no block is returned as-is.
//
// A `statemachine` keyword at a word boundary outside a comment commits to a
// block: if the rest of the block fails to parse, Compile fails with a
// *SyntaxError and emits nothing for that source. Blocks are compiled
// independently; no state crosses from one block to the next.
func Compile(text string) (string, error) {
	out, _, err := compileAll(text)
	return out, err
}

// CompileBlocks compiles every statemachine block in the source and returns
// the artifacts in source order, without performing substitution.
func CompileBlocks(text string) ([]*Artifact, error) {
	_, arts, err := compileAll(text)
	return arts, err
}

func compileAll(text string) (string, []*Artifact, error) {
	src := newSource(text)
	sc := newScanner(src)
	var (
		out    strings.Builder
		arts   []*Artifact
		copied int
	)
	for {
		offset, ok := sc.nextKeyword()
		if !ok {
			break
		}
		sc.pos = offset
		blk, err := parseBlock(sc)
		if err != nil {
			return "", nil, err
		}
		indent := strings.Repeat(" ", src.column(blk.start)-1)
		var art *Artifact
		if blk.Dialect == Named {
			art = emitNamed(buildNamedGraph(blk), indent)
		} else {
			art = emitUnnamed(buildGraph(blk), indent)
		}
		arts = append(arts, art)
		out.WriteString(text[copied:blk.start])
		out.WriteString(art.Source)
		copied = blk.end
		sc.pos = blk.end
	}
	out.WriteString(text[copied:])
	return out.String(), arts, nil
}

// nextKeyword advances to the next occurrence of the statemachine keyword at
// a word boundary, skipping line comments so a commented-out block is left
// alone. It consumes the keyword and returns its starting offset.
func (s *scanner) nextKeyword() (offset int, ok bool) {
	text := s.src.text
	for s.pos < len(text) {
		switch c := text[s.pos]; {
		case c == '#' || (c == '/' && s.pos+1 < len(text) && text[s.pos+1] == '/'):
			if nl := strings.IndexByte(text[s.pos:], '\n'); nl >= 0 {
				s.pos += nl + 1
			} else {
				s.pos = len(text)
			}
		case isIdentStart(c):
			start := s.pos
			end := start + 1
			for end < len(text) && isIdentPart(text[end]) {
				end++
			}
			s.pos = end
			// `1statemachine` and `$statemachine` are single words: the
			// keyword only matches when the preceding character cannot
			// extend an identifier.
			if text[start:end] == Keyword && (start == 0 || !isIdentPart(text[start-1])) {
				return start, true
			}
		default:
			s.pos++
		}
	}
	return 0, false
}
