package statemachine

import "github.com/statelang/go-statemachine/machine"

// Keyword opens every statemachine block.
const Keyword = "statemachine"

// Dialect selects one of the two supported edge grammars:
// Unnamed transitions `From -> To` give each state at most one successor,
// named transitions `From -(T)-> To` are explicitly invoked by name.
type Dialect = machine.Dialect

const (
	Unnamed = machine.Unnamed
	Named   = machine.Named
)

// Edge is one transition declaration inside a block.
// Transition is empty in the unnamed dialect.
type Edge struct {
	From       string
	Transition string
	To         string
}

// Block is one parsed `statemachine <name>: ...` unit.
type Block struct {
	Name    string
	Dialect Dialect
	Edges   []Edge

	start, end int // byte span of the matched block in the source
}

// parseBlock parses one block. The scanner must be positioned at the
// `statemachine` keyword; from there the grammar is committed and every
// failure is a *SyntaxError. Both edge shapes are recognized, the named
// shape first via its distinguishing `-(` marker; the first edge fixes the
// block's dialect and a later edge of the other shape is rejected.
func parseBlock(s *scanner) (*Block, error) {
	kw, kwOff, ok := s.ident()
	if !ok || kw != Keyword {
		return nil, syntaxErrorf(s.src, kwOff, "expected %q keyword", Keyword)
	}
	b := &Block{start: kwOff}

	name, nameOff, ok := s.ident()
	if !ok {
		return nil, syntaxErrorf(s.src, nameOff, "expected state machine name after %q", Keyword)
	}
	if !ValidIdent(name) {
		return nil, reservedWordError(s.src, nameOff, name)
	}
	b.Name = name

	if !s.literal(":") {
		return nil, syntaxErrorf(s.src, s.pos, "expected \":\" after state machine name %q", name)
	}

	for {
		mark := s.pos
		from, fromOff, ok := s.ident()
		if !ok {
			break
		}

		var (
			edge  Edge
			shape Dialect
		)
		switch {
		case s.peekLiteral("-("):
			shape = Named
			s.literal("-(")
			tn, tnOff, ok := s.ident()
			if !ok {
				return nil, syntaxErrorf(s.src, s.pos, "expected transition identifier after \"-(\"")
			}
			if !ValidIdent(tn) {
				return nil, reservedWordError(s.src, tnOff, tn)
			}
			if !s.literal(")->") {
				return nil, syntaxErrorf(s.src, s.pos, "expected \")->\" after transition identifier %q", tn)
			}
			edge.Transition = tn
		case s.peekLiteral("->"):
			shape = Unnamed
			s.literal("->")
		default:
			// An identifier without an arrow is not an edge: it belongs to
			// whatever follows the block.
			if len(b.Edges) == 0 {
				return nil, syntaxErrorf(s.src, s.pos, "expected \"->\" or \"-(\" after state %q", from)
			}
			s.pos = mark
			b.end = mark
			return b, nil
		}

		if !ValidIdent(from) {
			return nil, reservedWordError(s.src, fromOff, from)
		}
		if len(b.Edges) == 0 {
			b.Dialect = shape
		} else if shape != b.Dialect {
			return nil, syntaxErrorf(s.src, fromOff,
				"cannot mix %s and %s transitions in one block", b.Dialect, shape)
		}
		edge.From = from

		to, toOff, ok := s.ident()
		if !ok {
			return nil, syntaxErrorf(s.src, toOff, "expected target state identifier")
		}
		if !ValidIdent(to) {
			return nil, reservedWordError(s.src, toOff, to)
		}
		edge.To = to
		b.Edges = append(b.Edges, edge)
		b.end = s.pos
	}

	if len(b.Edges) == 0 {
		return nil, syntaxErrorf(s.src, s.pos, "expected at least one transition in state machine %q", b.Name)
	}
	s.pos = b.end
	return b, nil
}

func reservedWordError(src *source, offset int, tok string) *SyntaxError {
	return syntaxErrorf(src, offset,
		"cannot use reserved word %q as a state machine, state, or transition identifier", tok)
}
