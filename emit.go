package statemachine

import (
	"fmt"
	"strings"

	"github.com/statelang/go-statemachine/machine"
)

// Artifact is the compiled form of one block: the runtime Definition a host
// program can instantiate and drive, plus the Go source rendering that the
// compiler substitutes for the matched block.
//
// Named-dialect renderings reference the machine package for their invalid
// transition failure path; a source file embedding one must import
// github.com/statelang/go-statemachine/machine.
type Artifact struct {
	Definition *machine.Definition
	Source     string
}

// renderer accumulates generated lines. The first line carries no prefix
// (the text before the matched block already holds the indentation), every
// following line is re-indented to the column at which the block began.
type renderer struct {
	b      strings.Builder
	indent string
	lines  int
}

func (r *renderer) line(depth int, format string, args ...any) {
	if r.lines > 0 {
		r.b.WriteString(r.indent)
	}
	r.b.WriteString(strings.Repeat("\t", depth))
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
	r.lines++
}

func (r *renderer) blank() {
	r.b.WriteByte('\n')
	r.lines++
}

// emitUnnamed renders an unnamed-dialect graph as one base construct with
// display and successor operations, one constructor per state, and a
// successor binding inside each constructor of a non-terminal state.
func emitUnnamed(g *stateGraph, indent string) *Artifact {
	r := &renderer{indent: indent}

	r.line(0, "type %s struct {", g.name)
	r.line(1, "name string")
	r.line(1, "next func() *%s", g.name)
	r.line(0, "}")
	r.blank()
	r.line(0, "func (s *%s) String() string { return s.name }", g.name)
	r.blank()
	r.line(0, "func (s *%s) NextState() *%s { return s.next() }", g.name, g.name)
	r.blank()
	for _, state := range g.states {
		if next, ok := g.succ[state]; ok {
			r.line(0, "func New%s() *%s { return &%s{name: %q, next: New%s} }",
				state, g.name, g.name, state, next)
		} else {
			// terminal: no successor binding, NextState is a caller error
			r.line(0, "func New%s() *%s { return &%s{name: %q} }",
				state, g.name, g.name, state)
		}
	}

	return &Artifact{
		Definition: machine.New(g.name, g.states, g.succ),
		Source:     r.b.String(),
	}
}

// emitNamed renders a named-dialect graph as: a transition-value construct
// with one shared singleton per transition name, a base state construct with
// name-dispatched transition lookup and the invalid-transition failure path,
// and one constructor per state carrying that state's transition table with
// a fresh-instance binding per (state, transition) pair.
func emitNamed(g *namedGraph, indent string) *Artifact {
	r := &renderer{indent: indent}

	r.line(0, "type %sTransition struct {", g.name)
	r.line(1, "transitionName string")
	r.line(0, "}")
	r.blank()
	r.line(0, "func (t *%sTransition) String() string { return t.transitionName }", g.name)
	r.blank()
	for _, tn := range g.transitions {
		r.line(0, "var %s = &%sTransition{transitionName: %q}", tn, g.name, tn)
	}
	r.blank()
	r.line(0, "type %s struct {", g.name)
	r.line(1, "name  string")
	r.line(1, "tnmap map[string]func() *%s", g.name)
	r.line(0, "}")
	r.blank()
	r.line(0, "func (s *%s) String() string { return s.name }", g.name)
	r.blank()
	r.line(0, "func (s *%s) Transition(name string) (*%s, error) {", g.name, g.name)
	r.line(1, "next, ok := s.tnmap[name]")
	r.line(1, "if !ok {")
	r.line(2, "return nil, &machine.InvalidTransitionError{Machine: %q, State: s.name, Transition: name}", g.name)
	r.line(1, "}")
	r.line(1, "return next(), nil")
	r.line(0, "}")
	for _, state := range g.states {
		r.blank()
		row := g.table[state]
		if len(row) == 0 {
			r.line(0, "func New%s() *%s { return &%s{name: %q, tnmap: map[string]func() *%s{}} }",
				state, g.name, g.name, state, g.name)
			continue
		}
		r.line(0, "func New%s() *%s {", state, g.name)
		r.line(1, "return &%s{name: %q, tnmap: map[string]func() *%s{", g.name, state, g.name)
		for _, tn := range g.transitions {
			if to, ok := row[tn]; ok {
				r.line(2, "%q: New%s,", tn, to)
			}
		}
		r.line(1, "}}")
		r.line(0, "}")
	}

	return &Artifact{
		Definition: machine.NewNamed(g.name, g.states, g.transitions, g.table),
		Source:     r.b.String(),
	}
}
