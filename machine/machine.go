package machine

import "fmt"

// Dialect selects which transition grammar a Definition was compiled from.
type Dialect int

const (
	// Unnamed machines give each state at most one successor.
	Unnamed Dialect = iota
	// Named machines dispatch transitions by name through a per-state table.
	Named
)

func (d Dialect) String() string {
	if d == Named {
		return "named"
	}
	return "unnamed"
}

// Definition is one compiled state machine: the state set plus, depending on
// dialect, a successor mapping or a (state, transition name) dispatch table.
// A Definition is immutable after construction and safe for concurrent use;
// live state is carried by Instances only.
type Definition struct {
	name        string
	dialect     Dialect
	states      []string
	succ        map[string]string
	transitions []*Transition
	byName      map[string]*Transition
	table       map[string]map[string]string
}

// New builds an unnamed-dialect Definition from the state set and the
// state -> successor mapping. States absent from succ are terminal.
// Inputs are copied; the caller keeps ownership of its maps and slices.
func New(name string, states []string, succ map[string]string) *Definition {
	d := &Definition{
		name:   name,
		states: append([]string(nil), states...),
		succ:   make(map[string]string, len(succ)),
	}
	for from, to := range succ {
		d.succ[from] = to
	}
	return d
}

// NewNamed builds a named-dialect Definition. Every state must have a row in
// table; terminal states have an empty row. One shared Transition value is
// created per entry of transitions, in order.
func NewNamed(name string, states, transitions []string, table map[string]map[string]string) *Definition {
	d := &Definition{
		name:    name,
		dialect: Named,
		states:  append([]string(nil), states...),
		byName:  make(map[string]*Transition, len(transitions)),
		table:   make(map[string]map[string]string, len(table)),
	}
	for _, tn := range transitions {
		t := &Transition{name: tn}
		d.transitions = append(d.transitions, t)
		d.byName[tn] = t
	}
	for state, row := range table {
		copied := make(map[string]string, len(row))
		for tn, to := range row {
			copied[tn] = to
		}
		d.table[state] = copied
	}
	for _, state := range d.states {
		if d.table[state] == nil {
			d.table[state] = map[string]string{}
		}
	}
	return d
}

func (d *Definition) Name() string     { return d.name }
func (d *Definition) Dialect() Dialect { return d.dialect }

// States returns the state names in declaration order.
func (d *Definition) States() []string {
	return append([]string(nil), d.states...)
}

// HasState reports whether state belongs to the machine.
func (d *Definition) HasState(state string) bool {
	for _, s := range d.states {
		if s == state {
			return true
		}
	}
	return false
}

// Terminal reports whether state has no outgoing transition.
func (d *Definition) Terminal(state string) bool {
	if d.dialect == Named {
		return len(d.table[state]) == 0
	}
	_, ok := d.succ[state]
	return !ok
}

// Successor returns the unnamed-dialect successor of state.
// ok is false for terminal states and for named-dialect machines.
func (d *Definition) Successor(state string) (next string, ok bool) {
	next, ok = d.succ[state]
	return next, ok
}

// Transitions returns the shared transition values in declaration order.
// It is empty for unnamed-dialect machines.
func (d *Definition) Transitions() []*Transition {
	return append([]*Transition(nil), d.transitions...)
}

// Transition returns the shared transition value for name.
func (d *Definition) Transition(name string) (*Transition, bool) {
	t, ok := d.byName[name]
	return t, ok
}

// TransitionsOf returns the transition names available in state, in the
// machine's transition declaration order. Terminal states yield nothing.
func (d *Definition) TransitionsOf(state string) []string {
	row := d.table[state]
	if len(row) == 0 {
		return nil
	}
	names := make([]string, 0, len(row))
	for _, t := range d.transitions {
		if _, ok := row[t.name]; ok {
			names = append(names, t.name)
		}
	}
	return names
}

// Target returns the successor of invoking transition tn in state.
func (d *Definition) Target(state, tn string) (next string, ok bool) {
	next, ok = d.table[state][tn]
	return next, ok
}

// New instantiates the machine at the given state. Every call yields a fresh
// Instance: two instances of the same state are display-equal but never
// identical.
func (d *Definition) New(state string) (*Instance, error) {
	if !d.HasState(state) {
		return nil, fmt.Errorf("machine %s has no state %q", d.name, state)
	}
	return newInstance(d, state), nil
}
