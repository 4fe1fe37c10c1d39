package statemachine

// stateGraph is the semantic form of an unnamed-dialect block: the set of all
// states (first-appearance order) and each state's single successor. States
// with no outgoing edge are absent from succ (terminal).
type stateGraph struct {
	name   string
	states []string
	succ   map[string]string
}

// namedGraph is the semantic form of a named-dialect block. Every state is
// present in table; terminal states map to an empty transition table.
type namedGraph struct {
	name        string
	states      []string
	transitions []string
	table       map[string]map[string]string
}

// buildGraph folds unnamed edges into a stateGraph. When several edges share
// a from state the last one processed wins, so the result is coupled to
// declaration order. Duplicates are not rejected.
func buildGraph(b *Block) *stateGraph {
	g := &stateGraph{name: b.Name, succ: make(map[string]string)}
	seen := make(map[string]bool)
	add := func(state string) {
		if !seen[state] {
			seen[state] = true
			g.states = append(g.states, state)
		}
	}
	for _, e := range b.Edges {
		add(e.From)
		add(e.To)
		g.succ[e.From] = e.To
	}
	return g
}

// buildNamedGraph folds named edges into a namedGraph. Duplicate
// (from, transition) pairs follow the same last-write-wins policy as
// buildGraph. Transition names are shared across states: the same name on
// two different from states is one transition identity.
func buildNamedGraph(b *Block) *namedGraph {
	g := &namedGraph{name: b.Name, table: make(map[string]map[string]string)}
	seenState := make(map[string]bool)
	seenTransition := make(map[string]bool)
	addState := func(state string) {
		if !seenState[state] {
			seenState[state] = true
			g.states = append(g.states, state)
		}
	}
	for _, e := range b.Edges {
		addState(e.From)
		addState(e.To)
		if !seenTransition[e.Transition] {
			seenTransition[e.Transition] = true
			g.transitions = append(g.transitions, e.Transition)
		}
		row := g.table[e.From]
		if row == nil {
			row = make(map[string]string)
			g.table[e.From] = row
		}
		row[e.Transition] = e.To
	}
	for _, state := range g.states {
		if g.table[state] == nil {
			g.table[state] = make(map[string]string)
		}
	}
	return g
}
