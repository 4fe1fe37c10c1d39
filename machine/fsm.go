package machine

import (
	"fmt"

	"github.com/looplab/fsm"
)

// Events exports a named-dialect Definition as looplab/fsm event
// descriptors, one per (transition name, destination) pair with all source
// states grouped, in declaration order. Unnamed-dialect machines export
// nothing.
func (d *Definition) Events() fsm.Events {
	var evs fsm.Events
	for _, t := range d.transitions {
		var dsts []string
		srcs := make(map[string][]string)
		for _, state := range d.states {
			dst, ok := d.table[state][t.name]
			if !ok {
				continue
			}
			if _, seen := srcs[dst]; !seen {
				dsts = append(dsts, dst)
			}
			srcs[dst] = append(srcs[dst], state)
		}
		for _, dst := range dsts {
			evs = append(evs, fsm.EventDesc{Name: t.name, Src: srcs[dst], Dst: dst})
		}
	}
	return evs
}

// NewFSM seeds a looplab/fsm machine from a named-dialect Definition, for
// hosts that already drive looplab machines. The FSM shares nothing with the
// Definition and tracks its own current state.
func (d *Definition) NewFSM(initial string) (*fsm.FSM, error) {
	if d.dialect != Named {
		return nil, fmt.Errorf("machine %s is not a named-dialect machine", d.name)
	}
	if !d.HasState(initial) {
		return nil, fmt.Errorf("machine %s has no state %q", d.name, initial)
	}
	return fsm.NewFSM(initial, d.Events(), nil), nil
}
