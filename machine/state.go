package machine

import (
	"fmt"

	"github.com/google/uuid"
)

// Instance is one live occurrence of a machine state. Instances are values
// handed to the host program: hopping to another state always constructs a
// fresh Instance and never mutates the current one.
type Instance struct {
	id    uuid.UUID
	def   *Definition
	state string
}

func newInstance(d *Definition, state string) *Instance {
	return &Instance{id: uuid.New(), def: d, state: state}
}

// String returns the state name, the instance's display form.
func (i *Instance) String() string { return i.state }

// ID distinguishes this instance from every other instance of the same state.
func (i *Instance) ID() uuid.UUID { return i.id }

// State returns the state name.
func (i *Instance) State() string { return i.state }

// Machine returns the Definition this instance belongs to.
func (i *Instance) Machine() *Definition { return i.def }

// IsTerminal reports whether the instance's state has no outgoing transition.
func (i *Instance) IsTerminal() bool { return i.def.Terminal(i.state) }

// NextState hops along the unnamed-dialect successor edge, constructing a
// fresh instance of the successor state. A terminal state has no successor
// binding; invoking NextState on one returns an error wrapping ErrNoSuccessor.
func (i *Instance) NextState() (*Instance, error) {
	next, ok := i.def.Successor(i.state)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", i.def.name, i.state, ErrNoSuccessor)
	}
	return newInstance(i.def, next), nil
}

// Transition invokes the named transition on the current state and constructs
// a fresh instance of the bound successor. A name not present in the state's
// transition table fails with *InvalidTransitionError carrying both the state
// display name and the attempted transition name.
func (i *Instance) Transition(name string) (*Instance, error) {
	next, ok := i.def.Target(i.state, name)
	if !ok {
		return nil, &InvalidTransitionError{
			Machine:    i.def.name,
			State:      i.state,
			Transition: name,
		}
	}
	return newInstance(i.def, next), nil
}
