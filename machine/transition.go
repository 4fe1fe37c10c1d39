package machine

import (
	"errors"
	"fmt"
)

// Transition is a named-dialect transition value. One shared instance exists
// per transition name within a Definition, even when several states bind the
// same name; it displays as the name itself.
type Transition struct {
	name string
}

// String returns the transition name.
func (t *Transition) String() string { return t.name }

// Name returns the transition name.
func (t *Transition) Name() string { return t.name }

// ErrNoSuccessor is returned by Instance.NextState on a state with no
// successor binding.
var ErrNoSuccessor = errors.New("state has no successor")

// InvalidTransitionError reports an attempt to invoke a transition name that
// the current state's transition table does not bind. It is a condition of
// driving a compiled machine, never of compiling one.
type InvalidTransitionError struct {
	Machine    string
	State      string
	Transition string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s.%s does not support transition %q", e.Machine, e.State, e.Transition)
}
