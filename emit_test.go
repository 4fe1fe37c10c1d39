package statemachine_test

import (
	"strings"
	"testing"

	statemachine "github.com/statelang/go-statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitUnnamedSource(t *testing.T) {
	out, err := statemachine.Compile(lightSource)
	require.NoError(t, err)

	assert.Contains(t, out, "type Light struct {")
	assert.Contains(t, out, "func (s *Light) String() string { return s.name }")
	assert.Contains(t, out, "func (s *Light) NextState() *Light { return s.next() }")
	assert.Contains(t, out, `func NewRed() *Light { return &Light{name: "Red", next: NewGreen} }`)
	assert.Contains(t, out, `func NewGreen() *Light { return &Light{name: "Green", next: NewYellow} }`)
	assert.Contains(t, out, `func NewYellow() *Light { return &Light{name: "Yellow", next: NewRed} }`)
}

func TestEmitUnnamedTerminalState(t *testing.T) {
	out, err := statemachine.Compile("statemachine Job: Pending -> Running\nRunning -> Done")
	require.NoError(t, err)

	// terminal states carry no successor binding
	assert.Contains(t, out, `func NewDone() *Job { return &Job{name: "Done"} }`)
	assert.NotContains(t, out, `name: "Done", next`)
}

func TestEmitNamedSource(t *testing.T) {
	out, err := statemachine.Compile(doorSource)
	require.NoError(t, err)

	assert.Contains(t, out, "type DoorTransition struct {")
	assert.Contains(t, out, `var open = &DoorTransition{transitionName: "open"}`)
	assert.Contains(t, out, `var close = &DoorTransition{transitionName: "close"}`)
	assert.Contains(t, out, "tnmap map[string]func() *Door")
	assert.Contains(t, out, "func (s *Door) Transition(name string) (*Door, error) {")
	assert.Contains(t, out, `&machine.InvalidTransitionError{Machine: "Door", State: s.name, Transition: name}`)
	assert.Contains(t, out, `"open": NewOpen,`)
	assert.Contains(t, out, `"close": NewClosed,`)
}

func TestEmitNamedTerminalTable(t *testing.T) {
	out, err := statemachine.Compile("statemachine Flow: Start -(run)-> End")
	require.NoError(t, err)

	// End is terminal: its table is present and empty
	assert.Contains(t, out, `func NewEnd() *Flow { return &Flow{name: "End", tnmap: map[string]func() *Flow{}} }`)
}

func TestEmitKeepsBlockOrder(t *testing.T) {
	out, err := statemachine.Compile(lightSource + "\n" + doorSource)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "type Light struct"), strings.Index(out, "type Door struct"))
}
