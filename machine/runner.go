package machine

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"
)

// Runner drives an unnamed-dialect instance hop by hop until a terminal
// state is reached or the context is done.
type Runner struct {
	clock.Clock

	// NewBackOff, when set, supplies a backoff policy per run; the runner
	// sleeps for NextBackOff between hops and stops when the policy returns
	// backoff.Stop.
	NewBackOff func() backoff.BackOff
}

func NewRunner() *Runner {
	return &Runner{Clock: clock.New()}
}

// Run hops from the given instance until a terminal state and returns the
// final instance. Machines with cycles never reach a terminal state; bound
// the run with the context or a finite backoff policy.
func (r *Runner) Run(ctx context.Context, from *Instance) (*Instance, error) {
	if from == nil {
		return nil, nil
	}
	clk := r.Clock
	if clk == nil {
		clk = clock.New()
	}
	var bo backoff.BackOff
	if r.NewBackOff != nil {
		bo = r.NewBackOff()
	}
	state := from
	for !state.IsTerminal() {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
			next, err := state.NextState()
			if err != nil {
				return state, err
			}
			if bo != nil {
				d := bo.NextBackOff()
				if d == backoff.Stop {
					return state, fmt.Errorf("backoff stopped the run at state %s", state)
				}
				clk.Sleep(d)
			}
			state = next
		}
	}
	return state, nil
}
