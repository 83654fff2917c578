package sim

import "fmt"

// Transition consumes one scheduled message against the current state and
// returns the follow-up messages to schedule and the facts to record. The
// state's counts are mutated in place; the caller advances the state's clock.
//
// Guard failures are silent no-ops: a blocked Arrive discards the item
// (blocking with loss) and a blocked CallToServe is simply dropped. A failed
// CallToServe is never rescheduled by itself. Liveness instead relies on every
// buffered Arrive and every Exit scheduling a fresh CallToServe, so a dropped
// attempt is retried on the next state-changing message. Any new transition
// that can make CanServe become true must keep scheduling CallToServe the
// same way, or served items can stall. Capacities are fixed for the life of a
// run, so no such transition exists today.
//
// Given identical message and state, the outputs are always identical.
func Transition(msg Message, state *State) (followUps []Message, facts []Fact) {
	switch msg.Kind {
	case Arrive:
		if !state.CanBuffer() {
			return nil, nil
		}
		state.IncBuffer()
		return []Message{{Kind: CallToServe, Time: msg.Time}},
			[]Fact{{Kind: BufferIncremented, Time: msg.Time}}

	case CallToServe:
		if !state.CanServe() {
			return nil, nil
		}
		state.DecBuffer()
		state.IncServer()
		return []Message{{Kind: Exit, Time: msg.Time + state.ServerDuration()}},
			[]Fact{
				{Kind: BufferDecremented, Time: msg.Time},
				{Kind: ServerIncremented, Time: msg.Time},
			}

	case Exit:
		state.DecServer()
		return []Message{{Kind: CallToServe, Time: msg.Time}},
			[]Fact{{Kind: ServerDecremented, Time: msg.Time}}

	default:
		panic(fmt.Sprintf("Transition: unknown message kind %d", int(msg.Kind)))
	}
}
