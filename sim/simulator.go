// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds the message queue, the system
// state, and the event log for one run. It is strictly single-threaded: each
// queue pop, state mutation, and log append completes before the next begins,
// so a run is exactly reproducible from its seeded messages and parameters.
type Simulator struct {
	// Queue holds the scheduled messages not yet processed.
	Queue *MessageQueue
	// State is the single mutable system state for the run.
	State *State
	// Log records every state change the run produces.
	Log *EventLog
	// Metrics accumulates run-wide counters for final reporting.
	Metrics *Metrics
}

// NewSimulator creates a Simulator with an empty queue and log and a fresh
// state at time zero.
func NewSimulator(bufferCapacity, serverCapacity uint64, serverDuration Tick) *Simulator {
	return &Simulator{
		Queue:   NewMessageQueue(),
		State:   NewState(bufferCapacity, serverCapacity, serverDuration),
		Log:     NewEventLog(),
		Metrics: NewMetrics(),
	}
}

// Schedule pushes a message into the simulator's queue.
func (sim *Simulator) Schedule(msg Message) {
	sim.Queue.Push(msg)
}

// SeedArrivals schedules one Arrive message per given time.
func (sim *Simulator) SeedArrivals(times ...Tick) {
	for _, t := range times {
		sim.Schedule(Message{Kind: Arrive, Time: t})
	}
	sim.Metrics.SeededArrivals += len(times)
}

// SeedUniformArrivals schedules n Arrive messages spaced interval ticks
// apart, starting at time zero.
func (sim *Simulator) SeedUniformArrivals(n int, interval Tick) {
	for i := 0; i < n; i++ {
		sim.Schedule(Message{Kind: Arrive, Time: Tick(i) * interval})
	}
	sim.Metrics.SeededArrivals += n
}

// Step processes the earliest scheduled message: it applies the transition
// function, advances the clock to the message's time (even when the
// transition's guard failed), schedules the follow-ups, and records the
// facts. It returns false without touching anything when the queue is empty,
// which is the run's terminal condition.
func (sim *Simulator) Step() bool {
	msg, ok := sim.Queue.Pop()
	if !ok {
		return false
	}

	followUps, facts := Transition(msg, sim.State)
	sim.State.SetTime(msg.Time)
	for _, fu := range followUps {
		sim.Schedule(fu)
	}
	for _, f := range facts {
		sim.Log.Push(f)
	}

	sim.observe(msg, facts)
	logrus.Debugf("[tick %07d] Processed %s: buffer=%d server=%d queued=%d",
		sim.State.Time(), msg, sim.State.BufferCount(), sim.State.ServerCount(), sim.Queue.Len())
	return true
}

// observe updates metrics for one processed message. A guardless transition
// always produces facts, so an empty fact slice means the guard failed.
func (sim *Simulator) observe(msg Message, facts []Fact) {
	sim.Metrics.Steps++
	sim.Metrics.EndTime = sim.State.Time()
	switch msg.Kind {
	case Arrive:
		if len(facts) == 0 {
			sim.Metrics.DiscardedArrivals++
		} else {
			sim.Metrics.AcceptedArrivals++
		}
	case CallToServe:
		if len(facts) > 0 {
			sim.Metrics.ServedItems++
		}
	}
}

// Run calls Step until the queue empties. A nonzero horizon additionally
// stops the run once the clock passes it; termination does not depend on the
// horizon because failed CallToServe messages are not rescheduled and every
// Exit lands strictly after its trigger when the service duration is
// positive.
func (sim *Simulator) Run(horizon Tick) {
	for sim.Step() {
		if horizon > 0 && sim.State.Time() > horizon {
			logrus.Infof("[tick %07d] Horizon %d reached, stopping", sim.State.Time(), horizon)
			break
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.State.Time())
}
