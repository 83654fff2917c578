// Package sim provides a deterministic discrete-event simulator for a
// single-stage queueing system: one finite buffer feeding a bank of parallel
// servers with a fixed service duration.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - message.go: the scheduled messages that drive the simulation (Arrive, CallToServe, Exit)
//   - transition.go: the state machine mapping a message and state to follow-ups and facts
//   - simulator.go: the event loop that pops messages in time order and advances the clock
//
// Supporting pieces: queue.go holds the time-ordered message queue with its
// FIFO tie-break, state.go the guarded mutable system state, eventlog.go the
// append-only record of state changes, and scenario.go the YAML run
// description used by the CLI.
package sim
