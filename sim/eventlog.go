// The event log collects pure data records of state changes. Nothing in the
// engine reads it back; it exists for post-hoc inspection of the trajectory.

package sim

import "fmt"

// FactKind identifies which state change a recorded fact describes.
type FactKind int

const (
	// BufferIncremented records an item entering the buffer.
	BufferIncremented FactKind = iota
	// BufferDecremented records an item leaving the buffer for service.
	BufferDecremented
	// ServerIncremented records an item starting service.
	ServerIncremented
	// ServerDecremented records an item finishing service.
	ServerDecremented
)

func (k FactKind) String() string {
	switch k {
	case BufferIncremented:
		return "BufferIncremented"
	case BufferDecremented:
		return "BufferDecremented"
	case ServerIncremented:
		return "ServerIncremented"
	case ServerDecremented:
		return "ServerDecremented"
	default:
		return fmt.Sprintf("FactKind(%d)", int(k))
	}
}

// Fact is a declarative record of a state change that occurred at a given
// time. Where a Message states what should happen, a Fact states what did.
type Fact struct {
	Kind FactKind
	Time Tick
}

func (f Fact) String() string {
	return fmt.Sprintf("(%d, %s)", f.Time, f.Kind)
}

// EventLog is an append-only ordered record of facts; insertion order is
// creation order. There is no removal operation.
type EventLog struct {
	facts []Fact
}

// NewEventLog creates an EventLog ready for recording.
func NewEventLog() *EventLog {
	return &EventLog{facts: make([]Fact, 0)}
}

// Push appends a fact to the tail of the log.
func (l *EventLog) Push(f Fact) {
	l.facts = append(l.facts, f)
}

// Len returns the number of recorded facts.
func (l *EventLog) Len() int {
	return len(l.facts)
}

// Facts returns the log contents for iteration.
// The returned slice is the log's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it.
func (l *EventLog) Facts() []Fact {
	return l.facts
}
