package sim

import "fmt"

// MessageKind identifies what a scheduled message instructs the simulator to do.
type MessageKind int

const (
	// Arrive signals that an item presents itself at the buffer.
	Arrive MessageKind = iota
	// CallToServe attempts to move one buffered item into service.
	CallToServe
	// Exit signals that an in-service item has finished and vacates a server.
	Exit
)

func (k MessageKind) String() string {
	switch k {
	case Arrive:
		return "Arrive"
	case CallToServe:
		return "CallToServe"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
}

// Message is an imperative directive scheduled for a point in simulated time.
// Messages are immutable values: the transition function creates them and the
// simulator consumes each exactly once.
type Message struct {
	Kind MessageKind
	Time Tick
}

func (m Message) String() string {
	return fmt.Sprintf("%s@%d", m.Kind, m.Time)
}
