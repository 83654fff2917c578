package sim

import "fmt"

// State is the mutable system state: current buffer and server occupancy plus
// the capacities and service duration fixed at construction. Counts change
// only through the mutators below, which the transition function calls after
// checking the matching guard. The mutators panic on a capacity or underflow
// violation because reaching one means the engine itself is broken, not that
// the caller passed bad input.
type State struct {
	time           Tick
	bufferCount    uint64
	bufferCapacity uint64
	serverCount    uint64
	serverCapacity uint64
	serverDuration Tick
}

// NewState creates a State at time zero with empty buffer and servers.
func NewState(bufferCapacity, serverCapacity uint64, serverDuration Tick) *State {
	return &State{
		bufferCapacity: bufferCapacity,
		serverCapacity: serverCapacity,
		serverDuration: serverDuration,
	}
}

// Time returns the current simulated time.
func (s *State) Time() Tick { return s.time }

// BufferCount returns the number of items waiting in the buffer.
func (s *State) BufferCount() uint64 { return s.bufferCount }

// BufferCapacity returns the fixed buffer capacity.
func (s *State) BufferCapacity() uint64 { return s.bufferCapacity }

// ServerCount returns the number of items currently in service.
func (s *State) ServerCount() uint64 { return s.serverCount }

// ServerCapacity returns the fixed number of parallel servers.
func (s *State) ServerCapacity() uint64 { return s.serverCapacity }

// ServerDuration returns the fixed service duration.
func (s *State) ServerDuration() Tick { return s.serverDuration }

// CanBuffer reports whether the buffer has room for one more item.
func (s *State) CanBuffer() bool {
	return s.bufferCount < s.bufferCapacity
}

// CanServe reports whether a buffered item can move into service.
//
// The buffer must be occupied and the servers must be under capacity.
func (s *State) CanServe() bool {
	return s.bufferCount > 0 && s.serverCount < s.serverCapacity
}

// IncBuffer increments the buffer count.
func (s *State) IncBuffer() {
	if s.bufferCount >= s.bufferCapacity {
		panic(fmt.Sprintf("IncBuffer: buffer already at capacity %d", s.bufferCapacity))
	}
	s.bufferCount++
}

// DecBuffer decrements the buffer count.
func (s *State) DecBuffer() {
	if s.bufferCount == 0 {
		panic("DecBuffer: buffer already empty")
	}
	s.bufferCount--
}

// IncServer increments the server count.
func (s *State) IncServer() {
	if s.serverCount >= s.serverCapacity {
		panic(fmt.Sprintf("IncServer: servers already at capacity %d", s.serverCapacity))
	}
	s.serverCount++
}

// DecServer decrements the server count.
func (s *State) DecServer() {
	if s.serverCount == 0 {
		panic("DecServer: no item in service")
	}
	s.serverCount--
}

// SetTime advances the simulated time. Time never moves backward: messages
// pop in nondecreasing time order, so a backward step is an engine defect.
func (s *State) SetTime(t Tick) {
	if t < s.time {
		panic(fmt.Sprintf("SetTime: time moving backward from %d to %d", s.time, t))
	}
	s.time = t
}
