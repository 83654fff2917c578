package sim

import (
	"testing"
)

func TestMessageQueue_Pop_ReturnsEarliestFirst(t *testing.T) {
	// GIVEN a queue with messages pushed out of time order
	q := NewMessageQueue()
	q.Push(Message{Kind: Arrive, Time: 30})
	q.Push(Message{Kind: Arrive, Time: 10})
	q.Push(Message{Kind: Arrive, Time: 20})

	// WHEN the queue is drained
	var times []Tick
	for {
		msg, ok := q.Pop()
		if !ok {
			break
		}
		times = append(times, msg.Time)
	}

	// THEN messages come out in nondecreasing time order
	want := []Tick{10, 20, 30}
	if len(times) != len(want) {
		t.Fatalf("drained %d messages, want %d", len(times), len(want))
	}
	for i, tick := range times {
		if tick != want[i] {
			t.Errorf("pop[%d]: got time %d, want %d", i, tick, want[i])
		}
	}
}

func TestMessageQueue_Pop_EqualTimes_FIFO(t *testing.T) {
	// GIVEN a queue with three kinds all scheduled at the same time,
	// interleaved with a later message
	q := NewMessageQueue()
	q.Push(Message{Kind: Exit, Time: 5})
	q.Push(Message{Kind: Arrive, Time: 5})
	q.Push(Message{Kind: CallToServe, Time: 9})
	q.Push(Message{Kind: CallToServe, Time: 5})

	// WHEN the queue is drained
	var kinds []MessageKind
	for {
		msg, ok := q.Pop()
		if !ok {
			break
		}
		kinds = append(kinds, msg.Kind)
	}

	// THEN the time-5 messages keep their insertion order and the time-9
	// message comes last
	want := []MessageKind{Exit, Arrive, CallToServe, CallToServe}
	for i, k := range kinds {
		if k != want[i] {
			t.Errorf("pop[%d]: got kind %s, want %s", i, k, want[i])
		}
	}
}

func TestMessageQueue_Pop_EqualTimes_FIFO_ManyTies(t *testing.T) {
	// GIVEN 100 messages at the same time, distinguishable only by a kind
	// cycle, plus earlier and later messages pushed in between
	q := NewMessageQueue()
	kindCycle := []MessageKind{Arrive, CallToServe, Exit}
	for i := 0; i < 100; i++ {
		q.Push(Message{Kind: kindCycle[i%3], Time: 50})
	}

	// WHEN the queue is drained
	// THEN the tie group preserves insertion order exactly
	for i := 0; i < 100; i++ {
		msg, ok := q.Pop()
		if !ok {
			t.Fatalf("queue empty after %d pops, want 100", i)
		}
		if msg.Kind != kindCycle[i%3] {
			t.Fatalf("pop[%d]: got kind %s, want %s", i, msg.Kind, kindCycle[i%3])
		}
	}
}

func TestMessageQueue_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with two messages
	q := NewMessageQueue()
	q.Push(Message{Kind: Arrive, Time: 2})
	q.Push(Message{Kind: Arrive, Time: 1})

	// WHEN Peek is called
	got, ok := q.Peek()

	// THEN it returns the earliest message and the queue is unchanged
	if !ok {
		t.Fatal("Peek on non-empty queue: got ok=false")
	}
	if got.Time != 1 {
		t.Errorf("Peek: got time %d, want 1", got.Time)
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
	popped, _ := q.Pop()
	if popped != got {
		t.Errorf("Pop after Peek: got %v, want %v", popped, got)
	}
}

func TestMessageQueue_Empty_PopAndPeekReportEmpty(t *testing.T) {
	// GIVEN an empty queue
	q := NewMessageQueue()

	// WHEN Pop and Peek are called
	_, popOK := q.Pop()
	_, peekOK := q.Peek()

	// THEN both report empty
	if popOK {
		t.Error("Pop on empty queue: got ok=true, want false")
	}
	if peekOK {
		t.Error("Peek on empty queue: got ok=true, want false")
	}
}

func TestMessageQueue_RoundTrip_ReturnsToEmpty(t *testing.T) {
	// GIVEN n messages pushed with clashing and descending times
	q := NewMessageQueue()
	n := 64
	for i := 0; i < n; i++ {
		q.Push(Message{Kind: Arrive, Time: Tick(n - i/2)})
	}
	if q.Len() != n {
		t.Fatalf("Len after %d pushes: got %d", n, q.Len())
	}

	// WHEN popping n times
	prev := Tick(0)
	for i := 0; i < n; i++ {
		msg, ok := q.Pop()
		if !ok {
			t.Fatalf("queue empty after %d pops, want %d", i, n)
		}
		if msg.Time < prev {
			t.Fatalf("pop[%d]: time %d before previous %d", i, msg.Time, prev)
		}
		prev = msg.Time
	}

	// THEN the queue is back to its size-0 state
	if q.Len() != 0 {
		t.Errorf("Len after draining: got %d, want 0", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop after draining: got ok=true, want false")
	}
}
