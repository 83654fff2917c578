// Implements the MessageQueue, which holds all scheduled messages that the
// simulator has not yet processed, ordered by simulated time.

package sim

import "container/heap"

// MessageQueue is a priority queue of scheduled messages keyed by time.
// Messages sharing a time are popped in insertion order: every entry carries a
// sequence number from a per-queue monotonic counter, and the heap uses it as
// the secondary key. Without it, heap sift order among equal times would be
// unspecified.
type MessageQueue struct {
	entries messageHeap
	nextSeq uint64
}

// NewMessageQueue creates an empty MessageQueue.
func NewMessageQueue() *MessageQueue {
	q := &MessageQueue{entries: make(messageHeap, 0)}
	heap.Init(&q.entries)
	return q
}

// Push inserts a message into the queue.
func (q *MessageQueue) Push(msg Message) {
	heap.Push(&q.entries, messageEntry{msg: msg, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the earliest message. The second return value is
// false when the queue is empty, which is the simulation's terminal signal.
func (q *MessageQueue) Pop() (Message, bool) {
	if len(q.entries) == 0 {
		return Message{}, false
	}
	e := heap.Pop(&q.entries).(messageEntry)
	return e.msg, true
}

// Peek returns the message Pop would return, without removing it.
func (q *MessageQueue) Peek() (Message, bool) {
	if len(q.entries) == 0 {
		return Message{}, false
	}
	return q.entries[0].msg, true
}

// Len returns the number of messages in the queue.
func (q *MessageQueue) Len() int {
	return len(q.entries)
}

type messageEntry struct {
	msg Message
	seq uint64
}

// messageHeap implements heap.Interface and orders entries by (time, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type messageHeap []messageEntry

func (h messageHeap) Len() int { return len(h) }

func (h messageHeap) Less(i, j int) bool {
	if h[i].msg.Time != h[j].msg.Time {
		return h[i].msg.Time < h[j].msg.Time
	}
	return h[i].seq < h[j].seq
}

func (h messageHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *messageHeap) Push(x any) {
	*h = append(*h, x.(messageEntry))
}

func (h *messageHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
