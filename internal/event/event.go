// internal/event/event.go
package event

// Type identifies a kind of game event.
type Type string

// Event is a signal raised during one tick and consumed at the start of
// the next one.
type Event struct {
	Type Type
	Data interface{}
}

// Queue is an explicit pending-event buffer. Producers post into it
// during the update phase; the owning scene drains it exactly once at
// the start of the following tick, which preserves the one-tick latency
// of the signals without any hidden global queue.
type Queue struct {
	pending []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends an event to the pending buffer.
func (q *Queue) Post(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns all pending events in posting order and empties the
// buffer. Events posted while handling drained events land in the next
// batch.
func (q *Queue) Drain() []Event {
	events := q.pending
	q.pending = nil
	return events
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.pending)
}
