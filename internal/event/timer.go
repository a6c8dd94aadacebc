// internal/event/timer.go
package event

import "time"

// Timer is a recurring single-purpose timer. When its interval elapses
// it posts one event of the configured type into the queue and re-arms
// itself through the rearm callback, which returns the next interval in
// milliseconds. A fresh interval per firing is what produces jittered
// enemy spawn spacing.
type Timer struct {
	queue     *Queue
	eventType Type
	rearm     func() int
	deadline  time.Time
	armed     bool
}

// NewTimer creates a disarmed timer posting events of the given type.
func NewTimer(queue *Queue, eventType Type, rearm func() int) *Timer {
	return &Timer{
		queue:     queue,
		eventType: eventType,
		rearm:     rearm,
	}
}

// Arm starts (or restarts) the timer from now.
func (t *Timer) Arm(now time.Time) {
	t.deadline = now.Add(time.Duration(t.rearm()) * time.Millisecond)
	t.armed = true
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	t.armed = false
}

// Tick posts the timer's event if the deadline has passed and re-arms
// for the next interval. Called once per game tick.
func (t *Timer) Tick(now time.Time) {
	if !t.armed || now.Before(t.deadline) {
		return
	}
	t.queue.Post(Event{Type: t.eventType})
	t.deadline = now.Add(time.Duration(t.rearm()) * time.Millisecond)
}
