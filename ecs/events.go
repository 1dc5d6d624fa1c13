package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventJump           = "jump"
	EventBlockHit       = "block_hit"
	EventHeartCollected = "heart_collected"
	EventFlagReached    = "flag_reached"
	EventLevelComplete  = "level_complete"
	EventFireworkBurst  = "firework_burst"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Reset discards pending events.
func (q *EventQueue) Reset() {
	if q == nil {
		return
	}
	q.items = nil
}

// Pending returns a copy of queued events without draining them.
func (q *EventQueue) Pending() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return append([]Event(nil), q.items...)
}
