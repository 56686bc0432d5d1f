package core

import "time"

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a Scheduler whose callbacks run when the host calls Pump.
// Callbacks scheduled while a pump is running are deferred to the next pump.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule queues fn for the next Pump.
func (q *FrameQueue) Schedule(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// Cancel removes a queued callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) Cancel(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are waiting for the next Pump.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Pump runs every callback queued before the call, in scheduling order, and
// returns how many ran.
func (q *FrameQueue) Pump(now time.Duration) int {
	batch := q.pending
	q.pending = nil
	for _, f := range batch {
		f.fn(now)
	}
	return len(batch)
}
