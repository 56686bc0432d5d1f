package core

import "time"

// Size describes the dimensions of a buffer or viewport.
type Size struct {
	W int
	H int
}

// FrameFunc is invoked by a Scheduler with the host's monotonic time.
type FrameFunc func(now time.Duration)

// FrameID identifies a scheduled callback. The zero value is never issued.
type FrameID uint64

// Scheduler is the host's "run again when convenient" primitive, roughly once
// per display refresh.
type Scheduler interface {
	Schedule(fn FrameFunc) FrameID
	Cancel(id FrameID)
}
