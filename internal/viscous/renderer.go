// Package viscous drives the animated ferrofluid background: it owns the
// render state, throttles host ticks and hands finished frames to a surface.
package viscous

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"viscous-bg/internal/core"
	"viscous-bg/internal/noise"
	"viscous-bg/internal/render"
)

var (
	// ErrRunning is returned by Start on a renderer that is already running.
	ErrRunning = errors.New("viscous: renderer already running")
	// ErrNoScheduler is returned by New without a scheduler.
	ErrNoScheduler = errors.New("viscous: scheduler required")
	// ErrNoSurface is returned by New without a surface.
	ErrNoSurface = errors.New("viscous: surface required")
)

// Deps are the host capabilities a Renderer runs on. Scheduler and Surface are
// required; the rest are optional.
type Deps struct {
	Scheduler core.Scheduler
	Surface   render.Surface
	Resizes   *core.ResizeNotifier

	// RNG shuffles the simplex lattice when Field is nil.
	RNG   core.RNG
	Field noise.Field

	Logger *log.Logger
}

// Stats summarises the work done by a Renderer.
type Stats struct {
	Running bool
	Frames  int
	Skipped int
	Size    core.Size
	T       float64
}

// renderState lives from Start to Stop.
type renderState struct {
	throttle *core.Throttle
	t        float64
	pending  core.FrameID
	buf      *core.PixelBuffer
	unlisten func()
	frame    core.FrameFunc
}

// Renderer produces frames of the viscous surface on every due host tick.
// All methods must be called from the goroutine that pumps the scheduler.
type Renderer struct {
	id  uuid.UUID
	cfg Config

	sched   core.Scheduler
	surface render.Surface
	resizes *core.ResizeNotifier
	field   noise.Field
	log     *log.Logger

	viewport *render.Viewport
	st       *renderState
	frames   int
	skipped  int
}

// New builds a Renderer. The noise lattice is created here, once, and stays
// fixed for the lifetime of the renderer.
func New(cfg Config, deps Deps) (*Renderer, error) {
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if deps.Surface == nil {
		return nil, ErrNoSurface
	}
	field := deps.Field
	if field == nil {
		f, err := noise.NewField(cfg.Noise, cfg.Seed, deps.RNG)
		if err != nil {
			return nil, fmt.Errorf("viscous: build field: %w", err)
		}
		field = f
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{
		id:       uuid.New(),
		cfg:      cfg,
		sched:    deps.Scheduler,
		surface:  deps.Surface,
		resizes:  deps.Resizes,
		field:    field,
		log:      logger,
		viewport: render.NewViewportMin(cfg.Scale, cfg.MinW, cfg.MinH),
	}, nil
}

// ID identifies this renderer in log output.
func (r *Renderer) ID() uuid.UUID { return r.id }

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config { return r.cfg }

// Running reports whether Start has been called without a matching Stop.
func (r *Renderer) Running() bool { return r.st != nil }

// Start allocates the buffer for a host viewport of vw×vh pixels, subscribes
// to resize events and schedules the first tick.
func (r *Renderer) Start(vw, vh int) error {
	if r.st != nil {
		return ErrRunning
	}
	size, _ := r.viewport.Update(vw, vh)
	st := &renderState{throttle: core.NewThrottle(r.cfg.FPS)}
	st.frame = func(now time.Duration) { r.tick(st, now) }
	st.buf = r.surface.Alloc(size)
	if r.resizes != nil {
		st.unlisten = r.resizes.Listen(r.Resize)
	}
	r.st = st
	st.pending = r.sched.Schedule(st.frame)
	r.log.Printf("viscous %s: start %dx%d buffer for %dx%d viewport", r.id, size.W, size.H, vw, vh)
	return nil
}

// Resize recomputes the buffer size for a new host viewport and reallocates
// the buffer when it changed. The next due frame regenerates its content.
func (r *Renderer) Resize(vw, vh int) {
	size, changed := r.viewport.Update(vw, vh)
	if !changed || r.st == nil {
		return
	}
	r.st.buf = r.surface.Alloc(size)
	r.log.Printf("viscous %s: resize to %dx%d buffer", r.id, size.W, size.H)
}

// Stop cancels the pending tick, drops the resize listener and releases the
// buffer. It is safe to call more than once.
func (r *Renderer) Stop() {
	st := r.st
	if st == nil {
		return
	}
	r.st = nil
	r.sched.Cancel(st.pending)
	if st.unlisten != nil {
		st.unlisten()
	}
	st.buf = nil
	r.log.Printf("viscous %s: stop after %d frames", r.id, r.frames)
}

// Stats returns counters and the latest frame parameters.
func (r *Renderer) Stats() Stats {
	s := Stats{
		Running: r.st != nil,
		Frames:  r.frames,
		Skipped: r.skipped,
		Size:    r.viewport.Size(),
	}
	if r.st != nil {
		s.T = r.st.t
	}
	return s
}

// NoiseTime converts host time into the noise time coordinate.
func (r *Renderer) NoiseTime(now time.Duration) float64 {
	return float64(now) / float64(time.Millisecond) * r.cfg.TimeScale
}

func (r *Renderer) tick(st *renderState, now time.Duration) {
	if r.st != st {
		return
	}
	st.pending = r.sched.Schedule(st.frame)
	if !st.throttle.Due(now) {
		r.skipped++
		return
	}
	st.t = r.NoiseTime(now)
	render.Composite(st.buf, r.field, st.t)
	r.surface.Present(st.buf)
	r.frames++
}
