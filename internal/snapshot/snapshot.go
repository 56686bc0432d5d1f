// Package snapshot renders single frames of the background for export.
package snapshot

import (
	"errors"
	"image"
	"log"
	"time"

	"viscous-bg/internal/core"
	"viscous-bg/internal/render"
	"viscous-bg/internal/viscous"
)

// ErrNoFrame is returned when the renderer produced nothing at the requested
// time, which happens for times shorter than one frame interval.
var ErrNoFrame = errors.New("snapshot: no frame rendered")

// Render produces the frame a vw×vh viewport shows at wall-clock time at,
// stretched back up to the viewport size.
func Render(cfg viscous.Config, vw, vh int, at time.Duration, logger *log.Logger) (*image.RGBA, error) {
	queue := core.NewFrameQueue()
	surface := render.NewMemorySurface()
	r, err := viscous.New(cfg, viscous.Deps{Scheduler: queue, Surface: surface, Logger: logger})
	if err != nil {
		return nil, err
	}
	if err := r.Start(vw, vh); err != nil {
		return nil, err
	}
	queue.Pump(at)
	r.Stop()

	frame := surface.Snapshot()
	if frame == nil {
		return nil, ErrNoFrame
	}
	return render.Upscale(frame, vw, vh), nil
}
