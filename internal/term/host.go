package term

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"viscous-bg/internal/core"
	"viscous-bg/internal/viscous"
)

// Host runs a renderer on a tcell screen. The screen must already be
// initialised; the caller finalises it after Run returns.
type Host struct {
	screen   tcell.Screen
	queue    *core.FrameQueue
	resizes  *core.ResizeNotifier
	renderer *viscous.Renderer
	refresh  time.Duration
	scale    float64
}

// NewHost wires a renderer to screen. refresh is the host tick rate in Hz.
func NewHost(screen tcell.Screen, cfg viscous.Config, refresh int, logger *log.Logger) (*Host, error) {
	if refresh <= 0 {
		refresh = 60
	}
	h := &Host{
		screen:  screen,
		queue:   core.NewFrameQueue(),
		resizes: core.NewResizeNotifier(),
		refresh: time.Second / time.Duration(refresh),
		scale:   cfg.Scale,
	}
	r, err := viscous.New(cfg, viscous.Deps{
		Scheduler: h.queue,
		Surface:   NewSurface(screen),
		Resizes:   h.resizes,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	h.renderer = r
	return h, nil
}

// Renderer exposes the underlying renderer.
func (h *Host) Renderer() *viscous.Renderer { return h.renderer }

// Viewport converts a terminal of cols×rows cells into the host pixel size
// whose buffer covers one pixel per half cell.
func (h *Host) Viewport(cols, rows int) (int, int) {
	scale := h.scale
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(cols) / scale)), int(math.Round(float64(2*rows) / scale))
}

// Run pumps the renderer until ctx is cancelled or the user quits with Esc,
// Ctrl-C or q.
func (h *Host) Run(ctx context.Context) error {
	if err := h.renderer.Start(h.Viewport(h.screen.Size())); err != nil {
		return err
	}
	defer h.renderer.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.refresh)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.queue.Pump(now.Sub(start))
		}
	}
}

func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resizes.Notify(h.Viewport(ev.Size()))
	}
	return true
}
