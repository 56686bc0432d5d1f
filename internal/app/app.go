//go:build ebiten

package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"viscous-bg/internal/core"
	"viscous-bg/internal/render"
	"viscous-bg/internal/ui"
	"viscous-bg/internal/viscous"
)

// Game adapts the viscous renderer to the ebiten.Game interface. ebiten's
// update loop is the host scheduler.
type Game struct {
	renderer *viscous.Renderer
	queue    *core.FrameQueue
	resizes  *core.ResizeNotifier
	painter  *render.Painter
	overlay  *ui.Overlay

	start   time.Time
	started bool
	w, h    int
}

// New constructs a Game for the provided configuration.
func New(cfg viscous.Config, logger *log.Logger) (*Game, error) {
	g := &Game{
		queue:   core.NewFrameQueue(),
		resizes: core.NewResizeNotifier(),
		painter: render.NewPainter(),
	}
	r, err := viscous.New(cfg, viscous.Deps{
		Scheduler: g.queue,
		Surface:   g.painter,
		Resizes:   g.resizes,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	g.renderer = r
	g.overlay = ui.NewOverlay(r, cfg.Parameters())
	return g, nil
}

// Update pumps the renderer once per ebiten tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	g.overlay.Update()

	if !g.started {
		if g.w == 0 || g.h == 0 {
			return nil
		}
		if err := g.renderer.Start(g.w, g.h); err != nil {
			return err
		}
		g.start = time.Now()
		g.started = true
	}
	g.queue.Pump(time.Since(g.start))
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout reports window size changes to the renderer and keeps the logical
// screen equal to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		if g.started {
			g.resizes.Notify(g.w, g.h)
		}
	}
	return outsideWidth, outsideHeight
}

// Close stops the renderer.
func (g *Game) Close() {
	g.renderer.Stop()
}
