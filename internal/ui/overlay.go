//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"viscous-bg/internal/core"
	"viscous-bg/internal/viscous"
)

// StatsProvider exposes renderer counters to the overlay.
type StatsProvider interface {
	Stats() viscous.Stats
}

// Overlay draws optional debugging text on top of the background.
type Overlay struct {
	src    StatsProvider
	params core.ParameterSnapshot
	show   bool
}

// NewOverlay constructs a hidden overlay for src.
func NewOverlay(src StatsProvider, params core.ParameterSnapshot) *Overlay {
	return &Overlay{src: src, params: params}
}

// Update toggles visibility on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.src == nil {
		return
	}
	ebitenutil.DebugPrint(screen, Text(o.src.Stats(), o.params, ebiten.ActualTPS()))
}
