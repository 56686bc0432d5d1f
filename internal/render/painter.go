//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"viscous-bg/internal/core"
)

// Painter presents pixel buffers through a single ebiten image that is
// stretched over the screen.
type Painter struct {
	img        *ebiten.Image
	buf        *core.PixelBuffer
	Brightness float32
	Overscan   float64
}

// NewPainter returns a Painter with the default post-process settings.
func NewPainter() *Painter {
	return &Painter{Brightness: 1.1, Overscan: 1.05}
}

// Alloc replaces the backing image and buffer.
func (p *Painter) Alloc(size core.Size) *core.PixelBuffer {
	if p.img != nil {
		p.img.Dispose()
	}
	p.buf = core.NewPixelBuffer(size.W, size.H)
	p.img = ebiten.NewImage(p.buf.W, p.buf.H)
	return p.buf
}

// Present uploads buf into the backing image.
func (p *Painter) Present(buf *core.PixelBuffer) {
	if p.img == nil || buf != p.buf {
		return
	}
	p.img.WritePixels(buf.Pix)
}

// Draw stretches the last presented frame over dst.
func (p *Painter) Draw(dst *ebiten.Image) {
	if p.img == nil {
		return
	}
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	sx := float64(dw) / float64(p.buf.W) * p.Overscan
	sy := float64(dh) / float64(p.buf.H) * p.Overscan

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(sx, sy)
	// Centre the overscanned image so the soft edges fall off screen.
	op.GeoM.Translate(-(float64(p.buf.W)*sx-float64(dw))/2, -(float64(p.buf.H)*sy-float64(dh))/2)
	op.ColorScale.Scale(p.Brightness, p.Brightness, p.Brightness, 1)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) {
	if p.buf == nil {
		return 0, 0
	}
	return p.buf.W, p.buf.H
}
