package render

import (
	"image"

	"viscous-bg/internal/core"
)

// Surface is the presentation boundary. Alloc replaces any previous buffer;
// Present hands a fully written frame to the host.
type Surface interface {
	Alloc(size core.Size) *core.PixelBuffer
	Present(buf *core.PixelBuffer)
}

// MemorySurface keeps frames in memory. It backs tests and snapshot export.
type MemorySurface struct {
	buf      *core.PixelBuffer
	last     []byte
	lastSize core.Size

	Allocs   int
	Presents int
}

// NewMemorySurface returns an empty MemorySurface.
func NewMemorySurface() *MemorySurface { return &MemorySurface{} }

// Alloc discards the previous buffer and returns a new one of size.
func (m *MemorySurface) Alloc(size core.Size) *core.PixelBuffer {
	m.buf = core.NewPixelBuffer(size.W, size.H)
	m.Allocs++
	return m.buf
}

// Present copies buf as the latest frame.
func (m *MemorySurface) Present(buf *core.PixelBuffer) {
	m.last = append(m.last[:0], buf.Pix...)
	m.lastSize = buf.Size()
	m.Presents++
}

// Buffer returns the most recently allocated buffer.
func (m *MemorySurface) Buffer() *core.PixelBuffer { return m.buf }

// Last returns the bytes and size of the most recently presented frame.
func (m *MemorySurface) Last() ([]byte, core.Size) { return m.last, m.lastSize }

// Snapshot returns a copy of the last presented frame, or nil before the
// first Present.
func (m *MemorySurface) Snapshot() *image.RGBA {
	if m.Presents == 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, m.lastSize.W, m.lastSize.H))
	copy(img.Pix, m.last)
	return img
}
