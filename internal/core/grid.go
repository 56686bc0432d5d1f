package core

// PixelBuffer stores a 2D grid of RGBA pixels in row-major order.
type PixelBuffer struct {
	W, H int
	Pix  []byte
}

// NewPixelBuffer allocates a zeroed buffer with the given dimensions.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &PixelBuffer{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Size returns the buffer dimensions.
func (b *PixelBuffer) Size() Size { return Size{W: b.W, H: b.H} }

// Offset returns the index of the red byte for pixel (x, y).
func (b *PixelBuffer) Offset(x, y int) int { return (y*b.W + x) << 2 }

// Clear fills the buffer with transparent black.
func (b *PixelBuffer) Clear() {
	for i := range b.Pix {
		b.Pix[i] = 0
	}
}
