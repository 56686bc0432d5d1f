package render

import (
	"math"

	"viscous-bg/internal/core"
)

// Buffer sizing defaults. The floor bounds the per-frame cost on tiny hosts
// and the scale bounds it on large ones.
const (
	DefaultScale = 0.06
	MinWidth     = 40
	MinHeight    = 24
)

// BufferSize converts host viewport pixels into low-resolution buffer units.
func BufferSize(vw, vh int, scale float64) core.Size {
	return BufferSizeMin(vw, vh, scale, MinWidth, MinHeight)
}

// BufferSizeMin is BufferSize with explicit floor values.
func BufferSizeMin(vw, vh int, scale float64, minW, minH int) core.Size {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = DefaultScale
	}
	if minW < 1 {
		minW = 1
	}
	if minH < 1 {
		minH = 1
	}
	return core.Size{
		W: max(minW, int(math.Round(float64(vw)*scale))),
		H: max(minH, int(math.Round(float64(vh)*scale))),
	}
}

// Viewport tracks the buffer size derived from the most recent host size.
type Viewport struct {
	scale      float64
	minW, minH int
	size       core.Size
}

// NewViewport returns a Viewport using scale and the default floor values.
func NewViewport(scale float64) *Viewport {
	return NewViewportMin(scale, MinWidth, MinHeight)
}

// NewViewportMin returns a Viewport with explicit floor values.
func NewViewportMin(scale float64, minW, minH int) *Viewport {
	return &Viewport{scale: scale, minW: minW, minH: minH}
}

// Update recomputes the buffer size and reports whether it changed.
func (v *Viewport) Update(vw, vh int) (core.Size, bool) {
	next := BufferSizeMin(vw, vh, v.scale, v.minW, v.minH)
	changed := next != v.size
	v.size = next
	return next, changed
}

// Size returns the current buffer size; zero before the first Update.
func (v *Viewport) Size() core.Size { return v.size }
