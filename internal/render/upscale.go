package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale stretches src to w×h with bilinear filtering, softening the
// blockiness of the low-resolution buffer.
func Upscale(src *image.RGBA, w, h int) *image.RGBA {
	if w <= 0 {
		w = src.Bounds().Dx()
	}
	if h <= 0 {
		h = src.Bounds().Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
