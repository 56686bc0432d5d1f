package render

import (
	"image/color"
	"math"

	"viscous-bg/internal/core"
	"viscous-bg/internal/noise"
)

// Octave and highlight layout of the viscous surface.
const (
	octave1Freq = 5.0
	octave2Freq = 10.0
	octave2Amp  = 0.45
	octave2X    = 3.7
	octave2Y    = 1.3
	octave2T    = 1.6

	tiltFreq   = 12.0
	tiltOffset = 10.0
	tiltT      = 1.2

	glintPower = 10
	glintGain  = 0.75

	baseLevel = 3.0
	baseGain  = 2.0

	glintR = 120.0
	glintG = 135.0
	glintB = 160.0
)

// Composite fills every pixel of buf with the surface sampled at noise time t.
// Each pixel costs three field evaluations.
func Composite(buf *core.PixelBuffer, field noise.Field, t float64) {
	w, h := buf.W, buf.H
	fw, fh := float64(w), float64(h)
	pix := buf.Pix
	for py := 0; py < h; py++ {
		ny := float64(py) / fh
		for px := 0; px < w; px++ {
			c := Shade(field, float64(px)/fw, ny, t)
			i := (py*w + px) << 2
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
}

// Shade samples the field for the normalized position (nx, ny) at time t.
func Shade(field noise.Field, nx, ny, t float64) color.RGBA {
	n1 := field.Noise3D(nx*octave1Freq, ny*octave1Freq, t)
	n2 := field.Noise3D(nx*octave2Freq+octave2X, ny*octave2Freq+octave2Y, t*octave2T) * octave2Amp
	tilt := field.Noise3D(nx*tiltFreq+tiltOffset, ny*tiltFreq+tiltOffset, t*tiltT)
	return ShadeValues(n1+n2, tilt)
}

// ShadeValues maps combined octave height raw and highlight noise tilt to a
// near-black colour with a cool-white glint.
func ShadeValues(raw, tilt float64) color.RGBA {
	glint := math.Pow(math.Max(0, tilt), glintPower) * glintGain
	base := baseLevel + raw*baseGain
	return color.RGBA{
		R: clampByte(base + glint*glintR),
		G: clampByte(base + glint*glintG),
		B: clampByte(base + glint*glintB),
		A: 255,
	}
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
