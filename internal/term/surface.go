// Package term previews the viscous background in a terminal, two buffer
// rows per character cell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"viscous-bg/internal/core"
)

// upperHalf paints the top half of a cell in the foreground colour.
const upperHalf = '▀'

// Surface presents pixel buffers on a tcell screen, stretching them to fill
// the current terminal size.
type Surface struct {
	screen tcell.Screen
	buf    *core.PixelBuffer
}

// NewSurface returns a Surface drawing to screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Alloc replaces the buffer.
func (s *Surface) Alloc(size core.Size) *core.PixelBuffer {
	s.buf = core.NewPixelBuffer(size.W, size.H)
	return s.buf
}

// Present draws buf over the whole screen and shows it.
func (s *Surface) Present(buf *core.PixelBuffer) {
	cols, rows := s.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := CellColors(buf, cols, rows, cx, cy)
			s.screen.SetContent(cx, cy, upperHalf, nil, cellStyle(top, bottom))
		}
	}
	s.screen.Show()
}

// CellColors samples the two buffer pixels shown by terminal cell (cx, cy)
// on a cols×rows screen, nearest neighbour.
func CellColors(buf *core.PixelBuffer, cols, rows, cx, cy int) (top, bottom color.RGBA) {
	px := cx * buf.W / cols
	top = pixelAt(buf, px, (2*cy)*buf.H/(2*rows))
	bottom = pixelAt(buf, px, (2*cy+1)*buf.H/(2*rows))
	return top, bottom
}

func pixelAt(buf *core.PixelBuffer, x, y int) color.RGBA {
	x = min(max(x, 0), buf.W-1)
	y = min(max(y, 0), buf.H-1)
	i := buf.Offset(x, y)
	return color.RGBA{R: buf.Pix[i], G: buf.Pix[i+1], B: buf.Pix[i+2], A: buf.Pix[i+3]}
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}
