package tui

import (
	"github.com/nsf/termbox-go"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

// attr maps a cell color to a termbox attribute; termbox must be in OutputRGB mode.
func attr(c raymarch.Color) termbox.Attribute {
	if !c.Set {
		return termbox.ColorDefault
	}
	return termbox.RGBToAttribute(c.R, c.G, c.B)
}

// Display copies frame buffers to the terminal.
type Display struct{}

// Present draws every cell of fb at the terminal origin, one row per line, and flushes.
func (Display) Present(fb *raymarch.FrameBuffer) error {
	for y := 0; y < fb.H; y++ {
		for x, c := range fb.Row(y) {
			termbox.SetCell(x, y, c.Glyph, attr(c.Fg), attr(c.Bg))
		}
	}
	return termbox.Flush()
}
