package raymarch

import "fmt"

// Cell is one character of the output grid.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// Sink is anything a frame can be drawn into.
type Sink interface {
	Set(x, y int, glyph rune, fg Color)
	SetBg(x, y int, bg Color)
}

// FrameBuffer is a fixed-size grid of cells, flat: y*W + x.
// Concurrent writers must target distinct cells.
type FrameBuffer struct {
	W, H  int
	Cells []Cell
}

func NewFrameBuffer(size Size) *FrameBuffer {
	if size.W <= 0 || size.H <= 0 {
		panic("frame buffer size must be positive")
	}
	fb := &FrameBuffer{W: size.W, H: size.H, Cells: make([]Cell, size.W*size.H)}
	fb.Reset(ColorDefault, ColorDefault)
	DebugLog("Created frame buffer %dx%d", size.W, size.H)
	return fb
}

func (fb *FrameBuffer) Size() Size { return Size{fb.W, fb.H} }

// idx panics on coordinates outside the grid; callers own the bounds.
func (fb *FrameBuffer) idx(x, y int) int {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		panic(fmt.Sprintf("frame buffer: cell (%d,%d) outside %dx%d", x, y, fb.W, fb.H))
	}
	return y*fb.W + x
}

// Set writes the glyph and foreground color of a cell, keeping its background.
func (fb *FrameBuffer) Set(x, y int, glyph rune, fg Color) {
	c := &fb.Cells[fb.idx(x, y)]
	c.Glyph, c.Fg = glyph, fg
}

func (fb *FrameBuffer) SetBg(x, y int, bg Color) {
	fb.Cells[fb.idx(x, y)].Bg = bg
}

func (fb *FrameBuffer) At(x, y int) Cell { return fb.Cells[fb.idx(x, y)] }

// Row returns the cells of row y, sharing storage with the buffer.
func (fb *FrameBuffer) Row(y int) []Cell {
	i := fb.idx(0, y)
	return fb.Cells[i : i+fb.W]
}

// Reset fills every cell with a blank in the given colors.
func (fb *FrameBuffer) Reset(fg, bg Color) {
	for i := range fb.Cells {
		fb.Cells[i] = Cell{Glyph: ' ', Fg: fg, Bg: bg}
	}
}
