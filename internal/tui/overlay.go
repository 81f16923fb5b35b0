package tui

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

const (
	menuW = 14
	menuH = 4
	menuY = 1 // the menu sits right below the title bar
)

// DebugMenu is the foldable statistics panel in the top-left corner.
type DebugMenu struct {
	Folded  bool
	FPS     float64
	Objects int
	Bg, Fg  raymarch.Color
}

func NewDebugMenu() *DebugMenu {
	return &DebugMenu{
		Folded: true,
		Bg:     raymarch.ColorOf(raymarch.RGB{R: 30, G: 20, B: 50}),
		Fg:     raymarch.ColorOf(raymarch.RGB{R: 120, G: 0, B: 255}),
	}
}

// Update records the duration of the last frame and the scene size.
func (m *DebugMenu) Update(frame time.Duration, objects int) {
	if frame > 0 {
		m.FPS = 1 / frame.Seconds()
	}
	m.Objects = objects
}

// HandleMouse toggles the fold on a left click on the [+]/[-] button.
func (m *DebugMenu) HandleMouse(ev Event) bool {
	if ev.Kind != EventMouse || ev.Button != mouseLeft || ev.Y != menuY || ev.X < 0 || ev.X > 2 {
		return false
	}
	m.Folded = !m.Folded
	return true
}

// Draw writes the menu into fb, clipped to its bounds.
func (m *DebugMenu) Draw(fb *raymarch.FrameBuffer) {
	for ix := 0; ix < menuW; ix++ {
		for iy := menuY; iy < menuY+menuH; iy++ {
			if m.Folded {
				setBg(fb, ix, iy, raymarch.ColorDefault)
			} else {
				setBg(fb, ix, iy, m.Bg)
			}
		}
	}
	if m.Folded {
		text(fb, 0, menuY, "[+]", m.Fg)
		for ix := 0; ix < 3; ix++ {
			setBg(fb, ix, menuY, m.Bg)
		}
		return
	}
	for ix := 0; ix < menuW; ix++ {
		set(fb, ix, menuY, '-', m.Fg)
		set(fb, ix, menuY+menuH-1, '-', m.Fg)
	}
	text(fb, 0, menuY, "[-]", m.Fg)
	fps := strconv.FormatFloat(math.Floor(m.FPS*100)/100, 'f', -1, 64)
	text(fb, 0, menuY+1, "fps: "+fps, m.Fg)
	text(fb, 0, menuY+2, fmt.Sprintf("objs: %d", m.Objects), m.Fg)
}

// TitleBar fills the top row with header followed by '=' and a closing '!'.
func TitleBar(fb *raymarch.FrameBuffer, header string) {
	x := text(fb, 0, 0, header, raymarch.ColorRed)
	for ; x < fb.W-1; x++ {
		set(fb, x, 0, '=', raymarch.ColorRed)
	}
	if x == fb.W-1 {
		set(fb, x, 0, '!', raymarch.ColorRed)
	}
}

// text writes s from (x, y) and returns the column after the last written rune.
func text(fb *raymarch.FrameBuffer, x, y int, s string, fg raymarch.Color) int {
	for _, r := range s {
		if x >= fb.W {
			break
		}
		set(fb, x, y, r, fg)
		x++
	}
	return x
}

func inside(fb *raymarch.FrameBuffer, x, y int) bool {
	return x >= 0 && x < fb.W && y >= 0 && y < fb.H
}

func set(fb *raymarch.FrameBuffer, x, y int, r rune, fg raymarch.Color) {
	if inside(fb, x, y) {
		fb.Set(x, y, r, fg)
	}
}

func setBg(fb *raymarch.FrameBuffer, x, y int, bg raymarch.Color) {
	if inside(fb, x, y) {
		fb.SetBg(x, y, bg)
	}
}
