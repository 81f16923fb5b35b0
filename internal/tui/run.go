package tui

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

// Header is drawn on the first terminal row.
const Header = "!== termmarcher v1.0 "

// Run takes over the terminal and renders the demo scene until Esc or Ctrl+C.
func Run(cfg raymarch.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.OutputRGB)
	termbox.HideCursor()

	w, h := termbox.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal size %dx%d is not usable", w, h)
	}
	size := raymarch.Size{W: w, H: h}
	raymarch.DebugLog("terminal %dx%d, config %+v", w, h, cfg)

	scene, spin := DemoScene()
	stage := raymarch.NewStage(scene)
	fb := raymarch.NewFrameBuffer(size)
	in := NewInput(64)
	defer in.Stop()
	menu := NewDebugMenu()
	var (
		display Display
		dt      time.Duration
	)

	for {
		start := time.Now()
		back := stage.Back()
		for {
			ev, ok := in.Next()
			if !ok {
				break
			}
			switch ev.Kind {
			case EventQuit:
				return nil
			case EventKey:
				ApplyKey(&back.Camera, ev)
			case EventMouse:
				menu.HandleMouse(ev)
			}
		}
		spin.Advance(back, dt)

		front := stage.Swap()
		if err := raymarch.RenderFrame(front, size, fb, cfg); err != nil {
			return err
		}
		menu.Draw(fb)
		TitleBar(fb, Header)
		if err := display.Present(fb); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
		fb.Reset(raymarch.ColorDefault, raymarch.ColorDefault)

		dt = time.Since(start)
		menu.Update(dt, front.Len())
	}
}
