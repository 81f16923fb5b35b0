package tui

import (
	"github.com/nsf/termbox-go"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

// YawStep is how far one key press turns the camera, in degrees.
const YawStep = 2

const mouseLeft = termbox.MouseLeft

type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouse
	EventQuit
)

// Event is a decoded terminal event. Ch and Key are set for keys; X, Y and Button for the mouse.
type Event struct {
	Kind   EventKind
	Ch     rune
	Key    termbox.Key
	Button termbox.Key
	X, Y   int
}

// classify turns a raw termbox event into an Event; resizes and errors are dropped.
func classify(ev termbox.Event) (Event, bool) {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			return Event{Kind: EventQuit}, true
		}
		return Event{Kind: EventKey, Ch: ev.Ch, Key: ev.Key}, true
	case termbox.EventMouse:
		return Event{Kind: EventMouse, Button: ev.Key, X: ev.MouseX, Y: ev.MouseY}, true
	case termbox.EventInterrupt:
		return Event{Kind: EventQuit}, true
	}
	return Event{}, false
}

// Input forwards terminal events from a polling goroutine.
type Input struct {
	events chan termbox.Event
	done   chan struct{}
}

// NewInput starts polling termbox; termbox must already be initialized.
func NewInput(buffer int) *Input {
	in := &Input{
		events: make(chan termbox.Event, buffer),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			ev := termbox.PollEvent()
			select {
			case in.events <- ev:
			case <-in.done:
				return
			}
			if ev.Type == termbox.EventInterrupt {
				return
			}
		}
	}()
	return in
}

// Next returns the next pending event without blocking.
func (in *Input) Next() (Event, bool) {
	for {
		select {
		case raw := <-in.events:
			if ev, ok := classify(raw); ok {
				return ev, true
			}
		default:
			return Event{}, false
		}
	}
}

// Stop ends polling. Call before termbox.Close.
func (in *Input) Stop() {
	close(in.done)
	termbox.Interrupt()
}

// ApplyKey turns the camera for the yaw keys and reports whether the key was used.
func ApplyKey(cam *raymarch.Camera, ev Event) bool {
	if ev.Kind != EventKey {
		return false
	}
	switch ev.Ch {
	case 'd':
		cam.Turn(YawStep)
	case 'a':
		cam.Turn(-YawStep)
	default:
		return false
	}
	return true
}
