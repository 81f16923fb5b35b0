package tui

import (
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/lukaszgryglicki/termmarcher/internal/raymarch"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   termbox.Event
		ok   bool
		kind EventKind
	}{
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, true, EventQuit},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, true, EventQuit},
		{"rune", termbox.Event{Type: termbox.EventKey, Ch: 'd'}, true, EventKey},
		{"mouse", termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: 1, MouseY: 1}, true, EventMouse},
		{"interrupt", termbox.Event{Type: termbox.EventInterrupt}, true, EventQuit},
		{"resize", termbox.Event{Type: termbox.EventResize, Width: 10, Height: 10}, false, 0},
	}
	for _, c := range cases {
		ev, ok := classify(c.in)
		if ok != c.ok {
			t.Fatalf("%s: ok=%v, want %v", c.name, ok, c.ok)
		}
		if ok && ev.Kind != c.kind {
			t.Fatalf("%s: kind=%d, want %d", c.name, ev.Kind, c.kind)
		}
	}
	ev, _ := classify(termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: 2, MouseY: 1})
	if ev.X != 2 || ev.Y != 1 || ev.Button != termbox.MouseLeft {
		t.Fatalf("mouse fields lost: %+v", ev)
	}
}

func TestInputNext_SkipsDroppedAndDrains(t *testing.T) {
	in := &Input{events: make(chan termbox.Event, 4), done: make(chan struct{})}
	in.events <- termbox.Event{Type: termbox.EventResize}
	in.events <- termbox.Event{Type: termbox.EventKey, Ch: 'a'}
	ev, ok := in.Next()
	if !ok || ev.Kind != EventKey || ev.Ch != 'a' {
		t.Fatalf("Next=%+v,%v", ev, ok)
	}
	if _, ok := in.Next(); ok {
		t.Fatalf("Next on empty queue should report nothing")
	}
}

func TestApplyKey(t *testing.T) {
	var cam raymarch.Camera
	if !ApplyKey(&cam, Event{Kind: EventKey, Ch: 'd'}) || cam.Yaw != 2 {
		t.Fatalf("d: yaw=%v", cam.Yaw)
	}
	ApplyKey(&cam, Event{Kind: EventKey, Ch: 'a'})
	ApplyKey(&cam, Event{Kind: EventKey, Ch: 'a'})
	if cam.Yaw != -2 {
		t.Fatalf("a twice: yaw=%v", cam.Yaw)
	}
	if ApplyKey(&cam, Event{Kind: EventKey, Ch: 'w'}) || cam.Yaw != -2 {
		t.Fatalf("unbound key changed yaw to %v", cam.Yaw)
	}
	if ApplyKey(&cam, Event{Kind: EventMouse, Ch: 'd'}) {
		t.Fatalf("mouse event applied as key")
	}
}
