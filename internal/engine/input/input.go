// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event is one platform event in viewer terms.
type Event struct {
	Type EventType

	Key    sdl.Scancode
	Mod    uint16 // sdl.KMOD_* bits
	Repeat bool

	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Button uint8
	Wheel  float32 // notches, positive away from the user
}

// Input collects the events of one frame and tracks held keys.
type Input struct {
	events []Event
	keys   []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to Events. A window close
// arrives as EventQuit.
func (i *Input) Update() {
	i.events = i.events[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})

		case *sdl.KeyboardEvent:
			t := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				t = EventKeyDown
			}
			i.events = append(i.events, Event{
				Type:   t,
				Key:    e.Keysym.Scancode,
				Mod:    e.Keysym.Mod,
				Repeat: e.Repeat != 0,
			})

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				t = EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			y := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: y})
		}
	}

	i.keys = sdl.GetKeyboardState()
}

// Events returns the events from the last Update in arrival order.
func (i *Input) Events() []Event {
	return i.events
}

// KeyHeld reports whether a key is currently down.
func (i *Input) KeyHeld(sc sdl.Scancode) bool {
	return int(sc) < len(i.keys) && i.keys[sc] != 0
}
