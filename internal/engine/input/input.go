// Package input handles SDL2 input events.
//
// Pointer, touch, wheel and key events are translated into gesture events
// and handed to the listener; quit and resize stay with the host loop.
package input

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/panoview/internal/pano/gesture"
)

var (
	// ErrAlreadyListening is returned by Listen when a handler is attached.
	ErrAlreadyListening = errors.New("input: already listening")
	// ErrEventsUnavailable is returned by Listen before SDL events are initialized.
	ErrEventsUnavailable = errors.New("input: SDL event subsystem not initialized")
)

// Host event types
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventScreenshot
	EventSavePreferences
)

// Event is a host event the controller does not consume.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input polls SDL and feeds gesture events to a single listener.
type Input struct {
	events  []Event
	handler func(gesture.Event)
	width   int
	height  int
}

// New creates an input handler for a window of the given size.
// The size is used to scale normalized touch coordinates.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 4),
		width:  width,
		height: height,
	}
}

// Listen attaches handler. The returned function detaches it.
func (i *Input) Listen(handler func(gesture.Event)) (func(), error) {
	if i.handler != nil {
		return nil, ErrAlreadyListening
	}
	if sdl.WasInit(sdl.INIT_EVENTS) == 0 {
		return nil, ErrEventsUnavailable
	}
	i.handler = handler
	return func() { i.handler = nil }, nil
}

// Update polls SDL events, forwarding gestures to the listener.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// Events returns the host events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  i.width,
				Height: i.height,
			})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				i.events = append(i.events, Event{Type: EventQuit})
				return true
			case sdl.K_F12:
				i.events = append(i.events, Event{Type: EventScreenshot})
			case sdl.K_s:
				if e.Keysym.Mod&sdl.KMOD_CTRL != 0 {
					i.events = append(i.events, Event{Type: EventSavePreferences})
				}
			}
		}
	}

	if ev, ok := Translate(event, i.width, i.height); ok && i.handler != nil {
		i.handler(ev)
	}
	return false
}

// Translate converts an SDL event into a gesture event. Touch coordinates
// are normalized by SDL and scaled here by the window size.
func Translate(event sdl.Event, width, height int) (gesture.Event, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		btn, ok := buttons[e.Button]
		if !ok {
			return gesture.Event{}, false
		}
		typ := gesture.EventPointerDown
		if e.Type == sdl.MOUSEBUTTONUP {
			typ = gesture.EventPointerUp
		}
		return gesture.Event{Type: typ, X: float64(e.X), Y: float64(e.Y), Button: btn}, true

	case *sdl.MouseMotionEvent:
		return gesture.Event{Type: gesture.EventPointerMove, X: float64(e.X), Y: float64(e.Y)}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_LEAVE {
			return gesture.Event{Type: gesture.EventPointerLeave}, true
		}

	case *sdl.TouchFingerEvent:
		ev := gesture.Event{X: float64(e.X) * float64(width), Y: float64(e.Y) * float64(height)}
		switch e.Type {
		case sdl.FINGERDOWN:
			ev.Type = gesture.EventTouchStart
		case sdl.FINGERMOTION:
			ev.Type = gesture.EventTouchMove
		case sdl.FINGERUP:
			ev.Type = gesture.EventTouchEnd
		default:
			return gesture.Event{}, false
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		if dy == 0 {
			return gesture.Event{}, false
		}
		// SDL reports positive Y away from the user
		return gesture.Event{Type: gesture.EventWheel, DeltaY: -dy}, true

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return gesture.Event{}, false
		}
		key, ok := keys[e.Keysym.Sym]
		if !ok {
			return gesture.Event{}, false
		}
		return gesture.Event{Type: gesture.EventKeyDown, Key: key}, true
	}
	return gesture.Event{}, false
}

var buttons = map[uint8]gesture.Button{
	sdl.BUTTON_LEFT:   gesture.ButtonPrimary,
	sdl.BUTTON_MIDDLE: gesture.ButtonMiddle,
	sdl.BUTTON_RIGHT:  gesture.ButtonSecondary,
}

var keys = map[sdl.Keycode]gesture.Key{
	sdl.K_LEFT:     gesture.KeyLeft,
	sdl.K_RIGHT:    gesture.KeyRight,
	sdl.K_UP:       gesture.KeyUp,
	sdl.K_DOWN:     gesture.KeyDown,
	sdl.K_EQUALS:   gesture.KeyZoomIn,
	sdl.K_PLUS:     gesture.KeyZoomIn,
	sdl.K_KP_PLUS:  gesture.KeyZoomIn,
	sdl.K_MINUS:    gesture.KeyZoomOut,
	sdl.K_KP_MINUS: gesture.KeyZoomOut,
	sdl.K_r:        gesture.KeyReset,
	sdl.K_HOME:     gesture.KeyReset,
	sdl.K_1:        gesture.KeyMode1,
	sdl.K_2:        gesture.KeyMode2,
	sdl.K_3:        gesture.KeyMode3,
	sdl.K_4:        gesture.KeyMode4,
}
