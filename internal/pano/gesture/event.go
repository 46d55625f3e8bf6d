// Package gesture turns raw pointer, touch, wheel and keyboard events into
// angular deltas and discrete viewer commands.
package gesture

// EventType identifies a raw input event.
type EventType int

const (
	EventNone EventType = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventPointerLeave
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventWheel
	EventKeyDown
)

// Button is a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyZoomIn
	KeyZoomOut
	KeyReset
	KeyMode1
	KeyMode2
	KeyMode3
	KeyMode4
)

// Event is a raw input event in screen space. X and Y are in pixels for
// pointer and touch events; DeltaY is the wheel delta, negative when the
// wheel moves away from the user.
type Event struct {
	Type   EventType
	X, Y   float64
	Button Button
	DeltaY float64
	Key    Key
}
