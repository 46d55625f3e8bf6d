package gesture

import "github.com/Faultbox/panoview/internal/pano/projection"

// Sensitivity holds the per-device scale factors.
type Sensitivity struct {
	Drag    float64 // radians per pixel of mouse drag
	Touch   float64 // radians per pixel of touch drag
	KeyStep float64 // radians per arrow key press
}

// DefaultSensitivity returns the stock sensitivities.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{
		Drag:    0.005,
		Touch:   0.008,
		KeyStep: 0.05,
	}
}

// Normalizer converts raw events into gestures. It only remembers the last
// sample of the live drag or touch so it can compute the next delta.
//
// Dragging follows grab semantics: moving the pointer right pulls the scene
// right, which turns the camera left (positive yaw).
type Normalizer struct {
	sens Sensitivity

	pressed bool
	kind    Kind
	lastX   float64
	lastY   float64
}

// NewNormalizer creates a normalizer with the given sensitivities.
func NewNormalizer(sens Sensitivity) *Normalizer {
	return &Normalizer{sens: sens}
}

// SetSensitivity replaces the sensitivities. A live gesture keeps going.
func (n *Normalizer) SetSensitivity(sens Sensitivity) {
	n.sens = sens
}

// Active reports whether a drag or touch gesture is in progress.
func (n *Normalizer) Active() bool {
	return n.pressed
}

// Cancel drops any live gesture without producing a delta.
func (n *Normalizer) Cancel() {
	n.pressed = false
	n.kind = 0
}

// Handle converts one event. The boolean is false when the event produced
// nothing, such as a pointer-down or a move with no gesture live.
func (n *Normalizer) Handle(ev Event) (Gesture, bool) {
	switch ev.Type {
	case EventPointerDown:
		if ev.Button != ButtonPrimary {
			return Gesture{}, false
		}
		n.begin(KindDrag, ev)
		return Gesture{}, false

	case EventTouchStart:
		n.begin(KindTouch, ev)
		return Gesture{}, false

	case EventPointerMove:
		return n.move(KindDrag, ev, n.sens.Drag)

	case EventTouchMove:
		return n.move(KindTouch, ev, n.sens.Touch)

	case EventPointerUp, EventPointerLeave, EventTouchEnd:
		n.Cancel()
		return Gesture{}, false

	case EventWheel:
		return wheel(ev.DeltaY)

	case EventKeyDown:
		return n.key(ev.Key)
	}
	return Gesture{}, false
}

func (n *Normalizer) begin(kind Kind, ev Event) {
	n.pressed = true
	n.kind = kind
	n.lastX = ev.X
	n.lastY = ev.Y
}

func (n *Normalizer) move(kind Kind, ev Event, scale float64) (Gesture, bool) {
	if !n.pressed || n.kind != kind {
		return Gesture{}, false
	}
	dx := ev.X - n.lastX
	dy := ev.Y - n.lastY
	n.lastX = ev.X
	n.lastY = ev.Y
	if dx == 0 && dy == 0 {
		return Gesture{}, false
	}
	return Gesture{Kind: kind, DYaw: dx * scale, DPitch: dy * scale}, true
}

func wheel(deltaY float64) (Gesture, bool) {
	switch {
	case deltaY < 0:
		g := ZoomIn()
		g.Kind = KindWheel
		return g, true
	case deltaY > 0:
		g := ZoomOut()
		g.Kind = KindWheel
		return g, true
	}
	return Gesture{}, false
}

var keyModes = map[Key]projection.Mode{
	KeyMode1: projection.Normal,
	KeyMode2: projection.WideAngle,
	KeyMode3: projection.Fisheye,
	KeyMode4: projection.InvertedPlanet,
}

func (n *Normalizer) key(k Key) (Gesture, bool) {
	step := n.sens.KeyStep
	switch k {
	case KeyLeft:
		return Gesture{Kind: KindKey, DYaw: step}, true
	case KeyRight:
		return Gesture{Kind: KindKey, DYaw: -step}, true
	case KeyUp:
		return Gesture{Kind: KindKey, DPitch: step}, true
	case KeyDown:
		return Gesture{Kind: KindKey, DPitch: -step}, true
	case KeyZoomIn:
		return ZoomIn(), true
	case KeyZoomOut:
		return ZoomOut(), true
	case KeyReset:
		return Reset(), true
	}
	if m, ok := keyModes[k]; ok {
		return SetMode(m), true
	}
	return Gesture{}, false
}
