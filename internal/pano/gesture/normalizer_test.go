package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/panoview/internal/pano/projection"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(Sensitivity{Drag: 0.01, Touch: 0.02, KeyStep: 0.1})
}

func TestDragProducesScaledDelta(t *testing.T) {
	n := newTestNormalizer()

	_, ok := n.Handle(Event{Type: EventPointerDown, X: 100, Y: 100, Button: ButtonPrimary})
	assert.False(t, ok)
	assert.True(t, n.Active())

	g, ok := n.Handle(Event{Type: EventPointerMove, X: 110, Y: 95})
	assert.True(t, ok)
	assert.Equal(t, KindDrag, g.Kind)
	assert.InDelta(t, 0.1, g.DYaw, 1e-12)
	assert.InDelta(t, -0.05, g.DPitch, 1e-12)

	// Deltas are relative to the previous sample, not the press point.
	g, ok = n.Handle(Event{Type: EventPointerMove, X: 120, Y: 95})
	assert.True(t, ok)
	assert.InDelta(t, 0.1, g.DYaw, 1e-12)
	assert.Equal(t, 0.0, g.DPitch)
}

func TestMoveWithoutPressIgnored(t *testing.T) {
	n := newTestNormalizer()
	_, ok := n.Handle(Event{Type: EventPointerMove, X: 50, Y: 50})
	assert.False(t, ok)
}

func TestOnlyPrimaryButtonStartsDrag(t *testing.T) {
	n := newTestNormalizer()
	n.Handle(Event{Type: EventPointerDown, X: 0, Y: 0, Button: ButtonSecondary})
	assert.False(t, n.Active())

	_, ok := n.Handle(Event{Type: EventPointerMove, X: 10, Y: 10})
	assert.False(t, ok)
}

func TestAnyReleaseEndsDrag(t *testing.T) {
	for _, btn := range []Button{ButtonPrimary, ButtonMiddle, ButtonSecondary} {
		n := newTestNormalizer()
		n.Handle(Event{Type: EventPointerDown, X: 0, Y: 0, Button: ButtonPrimary})
		n.Handle(Event{Type: EventPointerUp, Button: btn})
		assert.False(t, n.Active(), "release of button %d", btn)

		_, ok := n.Handle(Event{Type: EventPointerMove, X: 40, Y: 0})
		assert.False(t, ok, "move after release of button %d", btn)
	}
}

func TestPointerLeaveEndsGesture(t *testing.T) {
	n := newTestNormalizer()
	n.Handle(Event{Type: EventPointerDown, X: 10, Y: 10, Button: ButtonPrimary})
	n.Handle(Event{Type: EventPointerLeave})
	assert.False(t, n.Active())

	_, ok := n.Handle(Event{Type: EventPointerMove, X: 40, Y: 40})
	assert.False(t, ok)
}

func TestTouchUsesTouchSensitivity(t *testing.T) {
	n := newTestNormalizer()
	n.Handle(Event{Type: EventTouchStart, X: 0, Y: 0})

	g, ok := n.Handle(Event{Type: EventTouchMove, X: 10, Y: 20})
	assert.True(t, ok)
	assert.Equal(t, KindTouch, g.Kind)
	assert.InDelta(t, 0.2, g.DYaw, 1e-12)
	assert.InDelta(t, 0.4, g.DPitch, 1e-12)

	// A mouse move during a touch gesture is not part of it.
	_, ok = n.Handle(Event{Type: EventPointerMove, X: 30, Y: 30})
	assert.False(t, ok)

	n.Handle(Event{Type: EventTouchEnd})
	assert.False(t, n.Active())
}

func TestWheelProducesZoomOnly(t *testing.T) {
	n := newTestNormalizer()

	g, ok := n.Handle(Event{Type: EventWheel, DeltaY: -3})
	assert.True(t, ok)
	assert.Equal(t, CommandZoomIn, g.Command)
	assert.Equal(t, KindWheel, g.Kind)
	assert.Zero(t, g.DYaw)
	assert.Zero(t, g.DPitch)

	g, ok = n.Handle(Event{Type: EventWheel, DeltaY: 1})
	assert.True(t, ok)
	assert.Equal(t, CommandZoomOut, g.Command)

	_, ok = n.Handle(Event{Type: EventWheel, DeltaY: 0})
	assert.False(t, ok)
}

func TestArrowKeys(t *testing.T) {
	n := newTestNormalizer()
	tests := []struct {
		key          Key
		dYaw, dPitch float64
	}{
		{KeyLeft, 0.1, 0},
		{KeyRight, -0.1, 0},
		{KeyUp, 0, 0.1},
		{KeyDown, 0, -0.1},
	}

	for _, tt := range tests {
		g, ok := n.Handle(Event{Type: EventKeyDown, Key: tt.key})
		assert.True(t, ok)
		assert.Equal(t, KindKey, g.Kind)
		assert.Equal(t, tt.dYaw, g.DYaw)
		assert.Equal(t, tt.dPitch, g.DPitch)
	}
}

func TestCommandKeys(t *testing.T) {
	n := newTestNormalizer()

	g, _ := n.Handle(Event{Type: EventKeyDown, Key: KeyReset})
	assert.Equal(t, CommandReset, g.Command)

	g, _ = n.Handle(Event{Type: EventKeyDown, Key: KeyMode4})
	assert.Equal(t, CommandSetMode, g.Command)
	assert.Equal(t, projection.InvertedPlanet, g.Mode)

	_, ok := n.Handle(Event{Type: EventKeyDown, Key: KeyUnknown})
	assert.False(t, ok)
}
