// Package indicator derives compass and minimap readings from the viewer
// orientation and turns minimap clicks back into orientation targets.
package indicator

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// Source is the orientation the feed reads from and writes jumps to.
type Source interface {
	Current() (yaw, pitch float64)
	SetTarget(yaw, pitch float64)
}

// Reading is the set of values published for one frame.
type Reading struct {
	// Heading is the compass needle angle in degrees, in [-180, 180]. It
	// turns opposite to the camera yaw.
	Heading float64

	// Look is the unit horizontal view direction on a north-up minimap,
	// X east and Y north.
	Look math.Vec2

	// CursorX and CursorY locate the view on a [0,1]x[0,1] minimap. They are
	// the inverse of JumpTo.
	CursorX, CursorY float64
}

// Feed caches the reading of the last published frame.
type Feed struct {
	src     Source
	reading Reading
}

// NewFeed creates a feed over src and publishes its initial reading.
func NewFeed(src Source) *Feed {
	f := &Feed{src: src}
	f.Publish()
	return f
}

// Publish recomputes the reading from the current orientation.
func (f *Feed) Publish() Reading {
	yaw, pitch := f.src.Current()
	f.reading = Compute(yaw, pitch)
	return f.reading
}

// Reading returns the last published reading.
func (f *Feed) Reading() Reading {
	return f.reading
}

// Heading returns the last published compass heading in degrees.
func (f *Feed) Heading() float64 {
	return f.reading.Heading
}

// LookVector returns the last published minimap look direction.
func (f *Feed) LookVector() math.Vec2 {
	return f.reading.Look
}

// Cursor returns the last published minimap cursor position.
func (f *Feed) Cursor() (x, y float64) {
	return f.reading.CursorX, f.reading.CursorY
}

// JumpTo points the orientation target at a normalized minimap position.
// Positions outside the unit square are clamped onto its edge. The jump is
// written to the target so the camera eases over instead of cutting.
func (f *Feed) JumpTo(x, y float64) {
	f.src.SetTarget(JumpTarget(x, y))
}

// JumpTarget converts a normalized minimap position to yaw and pitch.
func JumpTarget(x, y float64) (yaw, pitch float64) {
	x = math.Clamp(x, 0, 1)
	y = math.Clamp(y, 0, 1)
	return (x - 0.5) * 2 * gomath.Pi, (y - 0.5) * gomath.Pi
}

// Compute derives a reading from an orientation.
func Compute(yaw, pitch float64) Reading {
	w := math.WrapAngle(yaw)
	return Reading{
		Heading: -math.RadToDeg(w),
		Look: math.Vec2{
			X: float32(-gomath.Sin(w)),
			Y: float32(gomath.Cos(w)),
		},
		CursorX: w/(2*gomath.Pi) + 0.5,
		CursorY: math.Clamp(pitch/gomath.Pi+0.5, 0, 1),
	}
}
