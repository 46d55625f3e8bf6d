// Package camera provides the render camera the panorama controller drives.
package camera

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// SphereCamera sits at the centre of the panorama sphere and only rotates.
//
// The controller writes yaw, pitch and field of view at any time; the
// renderer calls Apply once before drawing to turn them into matrices.
type SphereCamera struct {
	yaw   float64 // radians
	pitch float64 // radians
	fov   float64 // vertical, degrees

	// Projection
	Aspect float32
	Near   float32
	Far    float32

	view       math.Mat4
	projection math.Mat4
	dirty      bool
}

// NewSphereCamera creates a camera looking down -Z with a 75° field of view.
func NewSphereCamera(aspect float32) *SphereCamera {
	return &SphereCamera{
		fov:    75,
		Aspect: aspect,
		Near:   0.1,
		Far:    10,
		dirty:  true,
	}
}

// Yaw returns the horizontal angle in radians.
func (c *SphereCamera) Yaw() float64 { return c.yaw }

// SetYaw sets the horizontal angle in radians.
func (c *SphereCamera) SetYaw(yaw float64) {
	if yaw != c.yaw {
		c.yaw = yaw
		c.dirty = true
	}
}

// Pitch returns the vertical angle in radians.
func (c *SphereCamera) Pitch() float64 { return c.pitch }

// SetPitch sets the vertical angle in radians.
func (c *SphereCamera) SetPitch(pitch float64) {
	if pitch != c.pitch {
		c.pitch = pitch
		c.dirty = true
	}
}

// FieldOfView returns the vertical field of view in degrees.
func (c *SphereCamera) FieldOfView() float64 { return c.fov }

// SetFieldOfView sets the vertical field of view in degrees.
func (c *SphereCamera) SetFieldOfView(fov float64) {
	if fov != c.fov {
		c.fov = fov
		c.dirty = true
	}
}

// SetAspect updates the aspect ratio after a resize.
func (c *SphereCamera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.dirty = true
}

// Apply recomputes the view and projection matrices if anything changed.
func (c *SphereCamera) Apply() {
	if !c.dirty {
		return
	}
	// Yaw grows without bound; wrap before float32 loses the fraction.
	c.view = math.ViewRotation(float32(math.WrapAngle(c.yaw)), float32(c.pitch))
	fovY := float32(c.fov * gomath.Pi / 180)
	c.projection = math.Perspective(fovY, c.Aspect, c.Near, c.Far)
	c.dirty = false
}

// ViewMatrix returns the view matrix computed by the last Apply.
func (c *SphereCamera) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix computed by the last Apply.
func (c *SphereCamera) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// Forward returns the unit view direction.
func (c *SphereCamera) Forward() math.Vec3 {
	return math.SphereDirection(c.yaw, c.pitch)
}
