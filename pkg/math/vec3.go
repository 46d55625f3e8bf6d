package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// SphereDirection returns the unit view direction for a yaw/pitch pair.
// Yaw 0 looks down -Z, positive yaw turns left, positive pitch looks up.
func SphereDirection(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: float32(-math.Sin(yaw) * cp),
		Y: float32(math.Sin(pitch)),
		Z: float32(-math.Cos(yaw) * cp),
	}
}
