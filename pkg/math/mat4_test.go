package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateY(0.7)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 0.1, 100)

	// tan(45deg) = 1, so the focal scale should be 1 on both axes
	if math.Abs(float64(m[0]-1)) > 1e-6 || math.Abs(float64(m[5]-1)) > 1e-6 {
		t.Errorf("Perspective focal scale: got (%f, %f), want (1, 1)", m[0], m[5])
	}
	if m[11] != -1 {
		t.Errorf("Perspective w row: got %f, want -1", m[11])
	}
}

func TestViewRotationForward(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
	}{
		{"origin", 0, 0},
		{"quarter turn", math.Pi / 2, 0},
		{"looking up", 0.3, 0.9},
		{"nadir", -1.2, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ViewRotation(float32(tt.yaw), float32(tt.pitch))
			dir := SphereDirection(tt.yaw, tt.pitch)

			// The view direction must land on the camera's -Z axis
			got := view.TransformDirection([3]float32{dir.X, dir.Y, dir.Z})
			if math.Abs(float64(got[0])) > 1e-5 || math.Abs(float64(got[1])) > 1e-5 ||
				math.Abs(float64(got[2]+1)) > 1e-5 {
				t.Errorf("ViewRotation maps forward to %v, want (0, 0, -1)", got)
			}
		})
	}
}
