package math

import (
	"math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("Vec2{}.Normalize() should be the zero vector")
	}
}

func TestSphereDirection(t *testing.T) {
	d := SphereDirection(0, 0)
	if d != (Vec3{0, 0, -1}) {
		t.Errorf("SphereDirection(0, 0) = %v, want (0, 0, -1)", d)
	}

	d = SphereDirection(0, math.Pi/2)
	if math.Abs(float64(d.Y-1)) > 1e-6 {
		t.Errorf("SphereDirection(0, pi/2).Y = %v, want 1", d.Y)
	}

	l := SphereDirection(2.1, -0.4).Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("SphereDirection length = %v, want ~1", l)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 0.25, 0.25},
	}

	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp should saturate at both bounds")
	}
}
