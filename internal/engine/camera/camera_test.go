package camera

import (
	gomath "math"
	"testing"
)

func TestApplyComputesMatrices(t *testing.T) {
	c := NewSphereCamera(1)
	c.SetFieldOfView(90)
	c.Apply()

	p := c.ProjectionMatrix()
	if gomath.Abs(float64(p[5]-1)) > 1e-6 {
		t.Errorf("90° projection focal scale = %f, want 1", p[5])
	}

	v := c.ViewMatrix()
	if v[0] != 1 || v[5] != 1 || v[10] != 1 {
		t.Errorf("view at origin should be identity, got %v", v)
	}
}

func TestApplyOnlyWhenDirty(t *testing.T) {
	c := NewSphereCamera(16.0 / 9.0)
	c.Apply()
	before := c.ViewMatrix()

	c.SetYaw(0)
	c.Apply()
	if c.ViewMatrix() != before {
		t.Error("unchanged yaw should keep the view matrix")
	}

	c.SetYaw(gomath.Pi / 2)
	c.Apply()
	if c.ViewMatrix() == before {
		t.Error("changed yaw should update the view matrix")
	}
}

func TestForwardMatchesView(t *testing.T) {
	c := NewSphereCamera(1)
	c.SetYaw(0.8)
	c.SetPitch(-0.4)
	c.Apply()

	f := c.Forward()
	got := c.ViewMatrix().TransformDirection([3]float32{f.X, f.Y, f.Z})
	if gomath.Abs(float64(got[2]+1)) > 1e-5 {
		t.Errorf("forward should map to -Z in view space, got %v", got)
	}
}

func TestSetAspect(t *testing.T) {
	c := NewSphereCamera(1)
	c.SetAspect(1920, 1080)
	if gomath.Abs(float64(c.Aspect)-16.0/9.0) > 1e-6 {
		t.Errorf("aspect = %f, want 16/9", c.Aspect)
	}

	c.SetAspect(100, 0)
	if gomath.Abs(float64(c.Aspect)-16.0/9.0) > 1e-6 {
		t.Error("zero height should be ignored")
	}
}

func TestLargeYawKeepsPrecision(t *testing.T) {
	near := NewSphereCamera(1)
	near.SetYaw(0.3)
	near.Apply()

	far := NewSphereCamera(1)
	far.SetYaw(2*gomath.Pi*1e5 + 0.3)
	far.Apply()

	a, b := near.ViewMatrix(), far.ViewMatrix()
	for i := range a {
		if gomath.Abs(float64(a[i]-b[i])) > 1e-5 {
			t.Fatalf("view[%d] = %f after many turns, want %f", i, b[i], a[i])
		}
	}
}
