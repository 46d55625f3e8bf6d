package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakePitch struct {
	calls []float64
}

func (f *fakePitch) ForcePitch(p float64) {
	f.calls = append(f.calls, p)
}

func TestComputeFOVTable(t *testing.T) {
	tests := []struct {
		mode Mode
		want float64
	}{
		{Normal, 75},
		{WideAngle, 120},
		{Fisheye, 110},
		{InvertedPlanet, 140},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFOV(tt.mode, 1))
		})
	}
}

func TestComputeFOVClamps(t *testing.T) {
	// 75 / 3 = 25 is narrower than the hardware minimum.
	assert.Equal(t, MinFOV, ComputeFOV(Normal, 3))
	// 140 / 0.5 = 280 is wider than the maximum.
	assert.Equal(t, MaxFOV, ComputeFOV(InvertedPlanet, 0.5))
	assert.InDelta(t, 62.5, ComputeFOV(Normal, 1.2), 1e-9)
	assert.Equal(t, MaxFOV, ComputeFOV(Normal, 0))
}

func TestZoomOutSaturates(t *testing.T) {
	p := NewProjector(&fakePitch{}, DefaultZoomLimits())
	for i := 0; i < 20; i++ {
		p.ZoomOut()
	}
	assert.Equal(t, 0.5, p.Zoom())
}

func TestZoomInSaturates(t *testing.T) {
	p := NewProjector(&fakePitch{}, DefaultZoomLimits())
	for i := 0; i < 20; i++ {
		p.ZoomIn()
	}
	assert.Equal(t, 3.0, p.Zoom())
}

func TestZoomStepsRoundTrip(t *testing.T) {
	p := NewProjector(&fakePitch{}, DefaultZoomLimits())
	for i := 0; i < 4; i++ {
		p.ZoomIn()
	}
	assert.Equal(t, 1.8, p.Zoom())
	for i := 0; i < 4; i++ {
		p.ZoomOut()
	}
	assert.Equal(t, 1.0, p.Zoom())
}

func TestSetModeForcesPitch(t *testing.T) {
	f := &fakePitch{}
	p := NewProjector(f, DefaultZoomLimits())

	p.SetMode(InvertedPlanet)
	require.Len(t, f.calls, 1)
	assert.Equal(t, -math.Pi/2, f.calls[0])

	p.SetMode(Normal)
	require.Len(t, f.calls, 2)
	assert.Equal(t, 0.0, f.calls[1])
}

func TestSetModeLeavesOrientationAlone(t *testing.T) {
	f := &fakePitch{}
	p := NewProjector(f, DefaultZoomLimits())

	p.SetMode(WideAngle)
	p.SetMode(Fisheye)
	p.SetMode(Normal)
	assert.Empty(t, f.calls)

	// Leaving the planet for anything but Normal keeps the nadir.
	p.SetMode(InvertedPlanet)
	p.SetMode(Fisheye)
	assert.Equal(t, []float64{-math.Pi / 2}, f.calls)
}

func TestSyncMemoizes(t *testing.T) {
	p := NewProjector(&fakePitch{}, DefaultZoomLimits())

	fov, changed := p.Sync()
	assert.True(t, changed, "first sync must push the initial fov")
	assert.Equal(t, 75.0, fov)

	_, changed = p.Sync()
	assert.False(t, changed)

	p.SetMode(Normal)
	_, changed = p.Sync()
	assert.False(t, changed, "re-selecting the active mode is a no-op")

	p.ZoomIn()
	fov, changed = p.Sync()
	assert.True(t, changed)
	assert.InDelta(t, 62.5, fov, 1e-9)

	for i := 0; i < 20; i++ {
		p.ZoomOut()
	}
	p.Sync()
	p.ZoomOut()
	_, changed = p.Sync()
	assert.False(t, changed, "zooming past the limit changes nothing")
}

func TestSetFOVRange(t *testing.T) {
	p := NewProjector(&fakePitch{}, DefaultZoomLimits())
	p.SetFOVRange(50, 100)
	p.SetMode(WideAngle)
	assert.Equal(t, 100.0, p.FOV())

	p.SetFOVRange(10, 500)
	assert.Equal(t, 120.0, p.FOV())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"normal", Normal},
		{"Wide-Angle", WideAngle},
		{"fisheye", Fisheye},
		{"little planet", InvertedPlanet},
		{"", Normal},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMode("cubemap")
	assert.Error(t, err)
}

func TestModeYAML(t *testing.T) {
	var v struct {
		Mode Mode `yaml:"mode"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("mode: fisheye\n"), &v))
	assert.Equal(t, Fisheye, v.Mode)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "mode: fisheye\n", string(out))
}
