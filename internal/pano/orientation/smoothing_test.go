package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothingWeight(t *testing.T) {
	tests := []struct {
		name string
		sm   Smoothing
		dt   float64
		want float64
	}{
		{"fixed factor ignores dt", Smoothing{Factor: 0.2}, 0.5, 0.2},
		{"reference frame", Smoothing{Factor: 0.2, FrameRateIndependent: true}, 1.0 / ReferenceRate, 0.2},
		{"two reference frames", Smoothing{Factor: 0.2, FrameRateIndependent: true}, 2.0 / ReferenceRate, 0.36},
		{"zero dt", Smoothing{Factor: 0.2, FrameRateIndependent: true}, 0, 0.2},
		{"factor one", Smoothing{Factor: 1, FrameRateIndependent: true}, 0.001, 1},
		{"factor zero", Smoothing{Factor: 0}, 0.016, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.sm.Weight(tt.dt), 1e-9)
		})
	}
}

func TestSmoothingFrameRateIndependence(t *testing.T) {
	sm := Smoothing{Factor: 0.15, FrameRateIndependent: true}

	// One second at 30 Hz and at 144 Hz should land in the same place.
	slow := New()
	slow.SetTarget(1, 0)
	for i := 0; i < 30; i++ {
		slow.Tick(sm.Weight(1.0 / 30))
	}

	fast := New()
	fast.SetTarget(1, 0)
	for i := 0; i < 144; i++ {
		fast.Tick(sm.Weight(1.0 / 144))
	}

	slowYaw, _ := slow.Current()
	fastYaw, _ := fast.Current()
	assert.InDelta(t, slowYaw, fastYaw, 1e-9)
}
