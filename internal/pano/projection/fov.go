package projection

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// Field-of-view bounds in degrees that any display can render sensibly.
const (
	MinFOV = 30.0
	MaxFOV = 140.0
)

const nadir = -gomath.Pi / 2

// ComputeFOV returns the field of view in degrees for mode at zoom.
// A non-positive zoom is treated as the widest view.
func ComputeFOV(mode Mode, zoom float64) float64 {
	return ComputeFOVRange(mode, zoom, MinFOV, MaxFOV)
}

// ComputeFOVRange is ComputeFOV with caller-provided bounds.
func ComputeFOVRange(mode Mode, zoom, minFOV, maxFOV float64) float64 {
	if zoom <= 0 {
		return maxFOV
	}
	return math.Clamp(mode.BaseFOV()/zoom, minFOV, maxFOV)
}
