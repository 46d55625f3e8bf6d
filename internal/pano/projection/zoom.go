package projection

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// ZoomLimits bounds and steps the zoom level.
type ZoomLimits struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoomLimits returns the stock zoom range of 0.5x to 3x in 0.2 steps.
func DefaultZoomLimits() ZoomLimits {
	return ZoomLimits{Min: 0.5, Max: 3.0, Step: 0.2}
}

// Clamp limits z to the zoom range.
func (l ZoomLimits) Clamp(z float64) float64 {
	return math.Clamp(roundZoom(z), l.Min, l.Max)
}

// In returns the zoom level one step closer.
func (l ZoomLimits) In(z float64) float64 {
	return l.Clamp(z + l.Step)
}

// Out returns the zoom level one step wider.
func (l ZoomLimits) Out(z float64) float64 {
	return l.Clamp(z - l.Step)
}

// roundZoom drops the float error that repeated 0.2 steps accumulate so
// that stepping lands on the same levels in both directions.
func roundZoom(z float64) float64 {
	return gomath.Round(z*1e6) / 1e6
}
