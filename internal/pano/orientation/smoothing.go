package orientation

import gomath "math"

// ReferenceRate is the frame rate at which a time-scaled smoothing weight
// equals the configured factor.
const ReferenceRate = 60.0

// Smoothing turns a configured factor into a per-frame weight for Tick.
type Smoothing struct {
	// Factor is the weight applied per frame at ReferenceRate, in (0, 1].
	Factor float64

	// FrameRateIndependent scales the weight by the frame time so the
	// wall-clock convergence speed does not depend on the refresh rate.
	FrameRateIndependent bool
}

// DefaultSmoothing matches the feel of the web viewer at 60 Hz.
func DefaultSmoothing() Smoothing {
	return Smoothing{Factor: 0.1, FrameRateIndependent: true}
}

// Weight returns the interpolation weight to use for a frame lasting dt
// seconds. Without frame-rate independence, or for a non-positive dt, it is
// the factor unchanged.
func (sm Smoothing) Weight(dt float64) float64 {
	f := sm.Factor
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	if !sm.FrameRateIndependent || dt <= 0 {
		return f
	}
	// Equal to f when dt == 1/ReferenceRate.
	return 1 - gomath.Pow(1-f, dt*ReferenceRate)
}
