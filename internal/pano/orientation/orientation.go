// Package orientation holds the current and target look direction of the
// panorama camera and eases the current direction toward the target.
package orientation

import (
	gomath "math"

	"github.com/Faultbox/panoview/pkg/math"
)

// Pitch limits in radians. Straight down and straight up.
const (
	MinPitch = -gomath.Pi / 2
	MaxPitch = gomath.Pi / 2
)

// State is the orientation of the viewer. All angles are in radians.
//
// Pitch is kept within [MinPitch, MaxPitch] for both current and target.
// Yaw is unbounded so that smoothing across the ±π seam never takes the long
// way round; use DisplayYaw for anything shown to the user.
type State struct {
	currentYaw, currentPitch float64
	targetYaw, targetPitch   float64
}

// New returns a state looking at yaw 0, pitch 0.
func New() *State {
	return &State{}
}

// Current returns the smoothed orientation the camera is showing.
func (s *State) Current() (yaw, pitch float64) {
	return s.currentYaw, s.currentPitch
}

// Target returns the orientation the camera is easing toward.
func (s *State) Target() (yaw, pitch float64) {
	return s.targetYaw, s.targetPitch
}

// DisplayYaw returns the current yaw wrapped into [-π, π].
func (s *State) DisplayYaw() float64 {
	return math.WrapAngle(s.currentYaw)
}

// ApplyDelta moves the target by a relative amount. Pitch saturates at the
// poles instead of wrapping over them.
func (s *State) ApplyDelta(dYaw, dPitch float64) {
	s.targetYaw += dYaw
	s.targetPitch = clampPitch(s.targetPitch + dPitch)
}

// SetTarget replaces the target outright. The current yaw is moved by whole
// turns to within π of the new target, which leaves the view unchanged but
// keeps easing from spinning through extra revolutions.
func (s *State) SetTarget(yaw, pitch float64) {
	s.targetYaw = yaw
	s.targetPitch = clampPitch(pitch)
	s.currentYaw = nearestTurn(s.currentYaw, yaw)
}

// Tick eases current toward target by weight, a fraction in (0, 1].
// Weights outside [0, 1] are clamped so the filter can never overshoot.
func (s *State) Tick(weight float64) {
	*s = Step(*s, weight)
}

// Step is the pure form of Tick.
func Step(s State, weight float64) State {
	w := math.Clamp(weight, 0, 1)
	s.currentYaw += (s.targetYaw - s.currentYaw) * w
	s.currentPitch += (s.targetPitch - s.currentPitch) * w
	return s
}

// Reset puts both current and target back at the origin.
func (s *State) Reset() {
	*s = State{}
}

// ForcePitch sets current and target pitch together so the camera jumps
// straight to the new angle without easing.
func (s *State) ForcePitch(pitch float64) {
	p := clampPitch(pitch)
	s.currentPitch = p
	s.targetPitch = p
}

// nearestTurn returns yaw shifted by a multiple of 2π so it lies within π
// of ref.
func nearestTurn(yaw, ref float64) float64 {
	turns := gomath.Round((ref - yaw) / (2 * gomath.Pi))
	if turns == 0 || gomath.IsNaN(turns) || gomath.IsInf(turns, 0) {
		return yaw
	}
	return yaw + turns*2*gomath.Pi
}

func clampPitch(p float64) float64 {
	if gomath.IsNaN(p) {
		return 0
	}
	return math.Clamp(p, MinPitch, MaxPitch)
}
