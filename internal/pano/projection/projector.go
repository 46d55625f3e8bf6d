package projection

import (
	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/logger"
)

// PitchForcer is the part of the orientation state a mode change may touch.
type PitchForcer interface {
	ForcePitch(pitch float64)
}

// Projector owns the active mode and zoom level and tracks whether the
// field of view needs to be pushed to the camera again.
type Projector struct {
	mode   Mode
	zoom   float64
	limits ZoomLimits
	minFOV float64
	maxFOV float64

	orientation PitchForcer
	dirty       bool
}

// NewProjector creates a projector in Normal mode at zoom 1. The returned
// projector reports a pending field of view so the first frame applies it.
func NewProjector(orientation PitchForcer, limits ZoomLimits) *Projector {
	return &Projector{
		mode:        Normal,
		zoom:        limits.Clamp(1),
		limits:      limits,
		minFOV:      MinFOV,
		maxFOV:      MaxFOV,
		orientation: orientation,
		dirty:       true,
	}
}

// Mode returns the active view mode.
func (p *Projector) Mode() Mode {
	return p.mode
}

// Zoom returns the active zoom level.
func (p *Projector) Zoom() float64 {
	return p.zoom
}

// FOV returns the field of view for the current mode and zoom.
func (p *Projector) FOV() float64 {
	return ComputeFOVRange(p.mode, p.zoom, p.minFOV, p.maxFOV)
}

// SetFOVRange narrows or widens the field of view clamp. Bounds outside the
// hardware range are pulled back into it.
func (p *Projector) SetFOVRange(minFOV, maxFOV float64) {
	if minFOV < MinFOV || minFOV > MaxFOV {
		minFOV = MinFOV
	}
	if maxFOV > MaxFOV || maxFOV < minFOV {
		maxFOV = MaxFOV
	}
	p.minFOV, p.maxFOV = minFOV, maxFOV
	p.dirty = true
}

// SetLimits replaces the zoom limits and re-clamps the current zoom.
func (p *Projector) SetLimits(limits ZoomLimits) {
	p.limits = limits
	p.setZoom(limits.Clamp(p.zoom))
}

// SetMode switches the view mode. Entering InvertedPlanet pins the camera to
// the nadir; going from InvertedPlanet back to Normal levels it out again.
func (p *Projector) SetMode(mode Mode) {
	prev := p.mode
	if prev == mode {
		return
	}
	p.mode = mode
	p.dirty = true

	if pitch, ok := mode.ForcedPitch(); ok {
		p.orientation.ForcePitch(pitch)
	} else if prev == InvertedPlanet && mode == Normal {
		p.orientation.ForcePitch(0)
	}

	logger.Debug("view mode changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", mode),
		zap.Float64("fov", p.FOV()),
	)
}

// ZoomIn steps the zoom level in, saturating at the maximum.
func (p *Projector) ZoomIn() {
	p.setZoom(p.limits.In(p.zoom))
}

// ZoomOut steps the zoom level out, saturating at the minimum.
func (p *Projector) ZoomOut() {
	p.setZoom(p.limits.Out(p.zoom))
}

func (p *Projector) setZoom(z float64) {
	if z == p.zoom {
		return
	}
	p.zoom = z
	p.dirty = true
	logger.Debug("zoom changed", zap.Float64("zoom", z), zap.Float64("fov", p.FOV()))
}

// Pending reports whether the field of view changed since the last Sync.
func (p *Projector) Pending() bool {
	return p.dirty
}

// Sync returns the field of view and whether it changed since the previous
// call, clearing the pending flag.
func (p *Projector) Sync() (fov float64, changed bool) {
	changed = p.dirty
	p.dirty = false
	return p.FOV(), changed
}

// Invalidate marks the field of view as pending so the next Sync reports
// it, e.g. after a new camera has been attached.
func (p *Projector) Invalidate() {
	p.dirty = true
}
