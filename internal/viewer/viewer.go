// Package viewer wires the panorama controller together: input goes in,
// orientation and field of view come out on the attached camera every frame.
package viewer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/logger"
	"github.com/Faultbox/panoview/internal/pano/gesture"
	"github.com/Faultbox/panoview/internal/pano/indicator"
	"github.com/Faultbox/panoview/internal/pano/orientation"
	"github.com/Faultbox/panoview/internal/pano/projection"
	"github.com/Faultbox/panoview/internal/pano/scheduler"
	"github.com/Faultbox/panoview/pkg/math"
)

// ErrNoInputSource is returned by Attach when given a nil source.
var ErrNoInputSource = errors.New("viewer: no input source")

// InputSource delivers raw input events to a handler until detached.
type InputSource interface {
	Listen(handler func(gesture.Event)) (detach func(), err error)
}

// Viewer is the orientation and projection controller of one viewing
// session. All methods must be called from the thread that drives frames.
type Viewer struct {
	state      *orientation.State
	normalizer *gesture.Normalizer
	projector  *projection.Projector
	feed       *indicator.Feed
	sched      *scheduler.Scheduler

	detach func()
}

// New creates a viewer looking at the origin in opts.Mode.
func New(opts Options) *Viewer {
	state := orientation.New()
	projector := projection.NewProjector(state, opts.Zoom)
	projector.SetFOVRange(opts.FOVMin, opts.FOVMax)
	feed := indicator.NewFeed(state)
	normalizer := gesture.NewNormalizer(opts.Sensitivity)

	sched := scheduler.New(state, projector, feed, opts.Scheduler)
	sched.SetActivity(normalizer)

	v := &Viewer{
		state:      state,
		normalizer: normalizer,
		projector:  projector,
		feed:       feed,
		sched:      sched,
	}
	projector.SetMode(opts.Mode)
	return v
}

// Apply swaps in new tunables without touching orientation, mode or zoom
// beyond re-clamping zoom into the new limits.
func (v *Viewer) Apply(opts Options) {
	v.normalizer.SetSensitivity(opts.Sensitivity)
	v.projector.SetLimits(opts.Zoom)
	v.projector.SetFOVRange(opts.FOVMin, opts.FOVMax)
	v.sched.SetConfig(opts.Scheduler)
}

// Attach starts receiving events from src, replacing any previous source.
func (v *Viewer) Attach(src InputSource) error {
	if src == nil {
		return ErrNoInputSource
	}
	v.Detach()

	detach, err := src.Listen(v.HandleEvent)
	if err != nil {
		return fmt.Errorf("attaching input: %w", err)
	}
	v.detach = detach
	logger.Debug("input attached")
	return nil
}

// Detach stops receiving input and drops any gesture in progress.
func (v *Viewer) Detach() {
	if v.detach == nil {
		return
	}
	v.detach()
	v.detach = nil
	v.normalizer.Cancel()
	logger.Debug("input detached")
}

// Start attaches cam and starts the frame scheduler.
func (v *Viewer) Start(cam scheduler.Camera) error {
	if cam == nil {
		return scheduler.ErrNoCamera
	}
	v.sched.Attach(cam)
	if err := v.sched.Start(); err != nil {
		return fmt.Errorf("starting viewer: %w", err)
	}
	logger.Info("viewer started",
		zap.Stringer("mode", v.projector.Mode()),
		zap.Float64("fov", v.projector.FOV()),
	)
	return nil
}

// Scheduler exposes the frame scheduler, e.g. to drive it with Run.
func (v *Viewer) Scheduler() *scheduler.Scheduler {
	return v.sched
}

// Frame applies one frame of dt seconds. It returns false after Close.
func (v *Viewer) Frame(dt float64) bool {
	return v.sched.Frame(dt)
}

// Close stops the scheduler and detaches input. After Close returns the
// camera is never written again.
func (v *Viewer) Close() {
	v.sched.Stop()
	v.Detach()
	v.normalizer.Cancel()
}

// HandleEvent feeds one raw input event through the normalizer.
func (v *Viewer) HandleEvent(ev gesture.Event) {
	v.sched.NotifyInput()
	if g, ok := v.normalizer.Handle(ev); ok {
		v.Dispatch(g)
	}
}

// Dispatch applies a normalized gesture.
func (v *Viewer) Dispatch(g gesture.Gesture) {
	switch g.Command {
	case gesture.CommandNone:
		v.state.ApplyDelta(g.DYaw, g.DPitch)
	case gesture.CommandZoomIn:
		v.ZoomIn()
	case gesture.CommandZoomOut:
		v.ZoomOut()
	case gesture.CommandSetMode:
		v.SetMode(g.Mode)
	case gesture.CommandReset:
		v.Reset()
	case gesture.CommandJumpTo:
		v.JumpTo(g.JumpX, g.JumpY)
	}
}

// SetMode switches the view mode.
func (v *Viewer) SetMode(mode projection.Mode) {
	v.projector.SetMode(mode)
}

// ZoomIn narrows the field of view by one step.
func (v *Viewer) ZoomIn() {
	v.projector.ZoomIn()
}

// ZoomOut widens the field of view by one step.
func (v *Viewer) ZoomOut() {
	v.projector.ZoomOut()
}

// Reset looks back at the origin immediately.
func (v *Viewer) Reset() {
	v.state.Reset()
	v.feed.Publish()
	logger.Debug("view reset")
}

// JumpTo eases the view toward a normalized minimap position.
func (v *Viewer) JumpTo(x, y float64) {
	v.feed.JumpTo(x, y)
}

// Heading returns the compass heading of the last frame in degrees.
func (v *Viewer) Heading() float64 {
	return v.feed.Heading()
}

// LookVector returns the minimap look direction of the last frame.
func (v *Viewer) LookVector() math.Vec2 {
	return v.feed.LookVector()
}

// Reading returns every indicator value of the last frame.
func (v *Viewer) Reading() indicator.Reading {
	return v.feed.Reading()
}

// Orientation returns the current yaw and pitch in radians.
func (v *Viewer) Orientation() (yaw, pitch float64) {
	return v.state.Current()
}

// Target returns the target yaw and pitch in radians.
func (v *Viewer) Target() (yaw, pitch float64) {
	return v.state.Target()
}

// Mode returns the active view mode.
func (v *Viewer) Mode() projection.Mode {
	return v.projector.Mode()
}

// Zoom returns the active zoom level.
func (v *Viewer) Zoom() float64 {
	return v.projector.Zoom()
}

// FOV returns the field of view for the active mode and zoom in degrees.
func (v *Viewer) FOV() float64 {
	return v.projector.FOV()
}

// Dragging reports whether a drag or touch gesture is live.
func (v *Viewer) Dragging() bool {
	return v.normalizer.Active()
}
