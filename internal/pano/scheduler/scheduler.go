// Package scheduler runs the per-frame update that eases the orientation,
// writes it to the camera and republishes indicator readings.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/logger"
	"github.com/Faultbox/panoview/internal/pano/indicator"
	"github.com/Faultbox/panoview/internal/pano/orientation"
	"github.com/Faultbox/panoview/internal/pano/projection"
)

var (
	// ErrNoCamera is returned by Start when no camera handle is attached.
	ErrNoCamera = errors.New("scheduler: no camera attached")

	// ErrAlreadyRunning is returned by Start on a running scheduler.
	ErrAlreadyRunning = errors.New("scheduler: already running")
)

// Camera is the render camera the scheduler drives. Angles are in radians,
// the field of view in degrees.
type Camera interface {
	Yaw() float64
	SetYaw(yaw float64)
	Pitch() float64
	SetPitch(pitch float64)
	FieldOfView() float64
	SetFieldOfView(fov float64)
}

// Activity reports whether the user is in the middle of a gesture.
type Activity interface {
	Active() bool
}

// AutoRotate slowly turns the view while the user is idle.
type AutoRotate struct {
	Enabled   bool
	Speed     float64 // radians per second
	IdleDelay time.Duration
}

// Config holds the tunables of the frame update.
type Config struct {
	Smoothing  orientation.Smoothing
	AutoRotate AutoRotate
}

// DefaultConfig returns smoothing at the stock factor and auto-rotation off.
func DefaultConfig() Config {
	return Config{
		Smoothing: orientation.DefaultSmoothing(),
		AutoRotate: AutoRotate{
			Speed:     0.1,
			IdleDelay: 3 * time.Second,
		},
	}
}

// Scheduler owns the frame update. Frames are driven either by the host's
// draw loop calling Frame, or by Run reading a clock channel.
type Scheduler struct {
	mu sync.Mutex

	state     *orientation.State
	projector *projection.Projector
	feed      *indicator.Feed
	camera    Camera
	activity  Activity
	cfg       Config

	running bool
	stop    chan struct{}
	idle    float64 // seconds since the last user input
	frames  uint64
}

// New creates a stopped scheduler.
func New(state *orientation.State, projector *projection.Projector, feed *indicator.Feed, cfg Config) *Scheduler {
	return &Scheduler{
		state:     state,
		projector: projector,
		feed:      feed,
		cfg:       cfg,
	}
}

// Attach sets the camera handle. A nil camera detaches it and stops a
// running scheduler; Start then fails until a camera is attached again.
func (s *Scheduler) Attach(cam Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = cam
	s.projector.Invalidate()
	if cam == nil {
		s.stopLocked()
	}
}

// SetActivity sets the gesture tracker consulted by auto-rotation.
func (s *Scheduler) SetActivity(a Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = a
}

// SetConfig replaces the tunables. It takes effect on the next frame.
func (s *Scheduler) SetConfig(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// NotifyInput restarts the idle timer that gates auto-rotation.
func (s *Scheduler) NotifyInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idle = 0
}

// Start arms the scheduler. It fails without a camera so that no frame ever
// runs against a missing render target.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.camera == nil {
		return ErrNoCamera
	}
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	s.stop = make(chan struct{})
	s.idle = 0
	s.projector.Invalidate()

	logger.Debug("frame scheduler started")
	return nil
}

// Stop disarms the scheduler. Once Stop returns no further camera writes
// happen, and a Run loop in progress returns. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)

	logger.Debug("frame scheduler stopped", zap.Uint64("frames", s.frames))
}

// Running reports whether frames are being applied.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Frames returns the number of frames applied so far.
func (s *Scheduler) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Frame applies one frame lasting dt seconds. It returns false, and touches
// nothing, when the scheduler is stopped.
func (s *Scheduler) Frame(dt float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.camera == nil {
		return false
	}

	// 1. Idle auto-rotation feeds the target like any other input
	s.autoRotate(dt)

	// 2. Ease current toward target
	s.state.Tick(s.cfg.Smoothing.Weight(dt))

	// 3. Push orientation to the camera
	yaw, pitch := s.state.Current()
	s.camera.SetYaw(yaw)
	s.camera.SetPitch(pitch)

	// 4. Field of view only when mode or zoom moved
	if fov, changed := s.projector.Sync(); changed {
		s.camera.SetFieldOfView(fov)
	}

	// 5. Indicators
	s.feed.Publish()

	s.frames++
	return true
}

func (s *Scheduler) autoRotate(dt float64) {
	ar := s.cfg.AutoRotate
	if !ar.Enabled || dt <= 0 {
		return
	}
	if s.activity != nil && s.activity.Active() {
		s.idle = 0
		return
	}
	s.idle += dt
	if s.idle < ar.IdleDelay.Seconds() {
		return
	}
	s.state.ApplyDelta(ar.Speed*dt, 0)
}

// Run starts the scheduler and applies a frame for every tick received on
// clock until ctx is cancelled, Stop is called or clock is closed. The
// first tick only sets the time base.
func (s *Scheduler) Run(ctx context.Context, clock <-chan time.Time) error {
	if err := s.Start(); err != nil {
		return err
	}
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()

		case <-stop:
			return nil

		case now, ok := <-clock:
			if !ok {
				s.Stop()
				return nil
			}
			var dt float64
			if !last.IsZero() {
				dt = now.Sub(last).Seconds()
			}
			last = now
			if !s.Frame(dt) {
				return nil
			}
		}
	}
}
