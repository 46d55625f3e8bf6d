// Package app implements the viewer window and its frame loop.
package app

import (
	"fmt"
	"image"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/config"
	"github.com/Faultbox/panoview/internal/engine/camera"
	"github.com/Faultbox/panoview/internal/engine/debug"
	"github.com/Faultbox/panoview/internal/engine/input"
	"github.com/Faultbox/panoview/internal/engine/renderer"
	"github.com/Faultbox/panoview/internal/engine/texture"
	"github.com/Faultbox/panoview/internal/engine/window"
	"github.com/Faultbox/panoview/internal/logger"
	"github.com/Faultbox/panoview/internal/pano/indicator"
	"github.com/Faultbox/panoview/internal/viewer"
)

// App is one running viewer window.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.SphereCamera
	viewer   *viewer.Viewer
	watcher  *config.Watcher
	shots    *debug.Screenshots

	panorama string
	title    string
}

// New creates the window, renderer and controller for cfg.
func New(cfg *config.Config) (*App, error) {
	g := cfg.Graphics
	logger.Info("initializing viewer",
		zap.String("title", cfg.Viewer.Title),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Stringer("mode", cfg.Viewer.Mode),
	)

	a := &App{
		cfg:   cfg,
		shots: debug.NewScreenshots(cfg.Viewer.ScreenshotDir, "panoview"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Viewer.Title,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		VSync:      g.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist.
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadPanorama(cfg.Viewer.Panorama); err != nil {
		a.Close()
		return nil, err
	}

	w, h := a.window.Size()
	a.input = input.New(w, h)
	a.camera = camera.NewSphereCamera(float32(dw) / float32(max(dh, 1)))

	a.viewer = viewer.New(viewer.OptionsFromConfig(cfg))
	if err := a.viewer.Attach(a.input); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.viewer.Start(a.camera); err != nil {
		a.Close()
		return nil, err
	}

	if path := cfg.Source(); path != "" {
		a.watcher, err = config.Watch(path)
		if err != nil {
			// Hot reload is optional
			logger.Warn("config watch disabled", zap.String("path", path), zap.Error(err))
		}
	}

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives frames until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input; gestures go straight to the viewer
		if a.input.Update() {
			a.running = false
			break
		}
		capture := false
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.resize()
			case input.EventScreenshot:
				capture = true
			case input.EventSavePreferences:
				a.savePreferences()
			}
		}

		// 2. Pick up config edits
		a.reload()

		// 3. Advance the controller and write the camera
		if !a.viewer.Frame(dt) {
			return fmt.Errorf("frame skipped: scheduler stopped")
		}
		a.updateTitle()

		// 4. Render and present
		a.camera.Apply()
		a.renderer.Begin()
		a.renderer.Draw(a.camera)
		if capture {
			a.screenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("heading", a.viewer.Heading()),
				zap.Float64("fov", a.viewer.FOV()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

// Close tears down the controller first so nothing writes the camera
// while the window goes away.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.viewer != nil {
		a.viewer.Close()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing config watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) resize() {
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(dw, dh)
	a.camera.SetAspect(dw, dh)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.Capture(pixels, w, h, a.viewer.Heading())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", name))
}

// savePreferences stores the active mode with the loaded settings.
// Orientation is never saved.
func (a *App) savePreferences() {
	a.cfg.Viewer.Mode = a.viewer.Mode()
	path, err := a.cfg.Save()
	if err != nil {
		logger.Warn("saving preferences failed", zap.Error(err))
		return
	}
	logger.Info("preferences saved", zap.String("path", path))
}

func (a *App) reload() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Updates():
		a.viewer.Apply(viewer.OptionsFromConfig(cfg))
		if cfg.Viewer.Panorama != a.panorama {
			if err := a.loadPanorama(cfg.Viewer.Panorama); err != nil {
				logger.Warn("keeping previous panorama", zap.Error(err))
			}
		}
		a.cfg = cfg
		a.shots = debug.NewScreenshots(cfg.Viewer.ScreenshotDir, "panoview")
		logger.Info("config applied", zap.String("path", cfg.Source()))
	default:
	}
}

func (a *App) loadPanorama(path string) error {
	var img *image.RGBA
	if path == "" {
		logger.Info("no panorama given, showing grid")
		img = texture.Placeholder(2048, 1024)
	} else {
		var err error
		img, err = texture.Load(path, texture.MaxWidth)
		if err != nil {
			return err
		}
	}
	a.renderer.SetPanorama(img)
	a.panorama = path
	return nil
}

func (a *App) updateTitle() {
	title := Title(a.cfg.Viewer.Title, a.viewer.Reading(), a.viewer.Mode().String(), a.viewer.FOV())
	if title != a.title {
		a.window.SetTitle(title)
		a.title = title
	}
}

// Title formats the window title with a compass readout.
func Title(base string, r indicator.Reading, mode string, fov float64) string {
	heading := gomath.Round(r.Heading)
	if heading <= -180 {
		heading += 360
	}
	bearing := int(heading+360) % 360
	return fmt.Sprintf("%s  %s %03d°  %s  %.0f°", base, Cardinal(r.Heading), bearing, mode, fov)
}

var cardinals = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Cardinal returns the nearest of eight compass points for a heading in
// degrees. Positive headings turn clockwise from north.
func Cardinal(heading float64) string {
	i := int(gomath.Round(heading/45)) % 8
	if i < 0 {
		i += 8
	}
	return cardinals[i]
}
