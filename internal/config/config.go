// Package config handles viewer configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/panoview/internal/pano/projection"
)

// Config holds all viewer settings. Orientation is never stored here; every
// session starts looking at the origin.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Controls   ControlsConfig   `yaml:"controls"`
	AutoRotate AutoRotateConfig `yaml:"auto_rotate"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Logging    LoggingConfig    `yaml:"logging"`

	source string
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ControlsConfig holds input sensitivity, smoothing and zoom settings.
type ControlsConfig struct {
	DragSensitivity      float64 `yaml:"drag_sensitivity"`  // radians per pixel
	TouchSensitivity     float64 `yaml:"touch_sensitivity"` // radians per pixel
	KeyStep              float64 `yaml:"key_step"`          // radians per key press
	Smoothing            float64 `yaml:"smoothing"`
	FrameRateIndependent bool    `yaml:"frame_rate_independent"`
	ZoomStep             float64 `yaml:"zoom_step"`
	ZoomMin              float64 `yaml:"zoom_min"`
	ZoomMax              float64 `yaml:"zoom_max"`
	FOVMin               float64 `yaml:"fov_min"` // degrees
	FOVMax               float64 `yaml:"fov_max"` // degrees
}

// AutoRotateConfig holds idle auto-rotation settings.
type AutoRotateConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Speed     float64       `yaml:"speed"` // radians per second
	IdleDelay time.Duration `yaml:"idle_delay"`
}

// ViewerConfig holds what the viewer shows on startup.
type ViewerConfig struct {
	Title         string          `yaml:"title"`
	Mode          projection.Mode `yaml:"mode"`
	Panorama      string          `yaml:"panorama"`       // equirectangular image path
	ScreenshotDir string          `yaml:"screenshot_dir"` // F12 captures; empty means the working directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Controls: ControlsConfig{
			DragSensitivity:      0.005,
			TouchSensitivity:     0.008,
			KeyStep:              0.05,
			Smoothing:            0.1,
			FrameRateIndependent: true,
			ZoomStep:             0.2,
			ZoomMin:              0.5,
			ZoomMax:              3.0,
			FOVMin:               projection.MinFOV,
			FOVMax:               projection.MaxFOV,
		},
		AutoRotate: AutoRotateConfig{
			Enabled:   false,
			Speed:     0.1,
			IdleDelay: 3 * time.Second,
		},
		Viewer: ViewerConfig{
			Title:         "panoview",
			Mode:          projection.Normal,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Source returns the file the config was loaded from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}
