package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/panoview/internal/pano/projection"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMode       = flag.String("mode", "", "Initial view mode (normal, wide_angle, fisheye, inverted_planet)")
	flagPanorama   = flag.String("panorama", "", "Equirectangular image to show")
	flagAutoRotate = flag.Bool("auto-rotate", false, "Rotate the view while idle")
)

// ParseFlags parses command-line flags. Call this early in main().
// A positional argument is taken as the panorama path.
func ParseFlags() error {
	flag.Parse()
	if *flagPanorama == "" && flag.NArg() > 0 {
		*flagPanorama = flag.Arg(0)
	}
	if *flagMode != "" {
		if _, err := projection.ParseMode(*flagMode); err != nil {
			return fmt.Errorf("--mode: %w", err)
		}
	}
	return nil
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMode != "" {
		if m, err := projection.ParseMode(*flagMode); err == nil {
			cfg.Viewer.Mode = m
		}
	}
	if *flagPanorama != "" {
		cfg.Viewer.Panorama = *flagPanorama
	}
	if *flagAutoRotate {
		cfg.AutoRotate.Enabled = true
	}
}
