package viewer

import (
	"github.com/Faultbox/panoview/internal/config"
	"github.com/Faultbox/panoview/internal/pano/gesture"
	"github.com/Faultbox/panoview/internal/pano/orientation"
	"github.com/Faultbox/panoview/internal/pano/projection"
	"github.com/Faultbox/panoview/internal/pano/scheduler"
)

// Options configures a Viewer.
type Options struct {
	Sensitivity gesture.Sensitivity
	Zoom        projection.ZoomLimits
	FOVMin      float64 // degrees
	FOVMax      float64 // degrees
	Scheduler   scheduler.Config
	Mode        projection.Mode
}

// DefaultOptions returns the stock viewer behaviour.
func DefaultOptions() Options {
	return Options{
		Sensitivity: gesture.DefaultSensitivity(),
		Zoom:        projection.DefaultZoomLimits(),
		FOVMin:      projection.MinFOV,
		FOVMax:      projection.MaxFOV,
		Scheduler:   scheduler.DefaultConfig(),
		Mode:        projection.Normal,
	}
}

// OptionsFromConfig maps the loaded config onto viewer options.
func OptionsFromConfig(cfg *config.Config) Options {
	ctl := cfg.Controls
	return Options{
		Sensitivity: gesture.Sensitivity{
			Drag:    ctl.DragSensitivity,
			Touch:   ctl.TouchSensitivity,
			KeyStep: ctl.KeyStep,
		},
		Zoom: projection.ZoomLimits{
			Min:  ctl.ZoomMin,
			Max:  ctl.ZoomMax,
			Step: ctl.ZoomStep,
		},
		FOVMin: ctl.FOVMin,
		FOVMax: ctl.FOVMax,
		Scheduler: scheduler.Config{
			Smoothing: orientation.Smoothing{
				Factor:               ctl.Smoothing,
				FrameRateIndependent: ctl.FrameRateIndependent,
			},
			AutoRotate: scheduler.AutoRotate{
				Enabled:   cfg.AutoRotate.Enabled,
				Speed:     cfg.AutoRotate.Speed,
				IdleDelay: cfg.AutoRotate.IdleDelay,
			},
		},
		Mode: cfg.Viewer.Mode,
	}
}
