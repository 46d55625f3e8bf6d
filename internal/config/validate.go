package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/panoview/internal/pano/projection"
)

// Validate reports settings the viewer cannot run with. Values the core
// clamps on its own, like a pitch limit, are not checked here.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive",
			c.Graphics.Width, c.Graphics.Height))
	}

	ctl := c.Controls
	if ctl.DragSensitivity < 0 || ctl.TouchSensitivity < 0 || ctl.KeyStep < 0 {
		errs = append(errs, errors.New("controls: sensitivities must not be negative"))
	}
	if ctl.Smoothing <= 0 || ctl.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("controls: smoothing %v must be in (0, 1]", ctl.Smoothing))
	}
	if ctl.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("controls: zoom_step %v must be positive", ctl.ZoomStep))
	}
	if ctl.ZoomMin <= 0 || ctl.ZoomMin > ctl.ZoomMax {
		errs = append(errs, fmt.Errorf("controls: zoom range [%v, %v] is empty", ctl.ZoomMin, ctl.ZoomMax))
	}
	if ctl.FOVMin < projection.MinFOV || ctl.FOVMax > projection.MaxFOV || ctl.FOVMin > ctl.FOVMax {
		errs = append(errs, fmt.Errorf("controls: fov range [%v, %v] must lie within [%v, %v]",
			ctl.FOVMin, ctl.FOVMax, projection.MinFOV, projection.MaxFOV))
	}

	if c.AutoRotate.IdleDelay < 0 {
		errs = append(errs, errors.New("auto_rotate: idle_delay must not be negative"))
	}

	return errors.Join(errs...)
}
