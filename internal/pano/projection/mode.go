// Package projection maps a view mode and zoom level to the camera's field
// of view, and applies the orientation overrides some modes require.
package projection

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode is a named projection configuration.
type Mode int

const (
	Normal Mode = iota
	WideAngle
	Fisheye
	InvertedPlanet
)

// Modes lists every mode in menu order.
var Modes = []Mode{Normal, WideAngle, Fisheye, InvertedPlanet}

var modeNames = map[Mode]string{
	Normal:         "normal",
	WideAngle:      "wide_angle",
	Fisheye:        "fisheye",
	InvertedPlanet: "inverted_planet",
}

// String returns the config name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a config name such as "fisheye" or "little-planet".
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	switch n {
	case "", "normal":
		return Normal, nil
	case "wide_angle", "wide", "wideangle":
		return WideAngle, nil
	case "fisheye", "fish_eye":
		return Fisheye, nil
	case "inverted_planet", "little_planet", "planet", "inverted":
		return InvertedPlanet, nil
	}
	return Normal, fmt.Errorf("unknown view mode %q", name)
}

// BaseFOV returns the vertical field of view in degrees at zoom 1.
func (m Mode) BaseFOV() float64 {
	switch m {
	case WideAngle:
		return 120
	case Fisheye:
		return 110
	case InvertedPlanet:
		return 140
	default:
		return 75
	}
}

// ForcedPitch reports the pitch the mode pins the camera to on entry.
func (m Mode) ForcedPitch() (pitch float64, ok bool) {
	if m == InvertedPlanet {
		return nadir, true
	}
	return 0, false
}

// UnmarshalYAML lets config files name modes instead of numbering them.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML writes the mode by name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
