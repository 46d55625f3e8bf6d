package gesture

import "github.com/Faultbox/panoview/internal/pano/projection"

// Kind says which device produced a gesture.
type Kind int

const (
	KindDrag Kind = iota + 1
	KindTouch
	KindWheel
	KindKey
	KindCommand
)

// Command is a discrete viewer command.
type Command int

const (
	CommandNone Command = iota
	CommandZoomIn
	CommandZoomOut
	CommandSetMode
	CommandReset
	CommandJumpTo
)

// Gesture is one normalized input. Angular gestures carry DYaw and DPitch in
// radians; command gestures carry Command and its argument.
type Gesture struct {
	Kind    Kind
	DYaw    float64
	DPitch  float64
	Command Command
	Mode    projection.Mode
	// JumpX and JumpY are the normalized [0,1] target of CommandJumpTo.
	JumpX, JumpY float64
}

// IsCommand reports whether the gesture is a discrete command.
func (g Gesture) IsCommand() bool {
	return g.Command != CommandNone
}

// ZoomIn returns a zoom-in command gesture.
func ZoomIn() Gesture { return Gesture{Kind: KindCommand, Command: CommandZoomIn} }

// ZoomOut returns a zoom-out command gesture.
func ZoomOut() Gesture { return Gesture{Kind: KindCommand, Command: CommandZoomOut} }

// Reset returns a reset command gesture.
func Reset() Gesture { return Gesture{Kind: KindCommand, Command: CommandReset} }

// SetMode returns a mode change command gesture.
func SetMode(m projection.Mode) Gesture {
	return Gesture{Kind: KindCommand, Command: CommandSetMode, Mode: m}
}

// JumpTo returns a command that looks at a normalized minimap position.
func JumpTo(x, y float64) Gesture {
	return Gesture{Kind: KindCommand, Command: CommandJumpTo, JumpX: x, JumpY: y}
}
