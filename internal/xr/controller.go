package xr

import rl "github.com/gen2brain/raylib-go/raylib"

// Controller is a read-only handle on one tracked input device.
//
// IsPressed reports the current state of a button. The second return value is
// false when the device cannot answer the query; callers treat that as "not
// pressed", never as an error.
type Controller interface {
	InputEnabled() bool
	IsPressed(b Button) (pressed, ok bool)
}

// Gamepad adapts a raylib gamepad to the Controller interface so the
// simulation can be driven by real input hardware.
type Gamepad struct {
	Pad int32
}

func (g *Gamepad) InputEnabled() bool {
	return rl.IsGamepadAvailable(g.Pad)
}

func (g *Gamepad) IsPressed(b Button) (bool, bool) {
	if !rl.IsGamepadAvailable(g.Pad) {
		return false, false
	}
	switch b {
	case Primary2DAxisClick:
		return rl.IsGamepadButtonDown(g.Pad, rl.GamepadButtonRightThumb), true
	case TriggerButton:
		return rl.IsGamepadButtonDown(g.Pad, rl.GamepadButtonRightTrigger2), true
	case GripButton:
		return rl.IsGamepadButtonDown(g.Pad, rl.GamepadButtonRightTrigger1), true
	case PrimaryButton:
		return rl.IsGamepadButtonDown(g.Pad, rl.GamepadButtonRightFaceDown), true
	}
	return false, false
}

// Scripted is a controller whose state is set directly. The simulation uses
// it to replay button sequences; tests use it as a stand-in device.
type Scripted struct {
	Enabled bool
	Held    map[Button]bool

	// Unsupported buttons answer ok=false, mimicking devices that do not
	// expose a given control.
	Unsupported map[Button]bool
}

func NewScripted() *Scripted {
	return &Scripted{
		Enabled:     true,
		Held:        make(map[Button]bool),
		Unsupported: make(map[Button]bool),
	}
}

func (s *Scripted) InputEnabled() bool {
	return s.Enabled
}

func (s *Scripted) IsPressed(b Button) (bool, bool) {
	if s.Unsupported[b] {
		return false, false
	}
	return s.Held[b], true
}

// Press sets a button held; Release clears it.
func (s *Scripted) Press(b Button)   { s.Held[b] = true }
func (s *Scripted) Release(b Button) { s.Held[b] = false }
