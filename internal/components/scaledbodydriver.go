package components

import (
	"xrbody/internal/engine"
	"xrbody/internal/locomotion"
	"xrbody/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultMoveScale is the displacement multiplier applied while the scale
// button is held.
const DefaultMoveScale = 2.0

// ScaledBodyDriver behaves like BodyDriver but multiplies the per-frame head
// displacement by MoveScale while the configured button is held on any of the
// configured controllers. Physically walking one meter then moves the virtual
// body MoveScale meters, a cheap form of redirected walking for play spaces
// smaller than the scene.
type ScaledBodyDriver struct {
	BodyDriver

	MoveScale   float32
	ScaleButton xr.Button
	Controllers []xr.Controller
}

// NewScaledBodyDriver wires the scaled variant. An empty controller list is
// valid: the gate never activates and the driver degrades to plain BodyDriver
// behavior.
func NewScaledBodyDriver(rig, head *engine.GameObject, body *CapsuleController, loco *locomotion.System, controllers []xr.Controller, button xr.Button, log *zap.Logger) (*ScaledBodyDriver, error) {
	base, err := NewBodyDriver(rig, head, body, loco, log)
	if err != nil {
		return nil, err
	}
	return &ScaledBodyDriver{
		BodyDriver:  *base,
		MoveScale:   DefaultMoveScale,
		ScaleButton: button,
		Controllers: controllers,
	}, nil
}

func (d *ScaledBodyDriver) Update(deltaTime float32) {
	d.tick(deltaTime, d.scaleDisplacement)
}

func (d *ScaledBodyDriver) scaleDisplacement(delta rl.Vector3) rl.Vector3 {
	if !d.gateActive() {
		return delta
	}
	return rl.Vector3Scale(delta, d.MoveScale)
}

// gateActive reports whether any enabled controller holds the scale button.
// Devices that cannot answer the query count as not pressed.
func (d *ScaledBodyDriver) gateActive() bool {
	for _, c := range d.Controllers {
		if c == nil || !c.InputEnabled() {
			continue
		}
		if pressed, ok := c.IsPressed(d.ScaleButton); ok && pressed {
			return true
		}
	}
	return false
}
