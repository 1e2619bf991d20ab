package components

import (
	"errors"

	"xrbody/internal/engine"
	"xrbody/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultGravity is the vertical acceleration applied when UseGravity is on.
const DefaultGravity = -9.81

// BodyDriver maps tracked head movement onto the body capsule and realigns
// the play-space rig with wherever the capsule actually ended up.
//
// Each frame: the capsule is resized to the head height, the head's
// displacement since last frame becomes the desired body motion, gravity
// optionally overrides the vertical component, the capsule moves with
// collision resolution, and finally the rig is translated so the head's world
// position coincides with the capsule. Collision shortening the capsule's
// motion therefore shortens the user's visual motion too; the viewpoint never
// clips through geometry.
//
// Rig realignment only happens under the locomotion system's grant. A denied
// grant defers realignment to a later frame; the capsule keeps its position,
// and because realignment works from absolute positions the deferred frame
// catches up without drift.
type BodyDriver struct {
	engine.BaseComponent

	UseGravity bool
	Gravity    float32

	rig  *engine.GameObject
	head *engine.GameObject
	body *CapsuleController
	loco *locomotion.System

	log *zap.Logger
}

// NewBodyDriver wires the driver to its required references. All four are
// mandatory; a nil reference is a construction error rather than a silently
// dead component.
func NewBodyDriver(rig, head *engine.GameObject, body *CapsuleController, loco *locomotion.System, log *zap.Logger) (*BodyDriver, error) {
	if rig == nil {
		return nil, errors.New("body driver: rig reference is required")
	}
	if head == nil {
		return nil, errors.New("body driver: head reference is required")
	}
	if body == nil {
		return nil, errors.New("body driver: capsule reference is required")
	}
	if loco == nil {
		return nil, errors.New("body driver: locomotion system is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BodyDriver{
		UseGravity: true,
		Gravity:    DefaultGravity,
		rig:        rig,
		head:       head,
		body:       body,
		loco:       loco,
		log:        log,
	}, nil
}

func (d *BodyDriver) ready() bool {
	return d.rig != nil && d.head != nil && d.body != nil && d.loco != nil
}

// Start warns once if the driver was built without its references (possible
// when the struct is assembled by hand instead of NewBodyDriver). The warning
// is not repeated: the condition persists until an operator fixes the wiring.
func (d *BodyDriver) Start() {
	if !d.ready() {
		d.logger().Warn("body driver missing required references, updates disabled",
			zap.Bool("hasRig", d.rig != nil),
			zap.Bool("hasHead", d.head != nil),
			zap.Bool("hasCapsule", d.body != nil),
			zap.Bool("hasLocomotion", d.loco != nil),
		)
	}
}

func (d *BodyDriver) Update(deltaTime float32) {
	d.tick(deltaTime, nil)
}

// tick runs one frame. scale, when non-nil, may rewrite the desired
// displacement before gravity and collision (the scaled variant hooks in
// here).
func (d *BodyDriver) tick(deltaTime float32, scale func(rl.Vector3) rl.Vector3) {
	if !d.ready() {
		return
	}

	headPos := d.head.WorldPosition()
	rigPos := d.rig.WorldPosition()

	// Capsule spans from the rig's ground plane up to the head. Height may go
	// negative when the head dips below the rig plane; the capsule then skips
	// collision entirely.
	height := headPos.Y - rigPos.Y
	d.body.Height = height
	d.body.Center = rl.Vector3{Y: -height / 2}

	delta := rl.Vector3Subtract(headPos, d.body.WorldPosition())

	if scale != nil {
		delta = scale(delta)
	}

	if d.UseGravity {
		// Replaces the head-derived vertical motion, never adds to it
		delta.Y = d.Gravity * deltaTime
	}

	d.body.Move(delta)

	if !d.loco.TryBegin(d) {
		// Another provider owns the rig this frame. The capsule already
		// moved; realignment happens once the grant comes through.
		return
	}
	offset := rl.Vector3Subtract(d.body.WorldPosition(), headPos)
	d.rig.Transform.Position = rl.Vector3Add(d.rig.Transform.Position, offset)
	d.loco.End(d)
}

func (d *BodyDriver) logger() *zap.Logger {
	if d.log == nil {
		return zap.NewNop()
	}
	return d.log
}
