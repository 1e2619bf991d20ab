package components

import (
	"xrbody/internal/engine"
	"xrbody/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CapsuleController is the user's virtual body: a capsule-shaped volume that
// is moved with collision resolution instead of being teleported. The anchor
// (the owning GameObject's position) sits at head level; the collision volume
// hangs below it through the Center offset, which the body driver rewrites
// every frame from the tracked head height.
type CapsuleController struct {
	engine.BaseComponent

	Height float32
	Radius float32
	Center rl.Vector3 // local offset of the collision volume from the anchor
}

func NewCapsuleController() *CapsuleController {
	return &CapsuleController{
		Height: 1.7,
		Radius: 0.3,
	}
}

// WorldPosition returns the anchor position, the point the tracked head is
// reconciled against.
func (c *CapsuleController) WorldPosition() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

// volume builds the current collision box.
func (c *CapsuleController) volume() physics.OBB {
	center := rl.Vector3Add(c.WorldPosition(), c.Center)
	size := rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2}
	return physics.NewAABBasOBB(center, size)
}

// Move translates the body by motion, resolving collisions against the
// world's collidable objects. Horizontal movement resolves before vertical so
// sliding along a wall doesn't eat the gravity step. Returns the displacement
// actually achieved after push-out.
func (c *CapsuleController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	// A head below the rig plane leaves Height negative: the volume has
	// degenerated, the body stops colliding and moves unobstructed until the
	// head comes back up.
	if c.Height <= 0 || len(colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		return motion
	}

	originalPos := g.Transform.Position

	horizontal := rl.Vector3{X: motion.X, Z: motion.Z}
	if horizontal.X != 0 || horizontal.Z != 0 {
		c.sweep(g, horizontal, colliders)
	}
	if motion.Y != 0 {
		c.sweep(g, rl.Vector3{Y: motion.Y}, colliders)
	}

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

// sweep applies one axis-group of motion, then pushes the volume out of every
// collider it penetrates. Unrotated colliders resolve on the cheap AABB path;
// rotated ones go through the OBB SAT.
func (c *CapsuleController) sweep(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)

	vol := c.volume()
	bounds := vol.Bounds()

	for _, other := range colliders {
		if other == g {
			continue
		}

		box := engine.GetComponent[*BoxCollider](other)
		if box == nil {
			continue
		}

		var pushOut rl.Vector3
		rot := other.WorldRotation()
		if rot.X == 0 && rot.Y == 0 && rot.Z == 0 {
			staticBox := physics.NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
			pushOut = bounds.Resolve(staticBox)
		} else {
			obb := physics.NewOBBFromBox(box.GetCenter(), box.Size, rot, other.WorldScale())

			// Broad phase: world-aligned bounds first, SAT only on candidates
			if !bounds.Intersects(obb.Bounds()) {
				continue
			}
			pushOut = vol.ResolveOBB(obb)
		}
		if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
			continue
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		vol = c.volume()
		bounds = vol.Bounds()
	}
}
