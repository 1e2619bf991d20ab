package components

import (
	"xrbody/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider marks a GameObject as solid environment geometry. The body
// capsule resolves its movement against every BoxCollider the world reports.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the collider center in world space.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size with the object's world scale applied.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	scale := g.WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}
