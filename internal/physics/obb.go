package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented bounding box: world-space center, half-extents, and the
// three rotated local axes.
type OBB struct {
	Center   rl.Vector3
	HalfSize rl.Vector3
	Axes     [3]rl.Vector3
}

// NewOBB creates an OBB from center, full size, and euler rotation (degrees).
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// Rotation order X then Y then Z, matching Transform composition
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation).
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale.
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaledSize := rl.Vector3{
		X: size.X * scale.X,
		Y: size.Y * scale.Y,
		Z: size.Z * scale.Z,
	}
	return NewOBB(center, scaledSize, rotation)
}

// Bounds returns the world-aligned box enclosing the OBB. Used as a cheap
// broad-phase cull before the SAT tests.
func (o OBB) Bounds() AABB {
	ext := rl.Vector3{
		X: o.HalfSize.X*absf(o.Axes[0].X) + o.HalfSize.Y*absf(o.Axes[1].X) + o.HalfSize.Z*absf(o.Axes[2].X),
		Y: o.HalfSize.X*absf(o.Axes[0].Y) + o.HalfSize.Y*absf(o.Axes[1].Y) + o.HalfSize.Z*absf(o.Axes[2].Y),
		Z: o.HalfSize.X*absf(o.Axes[0].Z) + o.HalfSize.Y*absf(o.Axes[1].Z) + o.HalfSize.Z*absf(o.Axes[2].Z),
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, ext),
		Max: rl.Vector3Add(o.Center, ext),
	}
}

// IntersectsOBB tests two OBBs using the Separating Axis Theorem: the 3 face
// normals of each box plus the 9 edge cross products.
func (a OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)

	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			if rl.Vector3Length(axis) > 0.0001 {
				axis = rl.Vector3Normalize(axis)
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}

	return true
}

func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	aProjection := projectHalfSize(a, axis)
	bProjection := projectHalfSize(b, axis)
	distance := absf(rl.Vector3DotProduct(t, axis))
	return distance <= aProjection+bProjection
}

func projectHalfSize(o OBB, axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	if !a.IntersectsOBB(b) {
		return rl.Vector3Zero()
	}

	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var mtv rl.Vector3

	testAxis := func(axis rl.Vector3) {
		if rl.Vector3Length(axis) < 0.0001 {
			return
		}
		axis = rl.Vector3Normalize(axis)

		aProj := projectHalfSize(a, axis)
		bProj := projectHalfSize(b, axis)
		dist := rl.Vector3DotProduct(t, axis)
		penetration := aProj + bProj - absf(dist)

		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}

	for i := 0; i < 3; i++ {
		testAxis(a.Axes[i])
	}
	for i := 0; i < 3; i++ {
		testAxis(b.Axes[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}

	return mtv
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
