package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if !a.Intersects(b) {
		t.Error("Expected overlapping boxes to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected separated boxes not to intersect")
	}
}

func TestAABBResolveNoOverlap(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{X: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := a.Resolve(b)
	if push != rl.Vector3Zero() {
		t.Errorf("Expected zero push-out for separated boxes, got %v", push)
	}
}

func TestAABBResolvePushesAlongSmallestAxis(t *testing.T) {
	// A overlaps B by 0.2 in X and by a full unit in Y and Z:
	// the push must be along X only.
	a := NewAABBFromCenter(rl.Vector3{X: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	push := a.Resolve(b)
	if push.Y != 0 || push.Z != 0 {
		t.Errorf("Expected push along X only, got %v", push)
	}
	if push.X <= 0 {
		t.Errorf("Expected positive X push (away from B), got %f", push.X)
	}
	if diff := push.X - 0.1; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("Expected push of 0.1, got %f", push.X)
	}
}

func TestAABBResolveVertical(t *testing.T) {
	// Body standing slightly inside the floor: push must be +Y.
	body := NewAABBFromCenter(rl.Vector3{Y: 0.85}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8})
	floor := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20})

	push := body.Resolve(floor)
	if push.X != 0 || push.Z != 0 {
		t.Errorf("Expected vertical push only, got %v", push)
	}
	if push.Y <= 0 {
		t.Errorf("Expected upward push, got %f", push.Y)
	}
}
