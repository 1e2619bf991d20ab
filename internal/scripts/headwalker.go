// Package scripts holds small behavior components for the simulation.
package scripts

import (
	"math"

	"xrbody/internal/engine"
)

// HeadWalker stands in for a tracked headset: it walks the head's local
// position across the play space at a fixed stride and heading, with a little
// vertical bob so the capsule resize path is exercised too.
type HeadWalker struct {
	engine.BaseComponent

	Stride     float32 // meters per frame of head movement
	HeadingDeg float32 // walk direction, degrees from +X
	BobAmp     float32 // vertical bob amplitude, 0 disables

	baseHeight float32
	phase      float32
}

func NewHeadWalker(stride, headingDeg float32) *HeadWalker {
	return &HeadWalker{
		Stride:     stride,
		HeadingDeg: headingDeg,
		BobAmp:     0.02,
	}
}

func (h *HeadWalker) Start() {
	g := h.GetGameObject()
	if g == nil {
		return
	}
	h.baseHeight = g.Transform.Position.Y
}

func (h *HeadWalker) Update(deltaTime float32) {
	g := h.GetGameObject()
	if g == nil {
		return
	}

	heading := float64(h.HeadingDeg) * math.Pi / 180
	g.Transform.Position.X += h.Stride * float32(math.Cos(heading))
	g.Transform.Position.Z += h.Stride * float32(math.Sin(heading))

	if h.BobAmp > 0 {
		h.phase += deltaTime * 2 * math.Pi
		g.Transform.Position.Y = h.baseHeight + h.BobAmp*float32(math.Sin(float64(h.phase)))
	}
}
