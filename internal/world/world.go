// Package world holds the loaded environment: the scene graph plus the list
// of collidable objects the body capsule resolves against.
package world

import (
	"xrbody/internal/components"
	"xrbody/internal/engine"
)

type World struct {
	Scene *engine.Scene

	collidables []*engine.GameObject
}

func New(sceneName string) *World {
	w := &World{
		Scene: engine.NewScene(sceneName),
	}
	w.Scene.World = w
	return w
}

// GetCollidableObjects implements engine.WorldAccess.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.collidables
}

// Register adds g to the scene and, if it carries a BoxCollider, to the
// collidable set.
func (w *World) Register(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if engine.GetComponent[*components.BoxCollider](g) != nil {
		w.collidables = append(w.collidables, g)
	}
}

// Remove takes g out of the scene and the collidable set.
func (w *World) Remove(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
	for i, obj := range w.collidables {
		if obj == g {
			w.collidables = append(w.collidables[:i], w.collidables[i+1:]...)
			return
		}
	}
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
