package engine

// Component is the per-frame behavior unit attached to a GameObject.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// WorldAccess gives components collision-world queries without creating a
// circular import with the world package.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
}

// BaseComponent provides the default Component implementation.
// Embed it and override the methods you need.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
