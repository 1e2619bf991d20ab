// Package sim wires a complete headless locomotion setup: environment,
// tracking rig, body capsule, and driver, stepped at a fixed frame rate.
package sim

import (
	"fmt"

	"xrbody/internal/components"
	"xrbody/internal/config"
	"xrbody/internal/engine"
	"xrbody/internal/locomotion"
	"xrbody/internal/scripts"
	"xrbody/internal/world"
	"xrbody/internal/xr"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Sim struct {
	cfg  *config.Config
	log  *zap.Logger
	wld  *world.World
	rig  *engine.GameObject
	head *engine.GameObject
	body *components.CapsuleController
}

func New(cfg *config.Config, log *zap.Logger) (*Sim, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Sim{
		cfg: cfg,
		log: log,
		wld: world.New("playspace"),
	}

	if cfg.Scene != "" {
		if err := s.wld.LoadScene(cfg.Scene); err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		log.Info("scene loaded",
			zap.String("path", cfg.Scene),
			zap.Int("colliders", len(s.wld.GetCollidableObjects())))
	} else {
		s.buildDefaultRoom()
		log.Info("using built-in room scene")
	}

	if err := s.buildRig(); err != nil {
		return nil, err
	}

	return s, nil
}

// buildDefaultRoom creates a 20x20 floor, four walls, and one rotated pillar
// so there is always something to collide with.
func (s *Sim) buildDefaultRoom() {
	add := func(name string, pos, size, rot rl.Vector3) {
		g := engine.NewGameObject(name)
		g.Tags = []string{"static"}
		g.Transform.Position = pos
		g.Transform.Rotation = rot
		g.AddComponent(components.NewBoxCollider(size))
		s.wld.Register(g)
	}

	add("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, rl.Vector3{})
	add("WallNorth", rl.Vector3{Z: 10, Y: 1.5}, rl.Vector3{X: 20, Y: 3, Z: 0.4}, rl.Vector3{})
	add("WallSouth", rl.Vector3{Z: -10, Y: 1.5}, rl.Vector3{X: 20, Y: 3, Z: 0.4}, rl.Vector3{})
	add("WallEast", rl.Vector3{X: 10, Y: 1.5}, rl.Vector3{X: 0.4, Y: 3, Z: 20}, rl.Vector3{})
	add("WallWest", rl.Vector3{X: -10, Y: 1.5}, rl.Vector3{X: 0.4, Y: 3, Z: 20}, rl.Vector3{})
	add("Pillar", rl.Vector3{X: 4, Y: 1.5}, rl.Vector3{X: 1, Y: 3, Z: 1}, rl.Vector3{Y: 30})
}

func (s *Sim) buildRig() error {
	simCfg := s.cfg.Simulation
	locoCfg := s.cfg.Locomotion

	s.head = engine.NewGameObject("Head")
	s.head.Transform.Position = rl.Vector3{Y: *simCfg.HeadHeight}
	s.head.AddComponent(scripts.NewHeadWalker(simCfg.Stride, simCfg.HeadingDeg))
	s.wld.Register(s.head)

	s.rig = engine.NewGameObject("Rig")
	s.rig.AddChild(s.head)
	s.wld.Register(s.rig)

	bodyObj := engine.NewGameObject("Body")
	bodyObj.Transform.Position = s.head.WorldPosition()
	s.body = components.NewCapsuleController()
	bodyObj.AddComponent(s.body)
	s.wld.Register(bodyObj)

	loco := locomotion.NewSystem()

	var driver engine.Component
	if locoCfg.Scaled {
		var controllers []xr.Controller
		for _, pad := range locoCfg.Gamepads {
			controllers = append(controllers, &xr.Gamepad{Pad: pad})
		}
		d, err := components.NewScaledBodyDriver(s.rig, s.head, s.body, loco, controllers, locoCfg.Button(), s.log)
		if err != nil {
			return err
		}
		d.UseGravity = *locoCfg.UseGravity
		d.Gravity = *locoCfg.Gravity
		d.MoveScale = locoCfg.MoveScale
		driver = d
		s.log.Info("scaled body driver ready",
			zap.Float32("moveScale", d.MoveScale),
			zap.Stringer("scaleButton", d.ScaleButton),
			zap.Int("controllers", len(controllers)))
	} else {
		d, err := components.NewBodyDriver(s.rig, s.head, s.body, loco, s.log)
		if err != nil {
			return err
		}
		d.UseGravity = *locoCfg.UseGravity
		d.Gravity = *locoCfg.Gravity
		driver = d
		s.log.Info("body driver ready")
	}
	s.rig.AddComponent(driver)

	return nil
}

// Run steps the world for the configured number of frames, logging a summary
// once a simulated second.
func (s *Sim) Run() {
	s.wld.Start()

	dt := s.cfg.Simulation.FrameTime
	logEvery := int(1.0 / dt)
	if logEvery < 1 {
		logEvery = 1
	}

	for frame := 0; frame < s.cfg.Simulation.Frames; frame++ {
		s.wld.Update(dt)

		if frame%logEvery == 0 {
			head := s.head.WorldPosition()
			body := s.body.WorldPosition()
			s.log.Info("frame",
				zap.Int("n", frame),
				zap.Float32("headX", head.X),
				zap.Float32("headZ", head.Z),
				zap.Float32("bodyX", body.X),
				zap.Float32("bodyZ", body.Z),
				zap.Float32("capsuleHeight", s.body.Height))
		}
	}

	head := s.head.WorldPosition()
	s.log.Info("simulation finished",
		zap.Int("frames", s.cfg.Simulation.Frames),
		zap.Float32("finalHeadX", head.X),
		zap.Float32("finalHeadZ", head.Z),
		zap.Float32("rigX", s.rig.Transform.Position.X),
		zap.Float32("rigZ", s.rig.Transform.Position.Z))
}

// Head and Body expose the tracked objects for tests.
func (s *Sim) Head() *engine.GameObject            { return s.head }
func (s *Sim) Body() *components.CapsuleController { return s.body }
func (s *Sim) World() *world.World                 { return s.wld }
