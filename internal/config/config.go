// Package config loads the locomotion and simulation settings from YAML.
package config

import (
	"fmt"
	"os"

	"xrbody/internal/xr"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scene      string           `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LocomotionConfig is the setup surface of the body drivers: gravity, the
// optional movement scaling, and the controllers that gate it.
type LocomotionConfig struct {
	UseGravity  *bool    `yaml:"useGravity"` // default true
	Gravity     *float32 `yaml:"gravity"`    // default -9.81; pointer so an explicit 0 survives
	Scaled      bool     `yaml:"scaled"`
	MoveScale   float32  `yaml:"moveScale"`   // default 2.0
	ScaleButton string   `yaml:"scaleButton"` // default "grip"
	Gamepads    []int32  `yaml:"gamepads"`
}

// SimulationConfig drives the headless frame loop and the scripted head path.
type SimulationConfig struct {
	Frames     int      `yaml:"frames"`     // default 600
	FrameTime  float32  `yaml:"frameTime"`  // default 1/90 s
	HeadHeight *float32 `yaml:"headHeight"` // default 1.7; pointer so an explicit 0 survives
	Stride     float32  `yaml:"stride"`     // head movement per frame, default 0.02
	HeadingDeg float32  `yaml:"heading"`    // walk direction, degrees from +X
}

type LoggingConfig struct {
	Level string `yaml:"level"` // zap level name, default "info"
}

func Default() *Config {
	useGravity := true
	gravity := float32(-9.81)
	headHeight := float32(1.7)
	return &Config{
		Locomotion: LocomotionConfig{
			UseGravity:  &useGravity,
			Gravity:     &gravity,
			MoveScale:   2.0,
			ScaleButton: "grip",
		},
		Simulation: SimulationConfig{
			Frames:     600,
			FrameTime:  1.0 / 90.0,
			HeadHeight: &headHeight,
			Stride:     0.02,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Locomotion.UseGravity == nil {
		c.Locomotion.UseGravity = def.Locomotion.UseGravity
	}
	if c.Locomotion.Gravity == nil {
		c.Locomotion.Gravity = def.Locomotion.Gravity
	}
	if c.Locomotion.MoveScale == 0 {
		c.Locomotion.MoveScale = def.Locomotion.MoveScale
	}
	if c.Locomotion.ScaleButton == "" {
		c.Locomotion.ScaleButton = def.Locomotion.ScaleButton
	}
	if c.Simulation.Frames == 0 {
		c.Simulation.Frames = def.Simulation.Frames
	}
	if c.Simulation.FrameTime == 0 {
		c.Simulation.FrameTime = def.Simulation.FrameTime
	}
	if c.Simulation.HeadHeight == nil {
		c.Simulation.HeadHeight = def.Simulation.HeadHeight
	}
	if c.Simulation.Stride == 0 {
		c.Simulation.Stride = def.Simulation.Stride
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

func (c *Config) validate() error {
	if _, err := xr.ParseButton(c.Locomotion.ScaleButton); err != nil {
		return err
	}
	if c.Locomotion.MoveScale <= 0 {
		return fmt.Errorf("moveScale must be positive, got %f", c.Locomotion.MoveScale)
	}
	if c.Simulation.FrameTime <= 0 {
		return fmt.Errorf("frameTime must be positive, got %f", c.Simulation.FrameTime)
	}
	return nil
}

// Button returns the parsed scale button. Only valid after Load or Default.
func (c *LocomotionConfig) Button() xr.Button {
	b, err := xr.ParseButton(c.ScaleButton)
	if err != nil {
		return xr.GripButton
	}
	return b
}
