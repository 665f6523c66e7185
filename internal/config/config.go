// Package config provides YAML-based game configuration loading for the
// flappy game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tuning for the game. Every distance and speed is
// expressed at the design resolution and multiplied by the viewport scale at
// runtime.
type FlappyConfig struct {
	Design      DesignConfig     `yaml:"design"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Ground      GroundConfig     `yaml:"ground"`
	Player      PlayerConfig     `yaml:"player"`
	Particles   ParticleConfig   `yaml:"particles"`
	Decorations DecorationConfig `yaml:"decorations"`
	Storage     StorageConfig    `yaml:"storage"`
}

// DesignConfig defines the design resolution and how a terminal maps onto it.
type DesignConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	MarginX  float64 `yaml:"margin_x"`    // Viewport pixels reserved for chrome horizontally
	MarginY  float64 `yaml:"margin_y"`    // Viewport pixels reserved for chrome vertically
	CellW    float64 `yaml:"cell_width"`  // Pixels covered by one terminal column
	CellH    float64 `yaml:"cell_height"` // Pixels covered by one terminal row
}

// PhysicsConfig defines player physics per frame.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Impulse        float64 `yaml:"impulse"` // Negative = up
	RotationFactor float64 `yaml:"rotation_factor"`
	MinRotation    float64 `yaml:"min_rotation"` // Degrees
	MaxRotation    float64 `yaml:"max_rotation"` // Degrees
}

// ObstacleConfig defines pipe geometry and pacing.
type ObstacleConfig struct {
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	Gap             float64 `yaml:"gap"`
	Width           float64 `yaml:"width"`
	MinGapTop       float64 `yaml:"min_gap_top"`
	BottomMargin    float64 `yaml:"bottom_margin"`
}

// GroundConfig defines the ground strip.
type GroundConfig struct {
	Height       float64 `yaml:"height"`
	PatternWidth float64 `yaml:"pattern_width"`
}

// PlayerConfig defines the bird's placement and hitbox.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitboxInset float64 `yaml:"hitbox_inset"`
}

// ParticleConfig defines the flap trail.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`
	Lifetime int     `yaml:"lifetime"` // Frames
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
}

// DecorationConfig defines the drifting clouds.
type DecorationConfig struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	SkyBand  float64 `yaml:"sky_band"` // Fraction of canvas height clouds may occupy
}

// StorageConfig names the persisted best-score key.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// Validate reports every tuning value that would make the simulation
// meaningless, joined into one error.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("design.width", c.Design.Width)
	positive("design.height", c.Design.Height)
	positive("design.min_scale", c.Design.MinScale)
	positive("design.cell_width", c.Design.CellW)
	positive("design.cell_height", c.Design.CellH)
	if c.Design.MaxScale < c.Design.MinScale {
		errs = append(errs, fmt.Errorf("design.max_scale %v is below min_scale %v", c.Design.MaxScale, c.Design.MinScale))
	}
	positive("physics.gravity", c.Physics.Gravity)
	if c.Physics.Impulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.impulse must be negative (upwards), got %v", c.Physics.Impulse))
	}
	if c.Physics.MaxRotation < c.Physics.MinRotation {
		errs = append(errs, errors.New("physics.max_rotation is below min_rotation"))
	}
	positive("obstacles.speed", c.Obstacles.Speed)
	positive("obstacles.spawn_interval_ms", float64(c.Obstacles.SpawnIntervalMs))
	positive("obstacles.gap", c.Obstacles.Gap)
	positive("obstacles.width", c.Obstacles.Width)
	positive("ground.height", c.Ground.Height)
	positive("ground.pattern_width", c.Ground.PatternWidth)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	if 2*c.Player.HitboxInset >= min(c.Player.Width, c.Player.Height) {
		errs = append(errs, errors.New("player.hitbox_inset leaves no hitbox"))
	}
	if c.Particles.Lifetime <= 0 {
		errs = append(errs, errors.New("particles.lifetime must be positive"))
	}
	if c.Decorations.Count < 0 {
		errs = append(errs, errors.New("decorations.count must not be negative"))
	}
	if c.Storage.BestScoreKey == "" {
		errs = append(errs, errors.New("storage.best_score_key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
