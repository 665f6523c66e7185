package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Design: DesignConfig{
			Width:    400,
			Height:   600,
			MinScale: 0.5,
			MaxScale: 1.5,
			CellW:    8,
			CellH:    16,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			Impulse:        -9,
			RotationFactor: 3,
			MinRotation:    -30,
			MaxRotation:    90,
		},
		Obstacles: ObstacleConfig{
			Speed:           3,
			SpawnIntervalMs: 1500,
			Gap:             160,
			Width:           70,
			MinGapTop:       80,
			BottomMargin:    20,
		},
		Ground: GroundConfig{
			Height:       80,
			PatternWidth: 40,
		},
		Player: PlayerConfig{
			X:           80,
			Width:       40,
			Height:      30,
			HitboxInset: 5,
		},
		Particles: ParticleConfig{
			Burst:    5,
			Lifetime: 30,
			MinSize:  3,
			MaxSize:  7,
		},
		Decorations: DecorationConfig{
			Count:    5,
			MinSize:  30,
			MaxSize:  70,
			MinSpeed: 0.3,
			MaxSpeed: 0.8,
			SkyBand:  0.4,
		},
		Storage: StorageConfig{
			BestScoreKey: "flappyHighScore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
