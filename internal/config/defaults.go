package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:      0.3,
			JumpImpulse:  -7,
			ScrollSpeed:  1.5,
			TopTolerance: -10,
		},
		Bird: Bird{
			X:      50,
			Width:  34,
			Height: 24,
		},
		Obstacles: Obstacles{
			Width:           52,
			GapSize:         200,
			MinMargin:       50,
			CollisionMargin: 5,
			SpawnIntervalMS: 2000,
		},
		Display: Display{
			CellWidth:  8,
			CellHeight: 16,
			TickRate:   60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
