// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables for the game. Distances are in world
// units (the original canvas pixels), speeds in units per frame.
type FlappyConfig struct {
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
	Display   Display   `yaml:"display"`
}

// Physics defines per-frame motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every frame
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Velocity after a flap (negative = up)
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Pipe movement per frame
	TopTolerance float64 `yaml:"top_tolerance"` // How far above the top edge the bird may go
}

// Bird defines the falling body's fixed geometry.
type Bird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines pipe geometry and spawn cadence.
type Obstacles struct {
	Width           float64 `yaml:"width"`
	GapSize         float64 `yaml:"gap_size"`
	MinMargin       float64 `yaml:"min_margin"`       // Minimum segment height at either edge
	CollisionMargin float64 `yaml:"collision_margin"` // Inward forgiveness on every pipe edge
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// SpawnInterval returns the spawn cadence as a duration.
func (o Obstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// Display defines how world units map onto terminal cells.
type Display struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
	TickRate   int     `yaml:"tick_rate"`   // Frames per second
}

// Validate reports every field that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", c.Physics.ScrollSpeed)
	check(c.Physics.TopTolerance <= 0, "physics.top_tolerance must not be positive, got %v", c.Physics.TopTolerance)
	check(c.Bird.X >= 0, "bird.x must not be negative, got %v", c.Bird.X)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive, got %vx%v", c.Bird.Width, c.Bird.Height)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapSize > c.Bird.Height, "obstacles.gap_size (%v) must exceed bird.height (%v)", c.Obstacles.GapSize, c.Bird.Height)
	check(c.Obstacles.MinMargin >= 0, "obstacles.min_margin must not be negative, got %v", c.Obstacles.MinMargin)
	check(c.Obstacles.CollisionMargin >= 0, "obstacles.collision_margin must not be negative, got %v", c.Obstacles.CollisionMargin)
	check(c.Obstacles.SpawnIntervalMS > 0, "obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Display.CellWidth > 0 && c.Display.CellHeight > 0, "display cell size must be positive, got %vx%v", c.Display.CellWidth, c.Display.CellHeight)
	check(c.Display.TickRate > 0, "display.tick_rate must be positive, got %d", c.Display.TickRate)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
