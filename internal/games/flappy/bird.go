package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the falling body. Only its vertical state changes; X is fixed
// for the lifetime of a session.
type Bird struct {
	X        float64
	Y        float64 // Top of hitbox
	Velocity float64 // Positive = falling
	Width    float64
	Height   float64

	gravity float64
	impulse float64
}

// newBird places a bird at the configured offset, vertically centered.
func newBird(cfg config.FlappyConfig, playH float64) Bird {
	return Bird{
		X:       cfg.Bird.X,
		Y:       playH / 2,
		Width:   cfg.Bird.Width,
		Height:  cfg.Bird.Height,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
	}
}

// Advance integrates one frame of constant gravity. Bounds are not
// enforced here.
func (b *Bird) Advance() {
	b.Velocity += b.gravity
	b.Y += b.Velocity
}

// Flap overwrites the velocity with the jump impulse.
func (b *Bird) Flap() {
	b.Velocity = b.impulse
}

// Bounds returns the bird's hitbox.
func (b Bird) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}
