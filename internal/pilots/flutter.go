package pilots

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Flutter flaps at random while falling. Runs are repeatable for a seed.
type Flutter struct {
	Chance float64 // Probability of a flap per falling tick

	rng *rand.Rand
}

// NewFlutter creates a flutter pilot with a 1-in-20 chance per tick.
func NewFlutter() *Flutter {
	return &Flutter{
		Chance: 0.05,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (p *Flutter) ID() string    { return "flutter" }
func (p *Flutter) Title() string { return "Flutter (random flaps)" }

// Reset reseeds the random source.
func (p *Flutter) Reset(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
}

// ShouldFlap implements registry.Pilot.
func (p *Flutter) ShouldFlap(f flappy.Frame) bool {
	if f.Bird.Velocity < 0 {
		return false
	}
	return p.rng.Float64() < p.Chance
}
