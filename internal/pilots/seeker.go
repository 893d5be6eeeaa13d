package pilots

import (
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Seeker flaps whenever the bird's bottom edge sinks past a target line
// while falling. The line sits Slack units above the bottom of the next
// uncleared gap, or below mid-screen when no pipe is on screen.
type Seeker struct {
	Slack float64
}

// NewSeeker creates a seeker tuned for the default physics.
func NewSeeker() *Seeker {
	return &Seeker{Slack: 20}
}

func (s *Seeker) ID() string    { return "seeker" }
func (s *Seeker) Title() string { return "Seeker (aims for the next gap)" }
func (s *Seeker) Reset(int64) {}

// ShouldFlap implements registry.Pilot.
func (s *Seeker) ShouldFlap(f flappy.Frame) bool {
	b := f.Bird
	if b.Velocity < 0 {
		return false
	}
	return b.Bounds().Bottom() > s.target(f)
}

// target returns the line the bird's bottom edge should stay above.
func (s *Seeker) target(f flappy.Frame) float64 {
	for _, p := range f.Pipes {
		if !p.Passed {
			return p.GapBottom() - s.Slack
		}
	}
	return f.Area.H/2 + f.Bird.Height*2.5
}
