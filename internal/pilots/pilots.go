// Package pilots contains the built-in automated jump sources. Each pilot
// registers itself with the registry on import.
package pilots

import (
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Idle never flaps. The bird drops straight onto the ground.
type Idle struct{}

func (Idle) ID() string { return "idle" }
func (Idle) Title() string { return "Idle (never flaps)" }
func (Idle) Reset(int64) {}
func (Idle) ShouldFlap(flappy.Frame) bool { return false }

// DefaultMetronomeEvery is roughly one full rise-and-fall under the
// default physics, so the bird hovers near its start height.
const DefaultMetronomeEvery = 45

// Metronome flaps on a fixed tick cadence and ignores the pipes.
type Metronome struct {
	Every int
}

// NewMetronome creates a metronome with the default cadence.
func NewMetronome() *Metronome {
	return &Metronome{Every: DefaultMetronomeEvery}
}

func (m *Metronome) ID() string    { return "metronome" }
func (m *Metronome) Title() string { return "Metronome (fixed cadence)" }
func (m *Metronome) Reset(int64) {}

// ShouldFlap is true on every Every-th tick, starting with the first.
func (m *Metronome) ShouldFlap(f flappy.Frame) bool {
	if m.Every <= 0 {
		return false
	}
	return f.Tick%m.Every == 0
}

func init() {
	registry.Register("idle", func() registry.Pilot {
		return Idle{}
	})
	registry.Register("metronome", func() registry.Pilot {
		return NewMetronome()
	})
	registry.Register("seeker", func() registry.Pilot {
		return NewSeeker()
	})
	registry.Register("flutter", func() registry.Pilot {
		return NewFlutter()
	})
}
