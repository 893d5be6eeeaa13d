package flappy

import (
	"github.com/google/uuid"
)

// Area is the play area size in world units.
type Area struct {
	W, H float64
}

// PlayArea lets a fixed Area serve as a Geometry.
func (a Area) PlayArea() Area {
	return a
}

// Geometry supplies the current play area. It is read on every tick, so
// an implementation may change its answer when the display is resized.
type Geometry interface {
	PlayArea() Area
}

// Event is a session lifecycle transition reported to the presenter.
type Event int

const (
	EventStarted Event = iota
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventGameOver:
		return "game over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Area  Area
	Bird  Bird
	Pipes []Pipe // Oldest (leftmost) first
	Score int
	Tick  int
}

// Summary describes a session at a lifecycle transition.
type Summary struct {
	ID    uuid.UUID
	Seed  int64
	Score int
	Ticks int
	Cause EndCause
}

// Presenter receives the simulation's output. Implementations must not
// call back into the Game synchronously.
type Presenter interface {
	Render(f Frame)
	Score(score int)
	Lifecycle(ev Event, s Summary)
}

// NopPresenter discards everything. Embed it to implement part of Presenter.
type NopPresenter struct{}

func (NopPresenter) Render(Frame) {}

func (NopPresenter) Score(int) {}

func (NopPresenter) Lifecycle(Event, Summary) {}
