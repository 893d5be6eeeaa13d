package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Pipe is a vertical barrier with a gap. The gap height is fixed at
// creation and GapBottom is derived from it. Spawned pipes keep GapTop and
// the gap on a 1/gapGrid grid, where GapBottom-GapTop is exact in float64.
type Pipe struct {
	ID     uint64
	X      float64 // Left edge, decreasing every frame
	Width  float64
	GapTop float64 // Bottom edge of the upper segment
	Passed bool    // Set once the bird has cleared it

	gapSize float64
}

// NewPipe builds a pipe with explicit geometry.
func NewPipe(x, width, gapTop, gapSize float64) Pipe {
	return Pipe{X: x, Width: width, GapTop: gapTop, gapSize: gapSize}
}

// gapGrid is the number of steps per world unit that gap positions snap to.
const gapGrid = 64

func snapDown(v float64) float64 { return math.Floor(v*gapGrid) / gapGrid }
func snapUp(v float64) float64 { return math.Ceil(v*gapGrid) / gapGrid }

// spawnPipe creates a pipe at the right edge with a random gap position in
// [MinMargin, playH-GapSize-MinMargin]. On play areas too short for that
// range the gap sits at MinMargin.
func spawnPipe(rng *rand.Rand, id uint64, playW, playH float64, o config.Obstacles) Pipe {
	gap := snapDown(o.GapSize)
	lo := snapUp(o.MinMargin)
	hi := snapDown(playH - gap - o.MinMargin)

	top := lo
	if hi > lo {
		steps := math.Round(rng.Float64() * (hi - lo) * gapGrid)
		top = min(lo+steps/gapGrid, hi)
	}

	p := NewPipe(playW, o.Width, top, gap)
	p.ID = id
	return p
}

// GapBottom returns the top edge of the lower segment.
func (p Pipe) GapBottom() float64 {
	return p.GapTop + p.gapSize
}

// GapSize returns the vertical opening.
func (p Pipe) GapSize() float64 {
	return p.gapSize
}

// Right returns the x-coordinate of the right edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// Advance scrolls the pipe left.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// Stale reports whether the pipe has fully left the play area.
func (p Pipe) Stale() bool {
	return p.Right() < 0
}

// ClearedBy reports whether the pipe is entirely behind the bird.
func (p Pipe) ClearedBy(b Bird) bool {
	return p.Right() < b.X
}

// Collides tests the bird against both segments. Every pipe edge is pulled
// inward by margin so grazing contact does not count.
func (p Pipe) Collides(b Bird, margin float64) bool {
	r := b.Bounds()
	if r.X >= p.Right()-margin || r.Right() <= p.X+margin {
		return false
	}
	return r.Y < p.GapTop-margin || r.Bottom() > p.GapBottom()+margin
}
