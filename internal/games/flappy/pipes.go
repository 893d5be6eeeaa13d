package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// PipeSet is the ordered collection of live pipes. Insertion order is
// spawn order, which is also left-to-right order: every pipe moves at the
// same speed, so none ever overtakes another and the slice is never sorted.
type PipeSet struct {
	pipes  []Pipe
	rng    *rand.Rand
	cfg    config.Obstacles
	nextID uint64
}

// NewPipeSet creates an empty set whose gap positions come from seed.
func NewPipeSet(seed int64, cfg config.Obstacles) *PipeSet {
	return &PipeSet{
		pipes: make([]Pipe, 0, 8),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
	}
}

// Spawn appends a new pipe at the right edge of the play area.
func (ps *PipeSet) Spawn(playW, playH float64) Pipe {
	ps.nextID++
	p := spawnPipe(ps.rng, ps.nextID, playW, playH, ps.cfg)
	ps.pipes = append(ps.pipes, p)
	return p
}

// Each calls fn on every live pipe, oldest first, until fn returns false.
// fn may mutate the pipe in place but must not spawn or prune.
func (ps *PipeSet) Each(fn func(p *Pipe) bool) {
	for i := range ps.pipes {
		if !fn(&ps.pipes[i]) {
			return
		}
	}
}

// PruneStale removes pipes that have left the play area, keeping the
// relative order of the rest. Returns how many were removed.
func (ps *PipeSet) PruneStale() int {
	kept := ps.pipes[:0]
	for _, p := range ps.pipes {
		if !p.Stale() {
			kept = append(kept, p)
		}
	}
	removed := len(ps.pipes) - len(kept)
	ps.pipes = kept
	return removed
}

// Len returns the number of live pipes.
func (ps *PipeSet) Len() int {
	return len(ps.pipes)
}

// Pipes returns a copy of the live pipes, oldest (leftmost) first.
func (ps *PipeSet) Pipes() []Pipe {
	out := make([]Pipe, len(ps.pipes))
	copy(out, ps.pipes)
	return out
}
