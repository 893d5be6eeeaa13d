package flappy

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// EndCause records why a session stopped.
type EndCause int

const (
	CauseNone      EndCause = iota
	CauseCollision          // Hit a pipe
	CauseGround             // Fell through the bottom edge
	CauseCeiling            // Flew past the top tolerance
	CauseAborted            // Discarded by restart or quit
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCollision:
		return "collision"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	case CauseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session is one playthrough. It exclusively owns its bird, its pipes and
// the two scheduler subscriptions that drive it. Once ended it is frozen.
type Session struct {
	id      uuid.UUID
	seed    int64
	cfg     config.FlappyConfig
	bird    Bird
	pipes   *PipeSet
	score   int
	ticks   int
	running bool
	cause   EndCause

	frameSub clock.Subscription
	spawnSub clock.Subscription
}

// NewSession creates a running session for the given play area.
// It is not attached to a scheduler; Game does that.
func NewSession(cfg config.FlappyConfig, seed int64, area Area) *Session {
	return &Session{
		id:      uuid.New(),
		seed:    seed,
		cfg:     cfg,
		bird:    newBird(cfg, area.H),
		pipes:   NewPipeSet(seed, cfg.Obstacles),
		running: true,
	}
}

// ID returns the session's unique id.
func (s *Session) ID() uuid.UUID { return s.id }

// Score returns the number of pipes cleared.
func (s *Session) Score() int { return s.score }

// Ticks returns how many steps have run.
func (s *Session) Ticks() int { return s.ticks }

// Running reports whether the session still accepts ticks and input.
func (s *Session) Running() bool { return s.running }

// Cause returns why the session ended, or CauseNone while running.
func (s *Session) Cause() EndCause { return s.cause }

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird { return s.bird }

// Pipes returns a copy of the live pipes in order.
func (s *Session) Pipes() []Pipe { return s.pipes.Pipes() }

// Flap applies a jump impulse. It is a no-op once the session has ended.
func (s *Session) Flap() bool {
	if !s.running {
		return false
	}
	s.bird.Flap()
	return true
}

// Spawn adds a pipe at the right edge. A spawn tick that arrives after the
// session ended leaves the pipe set untouched.
func (s *Session) Spawn(area Area) bool {
	if !s.running {
		return false
	}
	s.pipes.Spawn(area.W, area.H)
	return true
}

// Frame snapshots the session for rendering.
func (s *Session) Frame(area Area) Frame {
	return Frame{
		Area:  area,
		Bird:  s.bird,
		Pipes: s.pipes.Pipes(),
		Score: s.score,
		Tick:  s.ticks,
	}
}

// Summary describes the session for lifecycle events.
func (s *Session) Summary() Summary {
	return Summary{
		ID:    s.id,
		Seed:  s.seed,
		Score: s.score,
		Ticks: s.ticks,
		Cause: s.cause,
	}
}

// end freezes the session and cancels both subscriptions. Only the first
// call has any effect; it reports whether this call ended the session.
func (s *Session) end(cause EndCause) bool {
	if !s.running {
		return false
	}
	s.running = false
	s.cause = cause
	if s.frameSub != nil {
		s.frameSub.Cancel()
	}
	if s.spawnSub != nil {
		s.spawnSub.Cancel()
	}
	return true
}
