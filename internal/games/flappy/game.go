// Package flappy implements a Flappy Bird-style game core.
// The player controls a bird that must pass through gaps in scrolling pipes.
//
// The simulation is driven by a clock.Scheduler through two independent
// subscriptions per session: a frame callback that runs Session.Step and
// a periodic spawn timer. Output goes to a Presenter; input arrives through
// Game.Jump.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Options configures a Game.
type Options struct {
	Config    config.FlappyConfig
	Scheduler clock.Scheduler
	Geometry  Geometry
	Presenter Presenter   // nil discards output
	Logger    *log.Logger // nil discards logs
	Seed      int64       // Seed of the first session; 0 derives one from the clock
}

// Game owns the current session and wires it to the scheduler and the
// presenter. There is at most one live session at a time.
type Game struct {
	cfg     config.FlappyConfig
	sched   clock.Scheduler
	geom    Geometry
	out     Presenter
	logger  *log.Logger
	seed    int64
	session *Session
}

// New creates a game with no session. Call Start to begin playing.
func New(opts Options) *Game {
	g := &Game{
		cfg:    opts.Config,
		sched:  opts.Scheduler,
		geom:   opts.Geometry,
		out:    opts.Presenter,
		logger: opts.Logger,
		seed:   opts.Seed,
	}
	if g.out == nil {
		g.out = NopPresenter{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Session returns the current session, or nil before the first Start.
func (g *Game) Session() *Session {
	return g.session
}

// Start discards any previous session and begins a new one. A previous
// session that is still running is aborted first, so its callbacks can
// never fire again.
func (g *Game) Start() *Session {
	ev := EventStarted
	if prev := g.session; prev != nil {
		ev = EventRestarted
		if prev.end(CauseAborted) {
			g.logger.Info("session aborted", "session", prev.id, "score", prev.score)
		}
	}

	area := g.geom.PlayArea()
	s := NewSession(g.cfg, g.seed, area)
	g.seed++
	g.session = s

	s.spawnSub = g.sched.Every(g.cfg.Obstacles.SpawnInterval(), func() { g.onSpawn(s) })
	s.frameSub = g.sched.RequestFrame(func() { g.onFrame(s) })

	g.logger.Info("session started", "session", s.id, "seed", s.seed, "width", area.W, "height", area.H)

	g.out.Lifecycle(ev, s.Summary())
	g.out.Score(0)
	g.out.Render(s.Frame(area))
	return s
}

// Restart replaces the current session with a fresh one. Before the first
// Start it behaves exactly like Start.
func (g *Game) Restart() *Session {
	if g.session != nil {
		g.logger.Debug("restart requested", "session", g.session.id, "running", g.session.running)
	}
	return g.Start()
}

// Jump flaps the bird of the running session. Before the first session,
// or after game over, it is ignored.
func (g *Game) Jump() bool {
	if g.session == nil {
		return false
	}
	return g.session.Flap()
}

// Stop aborts the running session without reporting game over.
func (g *Game) Stop() {
	if g.session != nil && g.session.end(CauseAborted) {
		g.logger.Info("session aborted", "session", g.session.id, "score", g.session.score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.score,
		Running:  g.session.running,
		GameOver: !g.session.running && g.session.cause != CauseAborted,
	}
}

// onFrame is the per-frame callback of session s.
func (g *Game) onFrame(s *Session) {
	if !s.running {
		return
	}

	area := g.geom.PlayArea()
	res := s.Step(area)

	for i := res.Scored - 1; i >= 0; i-- {
		g.out.Score(s.score - i)
	}
	if res.Pruned > 0 {
		g.logger.Debug("pipes pruned", "session", s.id, "removed", res.Pruned, "pipes", s.pipes.Len())
	}

	if res.Ended {
		g.logger.Info("game over", "session", s.id, "score", s.score, "ticks", s.ticks, "cause", s.cause)
		g.out.Lifecycle(EventGameOver, s.Summary())
		return
	}

	s.frameSub = g.sched.RequestFrame(func() { g.onFrame(s) })
	g.out.Render(s.Frame(area))
}

// onSpawn is the spawn timer callback of session s.
func (g *Game) onSpawn(s *Session) {
	area := g.geom.PlayArea()
	if s.Spawn(area) {
		g.logger.Debug("pipe spawned", "session", s.id, "pipes", s.pipes.Len())
	}
}
