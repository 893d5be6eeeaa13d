package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frameDur = time.Second / 60

// recorder is a Presenter that keeps everything it is given.
type recorder struct {
	frames int
	last   Frame
	scores []int
	events []Event
	ends   []Summary
}

func (r *recorder) Render(f Frame) {
	r.frames++
	r.last = f
}

func (r *recorder) Score(score int) {
	r.scores = append(r.scores, score)
}

func (r *recorder) Lifecycle(ev Event, s Summary) {
	r.events = append(r.events, ev)
	if ev == EventGameOver {
		r.ends = append(r.ends, s)
	}
}

func newTestGame(geom Geometry, seed int64) (*Game, *clock.Loop, *recorder) {
	loop := clock.NewLoop(time.Unix(0, 0))
	rec := &recorder{}
	g := New(Options{
		Config:    testConfig(),
		Scheduler: loop,
		Geometry:  geom,
		Presenter: rec,
		Seed:      seed,
	})
	return g, loop, rec
}

// tick advances clock time by one frame and then runs the frame.
func tick(loop *clock.Loop) {
	loop.AdvanceBy(frameDur)
	loop.Frame()
}

func TestStartEmitsInitialState(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()

	if len(rec.events) != 1 || rec.events[0] != EventStarted {
		t.Errorf("events = %v, expected [started]", rec.events)
	}
	if len(rec.scores) != 1 || rec.scores[0] != 0 {
		t.Errorf("scores = %v, expected [0]", rec.scores)
	}
	if rec.frames != 1 {
		t.Errorf("frames = %d, expected 1 initial render", rec.frames)
	}
	if !s.Running() || s.Score() != 0 || len(s.Pipes()) != 0 {
		t.Errorf("fresh session: running=%v score=%d pipes=%d", s.Running(), s.Score(), len(s.Pipes()))
	}
	if loop.Pending() != 2 {
		t.Errorf("Pending() = %d, expected frame + spawn subscriptions", loop.Pending())
	}
}

func TestJumpWithoutSession(t *testing.T) {
	g, _, _ := newTestGame(Area{W: 640, H: 480}, 1)

	if g.Jump() {
		t.Error("Jump() before Start should be ignored")
	}
	if st := g.State(); st.Running || st.GameOver {
		t.Errorf("State() before Start = %+v, expected zero", st)
	}
}

func TestFrameDrivesStep(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()

	for i := 0; i < 10; i++ {
		tick(loop)
	}

	if s.Ticks() != 10 {
		t.Errorf("Ticks() = %d, expected 10", s.Ticks())
	}
	if rec.frames != 11 {
		t.Errorf("frames = %d, expected 11", rec.frames)
	}
	if rec.last.Tick != 10 {
		t.Errorf("last frame tick = %d, expected 10", rec.last.Tick)
	}
	if s.Bird().Y <= 240 {
		t.Errorf("bird should be falling, y=%v", s.Bird().Y)
	}
}

func TestSpawnTimerIndependentOfFrames(t *testing.T) {
	g, loop, _ := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()

	// No frames at all: the spawn timer still fires on clock time
	loop.AdvanceBy(2 * time.Second)
	if len(s.Pipes()) != 1 {
		t.Fatalf("pipes after 2s = %d, expected 1", len(s.Pipes()))
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0 without frames", s.Ticks())
	}

	// Frames alone never spawn
	for i := 0; i < 20; i++ {
		loop.Frame()
	}
	if len(s.Pipes()) != 1 {
		t.Errorf("frames must not spawn pipes, got %d", len(s.Pipes()))
	}

	loop.AdvanceBy(2 * time.Second)
	if len(s.Pipes()) != 2 {
		t.Errorf("pipes after 4s = %d, expected 2", len(s.Pipes()))
	}

	p := s.Pipes()[1]
	if p.X != 640 {
		t.Errorf("spawned pipe x = %v, expected right edge 640", p.X)
	}
}

func TestScoreEmittedOncePerPipe(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()

	// Right edge at 49 is cleared after one scroll; the gap covers the area
	s.pipes.pipes = append(s.pipes.pipes, NewPipe(-3, 52, 0, 480))

	for i := 0; i < 5; i++ {
		tick(loop)
	}

	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if len(rec.scores) != 2 || rec.scores[1] != 1 {
		t.Errorf("scores = %v, expected [0 1]", rec.scores)
	}
	for _, p := range s.Pipes() {
		if !p.Passed {
			t.Error("a cleared pipe must stay passed")
		}
	}
}

func TestCollisionSkipsRemainingPipes(t *testing.T) {
	s := NewSession(testConfig(), 1, Area{W: 640, H: 480})

	// First pipe overlaps the bird with its gap far above; second is ahead
	s.pipes.pipes = append(s.pipes.pipes,
		NewPipe(40, 52, 0, 100),
		NewPipe(500, 52, 0, 100),
	)

	res := s.Step(Area{W: 640, H: 480})

	if !res.Ended || res.Cause != CauseCollision {
		t.Fatalf("Step() = %+v, expected collision", res)
	}
	if got := s.Pipes()[1].X; got != 500 {
		t.Errorf("pipe after the collision moved to %v, expected 500", got)
	}
	if s.Step(Area{W: 640, H: 480}) != (StepResult{}) {
		t.Error("stepping an ended session must do nothing")
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}
}

func TestNoCollisionInsideGap(t *testing.T) {
	s := NewSession(testConfig(), 1, Area{W: 640, H: 480})
	s.bird.Y = 100
	s.pipes.pipes = append(s.pipes.pipes, NewPipe(45, 52, 80, 200))

	res := s.Step(Area{W: 640, H: 480})

	if res.Ended {
		t.Fatalf("bird inside the gap ended the session: %v", res.Cause)
	}
	if s.Pipes()[0].X != 43.5 {
		t.Errorf("pipe x = %v, expected 43.5", s.Pipes()[0].X)
	}
}

func TestStalePipesPruned(t *testing.T) {
	s := NewSession(testConfig(), 1, Area{W: 640, H: 480})
	s.pipes.pipes = append(s.pipes.pipes,
		NewPipe(-60, 52, 0, 480),
		NewPipe(-53, 52, 0, 480),
		NewPipe(300, 52, 0, 480),
	)

	res := s.Step(Area{W: 640, H: 480})
	if res.Pruned != 2 {
		t.Errorf("Pruned = %d, expected 2", res.Pruned)
	}

	pipes := s.Pipes()
	if len(pipes) != 1 || pipes[0].X != 298.5 {
		t.Errorf("pipes after prune = %+v, expected only the live one", pipes)
	}
}

func TestCeilingEndsOnce(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()
	s.bird.Y = -15

	tick(loop)

	if s.Running() || s.Cause() != CauseCeiling {
		t.Fatalf("running=%v cause=%v, expected ceiling", s.Running(), s.Cause())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be set")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, expected both subscriptions cancelled", loop.Pending())
	}

	framesAtEnd := rec.frames
	for i := 0; i < 10; i++ {
		tick(loop)
	}
	loop.AdvanceBy(10 * time.Second)

	if len(rec.ends) != 1 {
		t.Errorf("game over reported %d times, expected 1", len(rec.ends))
	}
	if rec.ends[0].Cause != CauseCeiling {
		t.Errorf("summary cause = %v, expected ceiling", rec.ends[0].Cause)
	}
	if rec.frames != framesAtEnd || s.Ticks() != 1 || len(s.Pipes()) != 0 {
		t.Error("an ended session must stay frozen")
	}
	if g.Jump() {
		t.Error("Jump() after game over should be ignored")
	}
}

func TestGroundEndsSession(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()

	for i := 0; i < 200 && s.Running(); i++ {
		tick(loop)
	}

	if s.Cause() != CauseGround {
		t.Fatalf("cause = %v, expected ground", s.Cause())
	}
	if b := s.Bird(); b.Y+b.Height <= 480 {
		t.Errorf("bird bottom %v should be past the ground", b.Y+b.Height)
	}
	if rec.events[len(rec.events)-1] != EventGameOver {
		t.Errorf("last event = %v, expected game over", rec.events[len(rec.events)-1])
	}
}

func TestResizeIsReadEveryTick(t *testing.T) {
	area := &Area{W: 640, H: 480}
	g, loop, _ := newTestGame(area, 1)
	s := g.Start()

	tick(loop)
	if !s.Running() {
		t.Fatal("session ended early")
	}

	// Shrinking below the bird puts it through the ground on the next tick
	area.H = 200
	tick(loop)
	if s.Cause() != CauseGround {
		t.Errorf("cause = %v, expected ground after shrink", s.Cause())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	first := g.Start()
	first.bird.Y = -15
	loop.AdvanceBy(2 * time.Second)
	tick(loop)

	s := g.Restart()

	if s == first {
		t.Fatal("Restart() must create a new session")
	}
	if s.Score() != 0 || len(s.Pipes()) != 0 || !s.Running() {
		t.Errorf("restarted: score=%d pipes=%d running=%v", s.Score(), len(s.Pipes()), s.Running())
	}
	if b := s.Bird(); b.Y != 240 || b.Velocity != 0 {
		t.Errorf("restarted bird y=%v v=%v, expected 240 and 0", b.Y, b.Velocity)
	}
	if rec.events[len(rec.events)-1] != EventRestarted {
		t.Errorf("last event = %v, expected restarted", rec.events[len(rec.events)-1])
	}
	if first.Cause() != CauseCeiling {
		t.Errorf("old session cause changed to %v", first.Cause())
	}
}

func TestRestartWhileRunningAbortsPrevious(t *testing.T) {
	g, loop, _ := newTestGame(Area{W: 640, H: 480}, 1)
	first := g.Start()
	second := g.Start()

	if first.Running() || first.Cause() != CauseAborted {
		t.Errorf("previous session: running=%v cause=%v", first.Running(), first.Cause())
	}
	if loop.Pending() != 2 {
		t.Errorf("Pending() = %d, expected only the new session's subscriptions", loop.Pending())
	}

	tick(loop)
	if first.Ticks() != 0 || second.Ticks() != 1 {
		t.Errorf("ticks: first=%d second=%d, expected 0 and 1", first.Ticks(), second.Ticks())
	}
	if g.State().GameOver {
		t.Error("an aborted session is not game over")
	}
}

func TestStopCancelsEverything(t *testing.T) {
	g, loop, rec := newTestGame(Area{W: 640, H: 480}, 1)
	s := g.Start()
	g.Stop()

	if s.Running() || s.Cause() != CauseAborted {
		t.Errorf("stopped: running=%v cause=%v", s.Running(), s.Cause())
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", loop.Pending())
	}
	if len(rec.ends) != 0 {
		t.Error("Stop() must not report game over")
	}
}

// hover flaps whenever the bird sinks below its start height.
func hover(g *Game, loop *clock.Loop, frames int) {
	for i := 0; i < frames; i++ {
		s := g.Session()
		if !s.Running() {
			return
		}
		if b := s.Bird(); b.Y > 240 && b.Velocity > 0 {
			g.Jump()
		}
		tick(loop)
	}
}

func TestGapHeldEveryTick(t *testing.T) {
	area := Area{W: 640, H: 336}
	g, loop, _ := newTestGame(area, 99)
	s := g.Start()
	gap := testConfig().Obstacles.GapSize

	observed := 0
	for i := 0; i < 900 && s.Running(); i++ {
		if b := s.Bird(); b.Y > area.H/2 && b.Velocity > 0 {
			g.Jump()
		}
		tick(loop)
		for _, p := range s.Pipes() {
			if p.GapBottom()-p.GapTop != gap {
				t.Fatalf("tick %d, pipe %d (gap top %v): gap = %v, expected %v",
					s.Ticks(), p.ID, p.GapTop, p.GapBottom()-p.GapTop, gap)
			}
			observed++
		}
	}
	if observed == 0 {
		t.Fatal("no pipes observed during the run")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1, loop1, _ := newTestGame(Area{W: 640, H: 480}, 12345)
	g2, loop2, _ := newTestGame(Area{W: 640, H: 480}, 12345)
	s1 := g1.Start()
	s2 := g2.Start()

	hover(g1, loop1, 1200)
	hover(g2, loop2, 1200)

	if s1.Score() != s2.Score() || s1.Ticks() != s2.Ticks() || s1.Cause() != s2.Cause() {
		t.Errorf("runs diverged: (%d, %d, %v) vs (%d, %d, %v)",
			s1.Score(), s1.Ticks(), s1.Cause(), s2.Score(), s2.Ticks(), s2.Cause())
	}
	p1, p2 := s1.Pipes(), s2.Pipes()
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].GapTop != p2[i].GapTop || p1[i].X != p2[i].X {
			t.Errorf("pipe %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestGameID(t *testing.T) {
	g, _, _ := newTestGame(Area{W: 640, H: 480}, 1)
	if g.ID() != "flappy" {
		t.Errorf("ID() = %q, expected flappy", g.ID())
	}
	if g.Title() != "Flappy Bird" {
		t.Errorf("Title() = %q, expected Flappy Bird", g.Title())
	}
}

func TestFrameDraw(t *testing.T) {
	f := Frame{
		Area:  Area{W: 160, H: 160},
		Bird:  Bird{X: 50, Y: 72, Width: 34, Height: 24},
		Pipes: []Pipe{NewPipe(120, 32, 32, 64)},
	}
	scr := core.NewScreen(20, 12)
	f.Draw(scr, Scale{CellW: 8, CellH: 16, Top: 1})

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"bird body", 6, 5, BirdBodyChar},
		{"bird head", 9, 6, BirdHeadChar},
		{"upper pipe", 15, 1, PipeChar},
		{"upper cap", 18, 2, PipeCapTop},
		{"gap", 16, 4, ' '},
		{"lower cap", 15, 7, PipeCapBottom},
		{"lower pipe", 18, 10, PipeChar},
		{"hud row untouched", 15, 0, ' '},
		{"below play area untouched", 15, 11, ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scr.Get(tc.x, tc.y); got != tc.want {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if c := scr.GetCell(15, 1).Color; c != core.ColorGreen {
		t.Errorf("pipe color = %v, expected green", c)
	}
}

func TestFrameDrawBirdAboveTop(t *testing.T) {
	f := Frame{
		Area: Area{W: 160, H: 160},
		Bird: Bird{X: 50, Y: -12, Width: 34, Height: 24},
	}
	scr := core.NewScreen(20, 11)
	f.Draw(scr, Scale{CellW: 8, CellH: 16, Top: 1})

	if got := scr.Get(9, 1); got != BirdHeadChar {
		t.Errorf("bird above the top should be pinned to the first row, got %q", got)
	}
	if got := scr.Get(9, 0); got != ' ' {
		t.Errorf("row above the play area was drawn on: %q", got)
	}
}
