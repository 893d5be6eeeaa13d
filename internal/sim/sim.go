// Package sim runs flappy sessions headlessly on virtual time. A pilot
// decides each jump; a clock.Loop stands in for the display and the wall
// clock, so a run is fully determined by its seed, pilot and config.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// DefaultMaxTicks caps a run at five minutes of play at 60 fps.
const DefaultMaxTicks = 5 * 60 * 60

// ctxCheckEvery is how many ticks pass between context checks.
const ctxCheckEvery = 256

// Options configures a run.
type Options struct {
	Config   config.FlappyConfig
	Area     flappy.Area
	Seed     int64 // 0 derives one from the clock
	Pilot    registry.Pilot
	MaxTicks int         // <= 0 means DefaultMaxTicks
	Logger   *log.Logger // nil discards logs
}

// Result describes one finished run.
type Result struct {
	Session uuid.UUID
	Seed    int64
	Pilot   string
	Score   int
	Ticks   int
	Cause   flappy.EndCause
	Limited bool          // Stopped by MaxTicks rather than game over
	Elapsed time.Duration // Virtual play time
}

// Outcome is the cause shown to users: the end cause, or "limit" when the
// run hit MaxTicks.
func (r Result) Outcome() string {
	if r.Limited {
		return "limit"
	}
	return r.Cause.String()
}

func (o *Options) validate() error {
	var errs []error
	if o.Pilot == nil {
		errs = append(errs, errors.New("pilot is required"))
	}
	if o.Area.W <= 0 || o.Area.H <= 0 {
		errs = append(errs, fmt.Errorf("play area %vx%v must be positive", o.Area.W, o.Area.H))
	}
	if err := o.Config.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("sim: invalid options: %w", errors.Join(errs...))
	}

	if o.MaxTicks <= 0 {
		o.MaxTicks = DefaultMaxTicks
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return nil
}

// Run plays one session to game over or MaxTicks. Before every tick the
// pilot sees the current frame and may jump; then the virtual clock moves
// one frame period forward and the frame is processed.
func Run(ctx context.Context, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	return run(ctx, opts)
}

func run(ctx context.Context, opts Options) (Result, error) {
	start := time.Unix(0, 0)
	loop := clock.NewLoop(start)
	period := time.Second / time.Duration(opts.Config.Display.TickRate)

	g := flappy.New(flappy.Options{
		Config:    opts.Config,
		Scheduler: loop,
		Geometry:  opts.Area,
		Logger:    opts.Logger,
		Seed:      opts.Seed,
	})
	s := g.Start()
	opts.Pilot.Reset(s.Summary().Seed)

	limited := false
	for s.Running() {
		if s.Ticks() >= opts.MaxTicks {
			g.Stop()
			limited = true
			break
		}
		if s.Ticks()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				g.Stop()
				return Result{}, fmt.Errorf("sim: seed %d: %w", s.Summary().Seed, err)
			}
		}

		if opts.Pilot.ShouldFlap(s.Frame(opts.Area)) {
			g.Jump()
		}
		loop.AdvanceBy(period)
		loop.Frame()
	}

	sum := s.Summary()
	res := Result{
		Session: sum.ID,
		Seed:    sum.Seed,
		Pilot:   opts.Pilot.ID(),
		Score:   sum.Score,
		Ticks:   sum.Ticks,
		Cause:   sum.Cause,
		Limited: limited,
		Elapsed: loop.Now().Sub(start),
	}
	opts.Logger.Info("run finished",
		"seed", res.Seed, "pilot", res.Pilot, "score", res.Score,
		"ticks", res.Ticks, "frames", loop.FrameCount(), "outcome", res.Outcome())
	return res, nil
}

// RunMany plays runs sessions with consecutive seeds starting at
// opts.Seed, skipping 0, reusing the pilot. It stops at the first error and returns
// the results gathered so far.
func RunMany(ctx context.Context, opts Options, runs int) ([]Result, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("sim: runs must be positive, got %d", runs)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	results := make([]Result, 0, runs)
	seed := opts.Seed
	for i := 0; i < runs; i++ {
		if seed == 0 {
			seed++ // 0 would ask flappy.New for a clock-derived seed
		}
		opts.Seed = seed
		res, err := run(ctx, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		seed++
	}
	return results, nil
}

// Stats aggregates a batch of results.
type Stats struct {
	Runs      int
	Best      int
	Mean      float64
	MeanTicks float64
}

// Summarize computes Stats over results.
func Summarize(results []Result) Stats {
	st := Stats{Runs: len(results)}
	if st.Runs == 0 {
		return st
	}
	total, ticks := 0, 0
	for _, r := range results {
		total += r.Score
		ticks += r.Ticks
		st.Best = max(st.Best, r.Score)
	}
	st.Mean = float64(total) / float64(st.Runs)
	st.MeanTicks = float64(ticks) / float64(st.Runs)
	return st
}
