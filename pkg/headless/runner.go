// Package headless runs races without a screen, for soak runs, scripted
// replays and benchmarks of the simulation.
package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
)

// Options control a headless run.
type Options struct {
	MaxTicks int           // Stop after this many ticks; 0 means no limit
	Interval time.Duration // Pace between ticks; 0 runs as fast as possible
	Script   input.Script  // Extra events keyed by tick, applied before the pilot
}

// Result summarizes a finished run.
type Result struct {
	Phase            game.Phase
	Outcome          game.Outcome
	Score            int
	CarsPassed       int
	ObstaclesAvoided int
	Ticks            int
	Elapsed          time.Duration
}

// Runner drives a session until the race ends or the tick budget runs out.
type Runner struct {
	session *game.Session
	pilot   *Autopilot
	clock   quartz.Clock
	logger  *log.Logger
	opts    Options
}

// NewRunner creates a runner. A nil pilot leaves the car to the script.
func NewRunner(session *game.Session, pilot *Autopilot, clock quartz.Clock, logger *log.Logger, opts Options) *Runner {
	return &Runner{
		session: session,
		pilot:   pilot,
		clock:   clock,
		logger:  logger.WithPrefix("headless"),
		opts:    opts,
	}
}

// Run ticks the session, starting the race on the first tick. It returns
// the partial result together with ctx.Err() when cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := r.clock.Now()
	r.logger.Info("Run started", "max_ticks", r.opts.MaxTicks, "interval", r.opts.Interval)

	var ticker *quartz.Ticker
	if r.opts.Interval > 0 {
		ticker = r.clock.NewTicker(r.opts.Interval, "headless", "tick")
		defer ticker.Stop()
	}

	ticks := 0
	for r.opts.MaxTicks == 0 || ticks < r.opts.MaxTicks {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return r.result(ticks, start), ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return r.result(ticks, start), err
		}

		r.session.Tick(r.events(ticks))
		ticks++

		if r.session.Phase().Finished() {
			break
		}
	}

	res := r.result(ticks, start)
	r.logger.Info("Run finished",
		"phase", res.Phase,
		"score", res.Score,
		"ticks", res.Ticks,
		"elapsed", res.Elapsed)
	return res, nil
}

func (r *Runner) events(tick int) []input.Event {
	var events []input.Event
	if r.session.Phase() == game.PhaseStart {
		events = append(events, input.ConfirmStart)
	}
	events = append(events, r.opts.Script.At(tick)...)
	if r.pilot != nil {
		events = append(events, r.pilot.Decide(r.session.World())...)
	}
	return events
}

func (r *Runner) result(ticks int, start time.Time) Result {
	pts := r.session.World().Points()
	return Result{
		Phase:            r.session.Phase(),
		Outcome:          r.session.Outcome(),
		Score:            pts.Score(),
		CarsPassed:       pts.CarsPassed(),
		ObstaclesAvoided: pts.ObstaclesAvoided(),
		Ticks:            ticks,
		Elapsed:          r.clock.Since(start),
	}
}
