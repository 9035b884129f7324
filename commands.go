package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/gdamore/tcell/v2"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/headless"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
	"github.com/hpieper24/PixelRacersUpdated/pkg/terminal"
	"github.com/hpieper24/PixelRacersUpdated/pkg/ui"
)

// PlayCmd opens the ebiten window.
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	r, err := g.setup()
	if err != nil {
		return err
	}
	defer r.close()

	session := game.NewSession(r.cfg, r.src, r.logger)
	if err := ui.NewGame(session, r.seed, r.logger).Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	fmt.Println(summary(session.Score(), session.Phase() == game.PhaseGameOver))
	return nil
}

// TermCmd races inside the terminal. Logs go to --log-file only, since
// stderr shares the screen.
type TermCmd struct{}

func (c *TermCmd) Run(g *Globals) error {
	if g.LogFile == "" {
		g.LogFile = os.DevNull
	}
	r, err := g.setup()
	if err != nil {
		return err
	}
	defer r.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(r.cfg, r.src, r.logger)
	if err := terminal.New(screen, session, quartz.NewReal(), r.logger).Run(ctx); err != nil {
		return err
	}

	fmt.Println(summary(session.Score(), session.Phase() == game.PhaseGameOver))
	return nil
}

// SimulateCmd runs a headless race.
type SimulateCmd struct {
	Ticks  int           `default:"5000" help:"Tick budget (0 for no limit)"`
	Cruise int           `default:"5" help:"Autopilot cruising speed"`
	Script string        `type:"existingfile" help:"Scripted events file, one 'tick event...' line each"`
	Pace   time.Duration `default:"0s" help:"Wall-clock delay between ticks"`
	Manual bool          `help:"Disable the autopilot and drive from the script only"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	r, err := g.setup()
	if err != nil {
		return err
	}
	defer r.close()

	opts := headless.Options{MaxTicks: c.Ticks, Interval: c.Pace}
	if c.Script != "" {
		src, err := os.ReadFile(c.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		opts.Script = input.ParseScript(string(src))
	}

	var pilot *headless.Autopilot
	if !c.Manual {
		pilot = headless.NewAutopilot(r.cfg, c.Cruise)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(r.cfg, r.src, r.logger)
	res, err := headless.NewRunner(session, pilot, quartz.NewReal(), r.logger, opts).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	r.logger.Info("Simulation finished",
		"phase", res.Phase,
		"ticks", res.Ticks,
		"cars_passed", res.CarsPassed,
		"obstacles_avoided", res.ObstaclesAvoided,
		"elapsed", res.Elapsed)

	score := res.Score
	if res.Phase.Finished() {
		score = res.Outcome.FinalScore
	}
	fmt.Println(summary(score, res.Phase == game.PhaseGameOver))
	return nil
}
