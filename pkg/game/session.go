// Package game ties the simulation together: a phase machine driven by
// logical input events, the world it advances while playing, and the
// read-only snapshot handed to renderers after every tick.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

const (
	// InstructionsScrollReset is where the instructions screen scroll wraps.
	InstructionsScrollReset = 300
	// BlinkPeriod is how many ticks flashing text stays on or off.
	BlinkPeriod = 15
)

// Outcome records how the last race ended.
type Outcome struct {
	FinalScore  int
	HitVehicle  bool
	HitObstacle bool
}

// Session is one player's run of races. It is not safe for concurrent use;
// a single tick loop owns it.
type Session struct {
	cfg     *config.Config
	logger  *log.Logger
	machine *Machine
	world   *World

	tick               int
	outcome            Outcome
	flash              [len(Phases)]int
	instructionsScroll int
}

// NewSession builds a session on the start screen.
func NewSession(cfg *config.Config, src rng.Source, logger *log.Logger) *Session {
	logger = logger.WithPrefix("race")
	return &Session{
		cfg:     cfg,
		logger:  logger,
		machine: NewMachine(),
		world:   NewWorld(cfg, src, logger),
	}
}

// Tick runs one simulation step: the events are applied in order, then the
// current phase advances. Phase changes made by the events are already in
// effect for the advance.
func (s *Session) Tick(events []input.Event) {
	s.tick++

	for _, e := range events {
		s.handle(e)
	}

	switch phase := s.machine.Phase(); phase {
	case PhasePlaying:
		s.play()
	case PhaseInstructions:
		s.flash[phase]++
		s.instructionsScroll++
		if s.instructionsScroll > InstructionsScrollReset {
			s.instructionsScroll = 0
		}
	default:
		s.flash[phase]++
	}
}

func (s *Session) handle(e input.Event) {
	phase := s.machine.Phase()

	if phase == PhasePlaying {
		if a, ok := action(e); ok {
			s.world.Drive(a)
			return
		}
	}

	from, moved := s.machine.Fire(e, s.tick)
	if !moved {
		return
	}
	to := s.machine.Phase()
	s.logger.Info("Phase changed", "from", from, "to", to, "event", e)

	if to == PhaseStart && from.Finished() {
		s.world.Reset()
		s.outcome = Outcome{}
		s.logger.Info("Race reset")
	}
}

func (s *Session) play() {
	report := s.world.Step()
	if report.CarsPassed > 0 || report.ObstaclesAvoided > 0 {
		s.logger.Debug("Scored",
			"cars", report.CarsPassed,
			"cones", report.ObstaclesAvoided,
			"points", report.Earned)
	}

	if hit := s.world.Collisions(); hit.Any() {
		s.outcome = Outcome{
			FinalScore:  s.world.Penalize(),
			HitVehicle:  hit.HitVehicle,
			HitObstacle: hit.HitObstacle,
		}
		s.machine.TransitionPhase(PhaseGameOver, s.tick)
		s.logger.Info("Crashed",
			"score", s.outcome.FinalScore,
			"car", hit.HitVehicle,
			"cone", hit.HitObstacle)
		return
	}

	if score := s.world.Points().Score(); score >= s.cfg.WinScore() {
		s.outcome = Outcome{FinalScore: score}
		s.machine.TransitionPhase(PhaseWin, s.tick)
		s.logger.Info("Finished", "score", score, "laps", s.cfg.MaxLaps)
	}
}

func action(e input.Event) (vehicle.Action, bool) {
	switch e {
	case input.SteerLeft:
		return vehicle.SteerLeft, true
	case input.SteerRight:
		return vehicle.SteerRight, true
	case input.Accelerate:
		return vehicle.Accelerate, true
	case input.Decelerate:
		return vehicle.Decelerate, true
	}
	return 0, false
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.machine.Phase()
}

// Outcome returns how the last race ended. It is zero while a race runs.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Score returns the live score.
func (s *Session) Score() int {
	return s.world.Points().Score()
}

// Ticks returns how many ticks the session has run.
func (s *Session) Ticks() int {
	return s.tick
}

// World exposes the entities, for the autopilot and tests.
func (s *Session) World() *World {
	return s.world
}
