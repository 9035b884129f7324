package game

import (
	"slices"

	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
)

// Phase is the top-level state of a race.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseInstructions
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Phases lists every phase in declaration order.
var Phases = [...]Phase{PhaseStart, PhaseInstructions, PhasePlaying, PhasePaused, PhaseGameOver, PhaseWin}

// Finished reports whether the race is over.
func (p Phase) Finished() bool {
	return p == PhaseGameOver || p == PhaseWin
}

// inputTransitions maps the events each phase reacts to onto the phase they
// lead to. Events missing from the table are ignored.
var inputTransitions = map[Phase]map[input.Event]Phase{
	PhaseStart: {
		input.ConfirmStart:     PhasePlaying,
		input.ShowInstructions: PhaseInstructions,
	},
	PhaseInstructions: {
		input.ConfirmStart: PhasePlaying,
		input.Back:         PhaseStart,
	},
	PhasePlaying: {
		input.Pause: PhasePaused,
	},
	PhasePaused: {
		input.Resume: PhasePlaying,
		input.Back:   PhaseStart,
	},
	PhaseGameOver: {
		input.ConfirmRestart: PhaseStart,
	},
	PhaseWin: {
		input.ConfirmRestart: PhaseStart,
	},
}

// validTransitions includes the outcome-driven moves out of PhasePlaying.
var validTransitions = map[Phase][]Phase{
	PhaseStart:        {PhasePlaying, PhaseInstructions},
	PhaseInstructions: {PhasePlaying, PhaseStart},
	PhasePlaying:      {PhasePaused, PhaseGameOver, PhaseWin},
	PhasePaused:       {PhasePlaying, PhaseStart},
	PhaseGameOver:     {PhaseStart},
	PhaseWin:          {PhaseStart},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	return slices.Contains(validTransitions[from], to)
}

// Target returns the phase an event leads to from the given phase.
func Target(from Phase, e input.Event) (Phase, bool) {
	to, ok := inputTransitions[from][e]
	return to, ok
}

// Machine owns the current phase. It is the only place a phase changes.
type Machine struct {
	phase   Phase
	entered int // Tick at which the current phase was entered
}

// NewMachine returns a machine sitting on the start screen.
func NewMachine() *Machine {
	return &Machine{phase: PhaseStart}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Entered returns the tick at which the current phase began.
func (m *Machine) Entered() int {
	return m.entered
}

// Fire applies an input event. It returns the phase left and whether the
// event caused a transition.
func (m *Machine) Fire(e input.Event, tick int) (Phase, bool) {
	to, ok := Target(m.phase, e)
	if !ok {
		return m.phase, false
	}
	from := m.phase
	return from, m.TransitionPhase(to, tick)
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (m *Machine) TransitionPhase(to Phase, tick int) bool {
	if !CanTransition(m.phase, to) {
		return false
	}
	m.phase = to
	m.entered = tick
	return true
}
