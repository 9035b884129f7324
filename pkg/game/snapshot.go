package game

import (
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// HUD carries the numbers shown over the road.
type HUD struct {
	Score            int
	Speed            int
	Multiplier       float64
	Lap              int
	MaxLaps          int
	CarsPassed       int
	ObstaclesAvoided int
	Frames           int
}

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. Renderers never touch the session itself.
type Snapshot struct {
	Phase              Phase
	Tick               int
	Flash              int // Flash timer of the current screen
	InstructionsScroll int
	Outcome            Outcome

	CanvasWidth  int
	CanvasHeight int
	Road         road.Road
	Lanes        [3]int
	ScrollOffset int

	Sprites []vehicle.Sprite // Drawing order, player last
	HUD     HUD
}

// Blink reports whether flashing text is shown at the current flash timer.
func (s Snapshot) Blink() bool {
	return (s.Flash/BlinkPeriod)%2 == 0
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	pts := w.Points()
	phase := s.machine.Phase()

	lap := pts.Score()/s.cfg.PointsPerLap + 1
	lap = min(lap, s.cfg.MaxLaps)

	return Snapshot{
		Phase:              phase,
		Tick:               s.tick,
		Flash:              s.flash[phase],
		InstructionsScroll: s.instructionsScroll,
		Outcome:            s.outcome,

		CanvasWidth:  s.cfg.CanvasWidth,
		CanvasHeight: s.cfg.CanvasHeight,
		Road:         w.Road(),
		Lanes:        w.Road().LanePositions(),
		ScrollOffset: w.Scroll().Offset(),

		Sprites: w.Sprites(),
		HUD: HUD{
			Score:            pts.Score(),
			Speed:            w.Player().Speed,
			Multiplier:       pts.SpeedMultiplier(),
			Lap:              lap,
			MaxLaps:          s.cfg.MaxLaps,
			CarsPassed:       pts.CarsPassed(),
			ObstaclesAvoided: pts.ObstaclesAvoided(),
			Frames:           pts.Frames(),
		},
	}
}
