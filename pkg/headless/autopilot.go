package headless

import (
	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
	"github.com/hpieper24/PixelRacersUpdated/pkg/lanecontroller"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
)

// Autopilot drives the player car: it keeps a cruising speed and steers for
// the nearest lane with nothing coming down it.
type Autopilot struct {
	cruise    int // Speed held while the road is clear
	lookAhead int // How far up the screen threats are considered
}

// NewAutopilot returns a pilot cruising at the given speed. The pilot
// watches twice as far ahead as the traffic does.
func NewAutopilot(cfg *config.Config, cruise int) *Autopilot {
	return &Autopilot{
		cruise:    min(max(cruise, cfg.MinSpeed), cfg.MaxSpeed),
		lookAhead: 2 * cfg.LookAhead,
	}
}

// Decide returns the driving events for the next tick.
func (a *Autopilot) Decide(w *game.World) []input.Event {
	p := w.Player()
	lanes := w.Road().LanePositions()

	current := nearestLane(lanes, p.Loc.X)
	target, clear := a.pick(w, lanes, current)

	var events []input.Event

	dx := lanes[target] - p.Loc.X
	switch {
	case dx > p.Speed/2:
		events = append(events, input.SteerRight)
	case -dx > p.Speed/2:
		events = append(events, input.SteerLeft)
	}

	switch {
	case !clear:
		events = append(events, input.Decelerate)
	case p.Speed < a.cruise:
		events = append(events, input.Accelerate)
	case p.Speed > a.cruise:
		events = append(events, input.Decelerate)
	}

	return events
}

// pick returns the lane to head for and whether it is clear. The current
// lane wins ties, then the lane nearest to it, left before right.
func (a *Autopilot) pick(w *game.World, lanes [3]int, current road.Lane) (road.Lane, bool) {
	order := []road.Lane{current}
	for dist := 1; dist < len(lanes); dist++ {
		for _, l := range []road.Lane{current - road.Lane(dist), current + road.Lane(dist)} {
			if l >= road.Left && l <= road.Right {
				order = append(order, l)
			}
		}
	}

	for _, l := range order {
		if !a.Threatened(w, lanes[l]) {
			return l, true
		}
	}
	return current, false
}

// Threatened reports whether a cone or a traffic car is coming down the
// lane at laneX within the look-ahead distance of the player.
func (a *Autopilot) Threatened(w *game.World, laneX int) bool {
	p := w.Player()
	fromY, toY := p.Loc.Y-a.lookAhead, p.Loc.Y+p.Size

	if lanecontroller.ObstacleInLane(laneX, p.Half(), fromY, toY, w.Obstacles()) {
		return true
	}

	for _, car := range w.Traffic() {
		dx := car.Loc.X - laneX
		if dx < 0 {
			dx = -dx
		}
		if dx < car.Size && car.Loc.Y > fromY && car.Loc.Y < toY {
			return true
		}
	}
	return false
}

func nearestLane(lanes [3]int, x int) road.Lane {
	best, bestDist := road.Center, -1
	for _, l := range road.Lanes {
		d := lanes[l] - x
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}
