package lanecontroller

import (
	"github.com/charmbracelet/log"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// TrafficCar represents an autonomous car driving down the road
type TrafficCar struct {
	vehicle.Body
	ID         int       // Stable index in the traffic arena
	TargetLane road.Lane // Lane the car is heading for

	laneChangeTimer int    // Ticks since the last decision
	laneChangeDelay int    // Ticks between decisions
	changingLane    bool   // Still sliding toward TargetLane
	lanes           [3]int // Center x of each lane
	spawnYRange     int
}

// ChangingLane reports whether the car is still sliding between lanes.
func (tc *TrafficCar) ChangingLane() bool {
	return tc.changingLane
}

// Timer returns the ticks elapsed since the last lane decision.
func (tc *TrafficCar) Timer() int {
	return tc.laneChangeTimer
}

// LaneX returns the center x of a lane. Unknown lanes resolve to the center.
func (tc *TrafficCar) LaneX(lane road.Lane) int {
	switch lane {
	case road.Left, road.Center, road.Right:
		return tc.lanes[lane]
	default:
		return tc.lanes[road.Center]
	}
}

// placeOn puts the car exactly on a lane with no transition pending.
func (tc *TrafficCar) placeOn(lane road.Lane) {
	tc.TargetLane = lane
	tc.Loc.X = tc.LaneX(lane)
	tc.changingLane = false
}

// Respawn moves the car above the visible area on a random lane and clears
// its decision timer.
func (tc *TrafficCar) Respawn(src rng.Source) {
	tc.placeOn(road.Lanes[src.Intn(len(road.Lanes))])
	tc.Loc.Y = -tc.Size - src.Intn(tc.spawnYRange)
	tc.Prev = tc.Loc
	tc.laneChangeTimer = 0
}

// Sprite implements vehicle.Vehicle.
func (tc *TrafficCar) Sprite() vehicle.Sprite {
	return vehicle.Sprite{ID: tc.ID, Kind: vehicle.KindTraffic, X: tc.Loc.X, Y: tc.Loc.Y, Size: tc.Size, Paint: tc.Paint}
}

// LaneController decides when and where traffic cars change lanes. Every
// car is judged on its own; cars do not avoid each other, only cones.
type LaneController struct {
	road        road.Road
	rng         rng.Source
	logger      *log.Logger
	carSize     int
	delay       int // Ticks between decisions
	threshold   int // Chance in percent of a voluntary lane change
	step        int // Horizontal pixels per tick while changing lanes
	snap        int // Distance at which a car snaps onto its lane
	lookAhead   int // How far ahead a cone blocks a lane
	spawnYRange int
}

// NewLaneController creates a controller drawing from src.
func NewLaneController(cfg *config.Config, src rng.Source, logger *log.Logger) *LaneController {
	return &LaneController{
		road:        road.FromConfig(cfg),
		rng:         src,
		logger:      logger.WithPrefix("traffic"),
		carSize:     cfg.CarSize,
		delay:       cfg.LaneChangeDelay,
		threshold:   cfg.LaneChangeThreshold,
		step:        cfg.LaneChangeStep,
		snap:        cfg.LaneSnapThreshold,
		lookAhead:   cfg.LookAhead,
		spawnYRange: cfg.TrafficSpawnYRange,
	}
}

// NewTrafficCar creates a car on a uniformly random lane.
func (lc *LaneController) NewTrafficCar(id, speed, startY int, paint vehicle.Paint) TrafficCar {
	return lc.NewTrafficCarInLane(id, speed, startY, paint, road.Lanes[lc.rng.Intn(len(road.Lanes))])
}

// NewTrafficCarInLane creates a car sitting exactly on the given lane.
func (lc *LaneController) NewTrafficCarInLane(id, speed, startY int, paint vehicle.Paint, lane road.Lane) TrafficCar {
	tc := TrafficCar{
		Body: vehicle.Body{
			Loc:   vehicle.Point{Y: startY},
			Size:  lc.carSize,
			Speed: speed,
			Paint: paint,
		},
		ID:              id,
		laneChangeDelay: lc.delay,
		lanes:           lc.road.LanePositions(),
		spawnYRange:     lc.spawnYRange,
	}
	tc.placeOn(lane)
	tc.Prev = tc.Loc
	return tc
}

// Update runs one tick for a car: drive forward, maybe pick a new lane,
// then slide toward the target lane.
func (lc *LaneController) Update(tc *TrafficCar, obstacles vehicle.ObstacleView) {
	tc.MoveBy(0, tc.Speed)
	tc.laneChangeTimer++

	if !tc.changingLane && tc.laneChangeTimer >= tc.laneChangeDelay {
		tc.laneChangeTimer = 0
		lc.decide(tc, obstacles)
	}

	lc.slide(tc)
}

// Respawn puts a car that left the screen back above it.
func (lc *LaneController) Respawn(tc *TrafficCar) {
	tc.Respawn(lc.rng)
	lc.logger.Debug("Traffic respawned", "car", tc.ID, "lane", tc.TargetLane, "y", tc.Loc.Y)
}

// IsLaneBlocked reports whether an active cone sits in lane within the
// look-ahead distance in front of the car.
func (lc *LaneController) IsLaneBlocked(tc *TrafficCar, lane road.Lane, obstacles vehicle.ObstacleView) bool {
	return ObstacleInLane(tc.LaneX(lane), 0, tc.Loc.Y, tc.Loc.Y+lc.lookAhead, obstacles)
}

// ObstacleInLane reports whether an active cone lies within half its size
// plus margin of laneX, with its center strictly between fromY and toY.
func ObstacleInLane(laneX, margin, fromY, toY int, obstacles vehicle.ObstacleView) bool {
	for o := range obstacles.Active() {
		dx := o.Loc.X - laneX
		if dx < 0 {
			dx = -dx
		}
		if dx > o.Half()+margin {
			continue
		}
		if o.Loc.Y > fromY && o.Loc.Y < toY {
			return true
		}
	}
	return false
}

func (lc *LaneController) decide(tc *TrafficCar, obstacles vehicle.ObstacleView) {
	current := tc.TargetLane

	var blocked [3]bool
	for _, lane := range road.Lanes {
		blocked[lane] = lc.IsLaneBlocked(tc, lane, obstacles)
	}
	currentBlocked := blocked[current]

	// A clear lane is only left voluntarily, threshold percent of the time.
	if !currentBlocked && lc.rng.Intn(100) >= lc.threshold {
		return
	}

	candidates := make([]road.Lane, 0, len(road.Lanes))
	for _, lane := range road.Lanes {
		if lane != current && !blocked[lane] {
			candidates = append(candidates, lane)
		}
	}

	if len(candidates) == 0 {
		if currentBlocked {
			lc.logger.Debug("No free lane, holding", "car", tc.ID, "lane", current)
		}
		return
	}

	tc.TargetLane = candidates[lc.rng.Intn(len(candidates))]
	lc.logger.Debug("Lane change",
		"car", tc.ID,
		"from", current,
		"to", tc.TargetLane,
		"forced", currentBlocked)
}

func (lc *LaneController) slide(tc *TrafficCar) {
	target := tc.LaneX(tc.TargetLane)

	// A step never carries the car past its lane.
	switch {
	case tc.Loc.X < target-lc.snap:
		tc.Loc.X += min(lc.step, target-tc.Loc.X)
		tc.changingLane = true
	case tc.Loc.X > target+lc.snap:
		tc.Loc.X -= min(lc.step, tc.Loc.X-target)
		tc.changingLane = true
	default:
		tc.Loc.X = target
		tc.changingLane = false
	}
}
