package game

import (
	"github.com/charmbracelet/log"

	"github.com/hpieper24/PixelRacersUpdated/pkg/collision"
	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/lanecontroller"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
	"github.com/hpieper24/PixelRacersUpdated/pkg/score"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// World holds every entity of a race. Traffic and obstacles live in flat
// arenas indexed by their ID and are only ever respawned, never removed.
type World struct {
	cfg    *config.Config
	rng    rng.Source
	logger *log.Logger

	road      road.Road
	player    *vehicle.Player
	traffic   []lanecontroller.TrafficCar
	obstacles []vehicle.Obstacle
	lanes     *lanecontroller.LaneController
	scroll    *road.Scroll
	points    *score.Points

	bodies []*vehicle.Body // Collision view of the traffic arena
}

// StepReport counts what scrolled off the screen during one step.
type StepReport struct {
	CarsPassed       int
	ObstaclesAvoided int
	Earned           int
}

// NewWorld lays out the starting roster described by the config.
func NewWorld(cfg *config.Config, src rng.Source, logger *log.Logger) *World {
	w := &World{
		cfg:    cfg,
		rng:    src,
		logger: logger,
		road:   road.FromConfig(cfg),
		player: vehicle.NewPlayer(cfg),
		lanes:  lanecontroller.NewLaneController(cfg, src, logger),
		scroll: road.NewScroll(cfg.ScrollReset),
		points: score.New(*cfg.Scoring),
	}

	w.traffic = w.lanes.BuildRoster(cfg.Traffic)

	spawn := vehicle.ObstacleSpawnFromConfig(cfg)
	w.obstacles = make([]vehicle.Obstacle, 0, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		x := w.road.LaneCenterX(road.ParseLane(o.Lane))
		w.obstacles = append(w.obstacles, vehicle.NewObstacle(i, x, o.StartY, cfg.ObstacleSize, spawn))
	}

	w.bodies = make([]*vehicle.Body, len(w.traffic))
	for i := range w.traffic {
		w.bodies[i] = &w.traffic[i].Body
	}

	logger.Debug("World created", "traffic", len(w.traffic), "obstacles", len(w.obstacles))
	return w
}

// Reset respawns every entity and zeroes the score, as after a finished
// race. Traffic and cones get fresh random spots, not the starting roster.
func (w *World) Reset() {
	w.player.Respawn(w.rng)
	for i := range w.traffic {
		w.lanes.Respawn(&w.traffic[i])
	}
	for i := range w.obstacles {
		w.obstacles[i].Respawn(w.rng)
	}
	w.scroll.Reset()
	w.points.Reset()
}

// Drive applies a driver command to the player car.
func (w *World) Drive(a vehicle.Action) {
	w.player.Apply(a)
}

// Step advances the road, the score, the traffic and the cones by one tick.
// Anything leaving the bottom of the canvas respawns above it and scores.
func (w *World) Step() StepReport {
	var report StepReport
	speed := w.player.Speed
	height := w.cfg.CanvasHeight

	w.scroll.Update(speed)
	w.points.UpdateSpeed(speed)
	w.points.Tick()

	view := vehicle.ViewOf(w.obstacles)
	for i := range w.traffic {
		car := &w.traffic[i]
		w.lanes.Update(car, view)
		if car.OffScreen(height) {
			w.lanes.Respawn(car)
			report.Earned += w.points.AddCarPass()
			report.CarsPassed++
		}
	}

	for i := range w.obstacles {
		o := &w.obstacles[i]
		o.Advance(speed)
		if o.OffScreen(height) {
			o.Respawn(w.rng)
			report.Earned += w.points.AddObstacleAvoided()
			report.ObstaclesAvoided++
		}
	}

	return report
}

// Collisions checks the player against the traffic and the cones.
func (w *World) Collisions() collision.Result {
	return collision.Check(&w.player.Body, w.bodies, w.Obstacles())
}

// Penalize applies the crash penalty to the player speed and the score and
// returns the score left.
func (w *World) Penalize() int {
	w.player.SetSpeed(w.player.Speed - w.cfg.CollisionPenaltySpeed)
	return w.points.Penalize(w.cfg.CollisionPenaltyScore)
}

// Player returns the player car.
func (w *World) Player() *vehicle.Player {
	return w.player
}

// Road returns the road geometry.
func (w *World) Road() road.Road {
	return w.road
}

// Points returns the score state.
func (w *World) Points() *score.Points {
	return w.points
}

// Scroll returns the lane marking offset.
func (w *World) Scroll() *road.Scroll {
	return w.scroll
}

// Obstacles returns a read-only view of the cone arena.
func (w *World) Obstacles() vehicle.ObstacleView {
	return vehicle.ViewOf(w.obstacles)
}

// Traffic returns a copy of the traffic arena.
func (w *World) Traffic() []lanecontroller.TrafficCar {
	cars := make([]lanecontroller.TrafficCar, len(w.traffic))
	copy(cars, w.traffic)
	return cars
}

// Sprites describes every visible entity, cones first and the player last,
// in drawing order.
func (w *World) Sprites() []vehicle.Sprite {
	sprites := make([]vehicle.Sprite, 0, len(w.obstacles)+len(w.traffic)+1)
	for o := range w.Obstacles().Active() {
		sprites = append(sprites, o.Sprite())
	}
	for i := range w.traffic {
		sprites = append(sprites, w.traffic[i].Sprite())
	}
	return append(sprites, w.player.Sprite())
}
