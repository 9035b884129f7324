// Package collision holds the geometric predicates that decide when the
// player has crashed. All functions are pure.
package collision

import (
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// Result reports what the player hit during one tick. Both may be true.
type Result struct {
	HitVehicle  bool
	HitObstacle bool
}

// Any reports whether anything was hit.
func (r Result) Any() bool {
	return r.HitVehicle || r.HitObstacle
}

// Vehicles reports whether two cars touch. Cars are treated as circles of
// radius size/2; touching exactly at the rim is not a collision.
func Vehicles(a, b *vehicle.Body) bool {
	dx := a.Loc.X - b.Loc.X
	dy := a.Loc.Y - b.Loc.Y
	reach := a.Half() + b.Half()
	return dx*dx+dy*dy < reach*reach
}

// Obstacle reports whether a car overlaps a cone's bounding box. Inactive
// cones never collide.
func Obstacle(car *vehicle.Body, o *vehicle.Obstacle) bool {
	if !o.Active {
		return false
	}

	carLeft, carRight := car.Loc.X-car.Half(), car.Loc.X+car.Half()
	carTop, carBottom := car.Loc.Y-car.Half(), car.Loc.Y+car.Half()

	obsLeft, obsRight := o.Loc.X-o.Half(), o.Loc.X+o.Half()
	obsTop, obsBottom := o.Loc.Y-o.Half(), o.Loc.Y+o.Half()

	return carRight > obsLeft &&
		carLeft < obsRight &&
		carBottom > obsTop &&
		carTop < obsBottom
}

// Check scans the traffic and the obstacles for anything touching the
// player. Each scan stops at its first hit.
func Check(player *vehicle.Body, traffic []*vehicle.Body, obstacles vehicle.ObstacleView) Result {
	var res Result

	for _, car := range traffic {
		if Vehicles(player, car) {
			res.HitVehicle = true
			break
		}
	}

	for o := range obstacles.Active() {
		if Obstacle(player, &o) {
			res.HitObstacle = true
			break
		}
	}

	return res
}
