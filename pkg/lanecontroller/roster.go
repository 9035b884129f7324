package lanecontroller

import (
	"strings"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// BuildRoster creates the starting traffic described by the race config.
// Entries without a lane (or with lane "random") start on a random lane.
// IDs follow the order of the entries.
func (lc *LaneController) BuildRoster(entries []config.Traffic) []TrafficCar {
	cars := make([]TrafficCar, 0, len(entries))
	for i, entry := range entries {
		paint := vehicle.ParsePaint(entry.Paint)
		if entry.Paint == "" {
			paint = vehicle.ParsePaint(entry.Name)
		}

		lane := strings.ToLower(strings.TrimSpace(entry.Lane))
		if lane == "" || lane == "random" {
			cars = append(cars, lc.NewTrafficCar(i, entry.Speed, entry.StartY, paint))
			continue
		}
		cars = append(cars, lc.NewTrafficCarInLane(i, entry.Speed, entry.StartY, paint, road.ParseLane(lane)))
	}

	lc.logger.Debug("Roster built", "cars", len(cars))
	return cars
}
