package lanecontroller

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

// Stock lanes sit at x = 200, 300 and 400.
const (
	leftX   = 200
	centerX = 300
	rightX  = 400
)

func newController(src rng.Source) *LaneController {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewLaneController(config.Default(), src, logger)
}

func cone(id, x, y int) vehicle.Obstacle {
	return vehicle.NewObstacle(id, x, y, 30, vehicle.ObstacleSpawn{})
}

// readyToDecide winds the timer so that the next Update makes a decision.
func readyToDecide(tc *TrafficCar) {
	tc.laneChangeTimer = tc.laneChangeDelay - 1
}

func TestNewTrafficCarSitsOnALane(t *testing.T) {
	for draw, want := range []int{leftX, centerX, rightX} {
		lc := newController(rng.NewSequence(draw))
		tc := lc.NewTrafficCar(0, 4, -50, vehicle.PaintBlue)

		assert.Equal(t, want, tc.Loc.X)
		assert.Equal(t, -50, tc.Loc.Y)
		assert.Equal(t, road.Lanes[draw], tc.TargetLane)
		assert.False(t, tc.ChangingLane())
		assert.Equal(t, 0, tc.Timer())
	}
}

func TestLaneXDefaultsToCenter(t *testing.T) {
	lc := newController(rng.NewSequence(0))
	tc := lc.NewTrafficCar(0, 4, 0, vehicle.PaintBlue)
	assert.Equal(t, centerX, tc.LaneX(road.Lane(7)))
	assert.Equal(t, centerX, tc.LaneX(road.Lane(-1)))
}

func TestIsLaneBlocked(t *testing.T) {
	lc := newController(rng.NewSequence(1))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)

	tests := []struct {
		name string
		cone vehicle.Obstacle
		want bool
	}{
		{"dead ahead", cone(0, centerX, 200), true},
		{"at the edge of the lane", cone(0, centerX+15, 200), true},
		{"just outside the lane", cone(0, centerX+16, 200), false},
		{"level with the car", cone(0, centerX, 100), false},
		{"behind the car", cone(0, centerX, 50), false},
		{"at the look-ahead limit", cone(0, centerX, 250), false},
		{"inside the look-ahead", cone(0, centerX, 249), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := vehicle.ViewOf([]vehicle.Obstacle{tt.cone})
			assert.Equal(t, tt.want, lc.IsLaneBlocked(&tc, road.Center, view))
		})
	}

	inactive := cone(0, centerX, 200)
	inactive.Deactivate()
	assert.False(t, lc.IsLaneBlocked(&tc, road.Center, vehicle.ViewOf([]vehicle.Obstacle{inactive})))
}

func TestBlockedLaneForcesChange(t *testing.T) {
	// Draws: lane at construction (center), then the pick among two candidates.
	lc := newController(rng.NewSequence(1, 1))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)
	readyToDecide(&tc)

	view := vehicle.ViewOf([]vehicle.Obstacle{cone(0, centerX, 200)})
	lc.Update(&tc, view)

	assert.Equal(t, road.Right, tc.TargetLane)
	assert.True(t, tc.ChangingLane())
	assert.Equal(t, centerX+2, tc.Loc.X)
	assert.Equal(t, 103, tc.Loc.Y)
	assert.Equal(t, 0, tc.Timer())
}

func TestBlockedLanePicksTheOnlyFreeLane(t *testing.T) {
	lc := newController(rng.NewSequence(1, 0))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)
	readyToDecide(&tc)

	view := vehicle.ViewOf([]vehicle.Obstacle{
		cone(0, centerX, 200),
		cone(1, leftX, 180),
	})
	lc.Update(&tc, view)

	assert.Equal(t, road.Right, tc.TargetLane)
}

func TestAllLanesBlockedHoldsLane(t *testing.T) {
	lc := newController(rng.NewSequence(1))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)
	readyToDecide(&tc)

	view := vehicle.ViewOf([]vehicle.Obstacle{
		cone(0, leftX, 200),
		cone(1, centerX, 200),
		cone(2, rightX, 200),
	})
	lc.Update(&tc, view)

	assert.Equal(t, road.Center, tc.TargetLane)
	assert.Equal(t, centerX, tc.Loc.X)
	assert.False(t, tc.ChangingLane())
}

func TestVoluntaryChangeFollowsThreshold(t *testing.T) {
	empty := vehicle.ViewOf(nil)

	// Threshold is 30: a draw of 29 changes lanes, 30 does not.
	lc := newController(rng.NewSequence(0, 29, 1))
	tc := lc.NewTrafficCar(0, 3, 0, vehicle.PaintBlue)
	readyToDecide(&tc)
	lc.Update(&tc, empty)
	assert.Equal(t, road.Right, tc.TargetLane, "candidates are center and right")

	lc = newController(rng.NewSequence(0, 30))
	tc = lc.NewTrafficCar(0, 3, 0, vehicle.PaintBlue)
	readyToDecide(&tc)
	lc.Update(&tc, empty)
	assert.Equal(t, road.Left, tc.TargetLane)
	assert.False(t, tc.ChangingLane())
}

func TestVoluntaryChangeSkipsBlockedLanes(t *testing.T) {
	lc := newController(rng.NewSequence(0, 0, 5))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintBlue)
	readyToDecide(&tc)

	view := vehicle.ViewOf([]vehicle.Obstacle{cone(0, centerX, 200)})
	lc.Update(&tc, view)

	assert.Equal(t, road.Right, tc.TargetLane)
}

func TestNoDecisionBeforeDelay(t *testing.T) {
	lc := newController(rng.NewSequence(1))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)
	view := vehicle.ViewOf([]vehicle.Obstacle{cone(0, centerX, 200)})

	for i := 1; i < tc.laneChangeDelay; i++ {
		lc.Update(&tc, view)
		assert.Equal(t, i, tc.Timer())
	}
	assert.Equal(t, road.Center, tc.TargetLane)
}

func TestSlideAndSnap(t *testing.T) {
	lc := newController(rng.NewSequence(1))
	tc := lc.NewTrafficCar(0, 3, 0, vehicle.PaintGreen)
	tc.TargetLane = road.Left

	// 100 pixels at 2 per tick: the car snaps once within 2 of the lane.
	ticks := 0
	for tc.Loc.X != leftX {
		lc.Update(&tc, vehicle.ViewOf(nil))
		ticks++
		require.Less(t, ticks, 100)
		if tc.Loc.X != leftX {
			assert.True(t, tc.ChangingLane())
		}
	}
	assert.Equal(t, 50, ticks)
	assert.False(t, tc.ChangingLane())
}

func TestWideStepLandsOnLane(t *testing.T) {
	cfg := config.Default()
	cfg.LaneChangeStep = 30
	lc := NewLaneController(cfg, rng.NewSequence(0), log.NewWithOptions(io.Discard, log.Options{}))
	tc := lc.NewTrafficCar(0, 3, 0, vehicle.PaintGreen)
	tc.TargetLane = road.Center

	var xs []int
	for i := 0; i < 5; i++ {
		lc.Update(&tc, vehicle.ViewOf(nil))
		xs = append(xs, tc.Loc.X)
	}
	assert.Equal(t, []int{230, 260, 290, 300, 300}, xs)
	assert.False(t, tc.ChangingLane())

	// Back on a lane, the car decides again once its delay runs out.
	blocked := []vehicle.Obstacle{cone(0, centerX, 100)}
	readyToDecide(&tc)
	lc.Update(&tc, vehicle.ViewOf(blocked))
	assert.NotEqual(t, road.Center, tc.TargetLane)
}

func TestNoDecisionWhileChangingLanes(t *testing.T) {
	lc := newController(rng.NewSequence(1))
	tc := lc.NewTrafficCar(0, 3, 100, vehicle.PaintGreen)
	tc.TargetLane = road.Left
	lc.Update(&tc, vehicle.ViewOf(nil))
	require.True(t, tc.ChangingLane())

	readyToDecide(&tc)
	view := vehicle.ViewOf([]vehicle.Obstacle{cone(0, leftX, 200)})
	lc.Update(&tc, view)

	assert.Equal(t, road.Left, tc.TargetLane, "mid-change cars keep their target")
	assert.Equal(t, tc.laneChangeDelay, tc.Timer())
}

func TestNeverTargetsBlockedLaneWhenOneIsFree(t *testing.T) {
	lc := newController(rng.New(7))
	src := rng.New(99)

	for i := 0; i < 500; i++ {
		tc := lc.NewTrafficCar(i, 3, 100, vehicle.PaintBlue)
		readyToDecide(&tc)

		// Block the car's lane and, half the time, one other lane.
		var cones []vehicle.Obstacle
		cones = append(cones, cone(0, tc.LaneX(tc.TargetLane), 200))
		if src.Intn(2) == 0 {
			other := road.Lanes[src.Intn(3)]
			cones = append(cones, cone(1, tc.LaneX(other), 220))
		}
		view := vehicle.ViewOf(cones)

		lc.Update(&tc, view)
		assert.False(t, lc.IsLaneBlocked(&tc, tc.TargetLane, view), "run %d", i)
	}
}

func TestRespawnAboveScreen(t *testing.T) {
	lc := newController(rng.New(3))
	tc := lc.NewTrafficCar(0, 3, 700, vehicle.PaintBlue)
	tc.TargetLane = road.Left
	lc.Update(&tc, vehicle.ViewOf(nil))
	require.True(t, tc.ChangingLane())

	for i := 0; i < 100; i++ {
		lc.Respawn(&tc)
		assert.Less(t, tc.Loc.Y, 0)
		assert.GreaterOrEqual(t, tc.Loc.Y, -25-200+1)
		assert.Equal(t, tc.LaneX(tc.TargetLane), tc.Loc.X)
		assert.False(t, tc.ChangingLane())
		assert.Equal(t, 0, tc.Timer())
	}
}

func TestBuildRoster(t *testing.T) {
	lc := newController(rng.NewSequence(2))
	cars := lc.BuildRoster([]config.Traffic{
		{Name: "blue", StartY: -50, Speed: 4, Paint: "blue"},
		{Name: "green", Lane: "left", StartY: -150, Speed: 3},
		{Name: "yellow", Lane: "random", StartY: -250, Speed: 5, Paint: "yellow"},
	})

	require.Len(t, cars, 3)
	assert.Equal(t, rightX, cars[0].Loc.X)
	assert.Equal(t, vehicle.PaintBlue, cars[0].Paint)
	assert.Equal(t, leftX, cars[1].Loc.X)
	assert.Equal(t, vehicle.PaintGreen, cars[1].Paint, "paint falls back to the name")
	assert.Equal(t, rightX, cars[2].Loc.X)
	for i, c := range cars {
		assert.Equal(t, i, c.ID)
		assert.Equal(t, vehicle.KindTraffic, c.Sprite().Kind)
	}
}

func TestObstacleInLaneMargin(t *testing.T) {
	view := vehicle.ViewOf([]vehicle.Obstacle{cone(0, centerX+20, 300)})

	assert.False(t, ObstacleInLane(centerX, 0, 200, 400, view))
	assert.True(t, ObstacleInLane(centerX, 5, 200, 400, view))
	assert.False(t, ObstacleInLane(centerX, 5, 300, 400, view), "fromY is exclusive")
}
