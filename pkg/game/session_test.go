package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

func newSession(cfg *config.Config, src rng.Source) *Session {
	return NewSession(cfg, src, log.NewWithOptions(io.Discard, log.Options{}))
}

// emptyRoad is the stock setup without traffic or cones, so the score only
// grows by the passive point per tick.
func emptyRoad() *config.Config {
	cfg := config.Default()
	cfg.Traffic = nil
	cfg.Obstacles = nil
	return cfg
}

func events(e ...input.Event) []input.Event {
	return e
}

func TestStartsOnStartScreen(t *testing.T) {
	s := newSession(config.Default(), rng.New(1))
	assert.Equal(t, PhaseStart, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, Outcome{}, s.Outcome())
}

func TestConfirmStartPlaysSameTick(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ConfirmStart))

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.World().Points().Frames())
}

func TestDrivingIgnoredOutsidePlaying(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.SteerLeft, input.Accelerate))

	p := s.World().Player()
	assert.Equal(t, 300, p.Loc.X)
	assert.Equal(t, 3, p.Speed)
	assert.Equal(t, PhaseStart, s.Phase())
}

func TestEventsApplyInOrder(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ConfirmStart, input.Accelerate, input.SteerLeft))

	p := s.World().Player()
	assert.Equal(t, 4, p.Speed)
	assert.Equal(t, 296, p.Loc.X)
	assert.Equal(t, 4, s.World().Points().BaseSpeed())

	s.Tick(events(input.Pause, input.SteerLeft))
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, 296, p.Loc.X, "steering after pause is ignored")
}

func TestInstructionsFlow(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ShowInstructions))
	assert.Equal(t, PhaseInstructions, s.Phase())
	assert.Equal(t, 1, s.Snapshot().InstructionsScroll)

	for i := 0; i < InstructionsScrollReset; i++ {
		s.Tick(nil)
	}
	assert.Equal(t, 0, s.Snapshot().InstructionsScroll, "wraps past the reset value")

	s.Tick(events(input.Back))
	assert.Equal(t, PhaseStart, s.Phase())

	s.Tick(events(input.ShowInstructions))
	s.Tick(events(input.ConfirmStart))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.Score())
}

func TestPauseFreezesTheRace(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ConfirmStart))
	s.Tick(events(input.Pause))
	for i := 0; i < 5; i++ {
		s.Tick(nil)
	}

	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.World().Points().Frames())
	assert.Equal(t, 6, s.Snapshot().Flash)

	s.Tick(events(input.Resume))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 2, s.Score())
}

func TestBackFromPauseKeepsTheRace(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ConfirmStart))
	s.Tick(events(input.ConfirmStart, input.Accelerate))
	s.Tick(events(input.Pause))
	s.Tick(events(input.Back))

	assert.Equal(t, PhaseStart, s.Phase())
	assert.Equal(t, 2, s.Score())
	assert.Equal(t, 4, s.World().Player().Speed)

	s.Tick(events(input.ConfirmStart))
	assert.Equal(t, 3, s.Score())
}

func TestWinAtExactScore(t *testing.T) {
	s := newSession(emptyRoad(), rng.New(1))
	s.Tick(events(input.ConfirmStart))
	for s.Score() < 1499 {
		s.Tick(nil)
		require.Equal(t, PhasePlaying, s.Phase())
	}

	s.Tick(nil)
	assert.Equal(t, PhaseWin, s.Phase())
	assert.Equal(t, Outcome{FinalScore: 1500}, s.Outcome())
}

func TestRestartFromWinGoesToStart(t *testing.T) {
	cfg := emptyRoad()
	cfg.PointsPerLap = 2
	cfg.MaxLaps = 1
	s := newSession(cfg, rng.New(1))

	s.Tick(events(input.ConfirmStart, input.Accelerate, input.SteerRight))
	s.Tick(nil)
	require.Equal(t, PhaseWin, s.Phase())

	s.Tick(events(input.ConfirmStart))
	assert.Equal(t, PhaseWin, s.Phase(), "start is not a restart")

	s.Tick(events(input.ConfirmRestart))
	assert.Equal(t, PhaseStart, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, Outcome{}, s.Outcome())

	p := s.World().Player()
	assert.Equal(t, vehicle.Point{X: 300, Y: 550}, p.Loc)
	assert.Equal(t, 3, p.Speed)
}

func TestCrashIntoTraffic(t *testing.T) {
	cfg := emptyRoad()
	cfg.Traffic = []config.Traffic{{Name: "blue", Lane: "center", StartY: 540, Speed: 4}}
	s := newSession(cfg, rng.New(1))

	s.Tick(events(input.ConfirmStart))

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, Outcome{FinalScore: 0, HitVehicle: true}, s.Outcome())
	assert.Equal(t, 2, s.World().Player().Speed, "speed penalty clamps at the minimum")
}

func TestCrashIntoCone(t *testing.T) {
	cfg := emptyRoad()
	cfg.Obstacles = []config.Obstacle{{Lane: "center", StartY: 540}}
	s := newSession(cfg, rng.New(1))

	s.Tick(events(input.ConfirmStart))

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, Outcome{HitObstacle: true}, s.Outcome())

	s.Tick(events(input.ConfirmRestart))
	assert.Equal(t, PhaseStart, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, Outcome{}, s.Outcome())
	cone := s.World().Obstacles().At(0)
	assert.True(t, cone.Active)
	assert.Less(t, cone.Loc.Y, 0)
}

func TestPassIsCreditedBeforeCrash(t *testing.T) {
	cfg := emptyRoad()
	cfg.CollisionPenaltyScore = 5
	cfg.Traffic = []config.Traffic{{Name: "blue", Lane: "left", StartY: 622, Speed: 4}}
	cfg.Obstacles = []config.Obstacle{{Lane: "center", StartY: 540}}
	s := newSession(cfg, rng.New(1))

	s.Tick(events(input.ConfirmStart))

	// One passive point plus floor(10 * 1.3) for the pass, minus 5.
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, Outcome{FinalScore: 9, HitObstacle: true}, s.Outcome())
	assert.Equal(t, 1, s.World().Points().CarsPassed())
	assert.Equal(t, 9, s.Score())
}

func TestCrashWinsOverFinishingSameTick(t *testing.T) {
	cfg := emptyRoad()
	cfg.PointsPerLap = 1
	cfg.MaxLaps = 1
	cfg.CollisionPenaltyScore = 0
	cfg.Obstacles = []config.Obstacle{{Lane: "center", StartY: 540}}
	s := newSession(cfg, rng.New(1))

	s.Tick(events(input.ConfirmStart))

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 1, s.Outcome().FinalScore)
}

func TestRandomDrivingKeepsInvariants(t *testing.T) {
	s := newSession(config.Default(), rng.New(11))
	r := rand.New(rand.NewSource(5))
	driving := []input.Event{input.SteerLeft, input.SteerRight, input.Accelerate, input.Decelerate, input.None}
	minX, maxX := s.World().Road().SteerBounds(25)

	s.Tick(events(input.ConfirmStart))
	prev := s.Score()
	races := 1

	for i := 0; i < 5000; i++ {
		if s.Phase().Finished() {
			s.Tick(events(input.ConfirmRestart))
			require.Equal(t, PhaseStart, s.Phase())
			require.Equal(t, 0, s.Score())
			s.Tick(events(input.ConfirmStart))
			prev = s.Score()
			races++
			continue
		}

		s.Tick(events(driving[r.Intn(len(driving))], driving[r.Intn(len(driving))]))
		cur := s.Score()

		switch s.Phase() {
		case PhasePlaying, PhaseWin:
			assert.GreaterOrEqual(t, cur, prev, "tick %d", i)
		case PhaseGameOver:
			assert.GreaterOrEqual(t, cur, 0)
			assert.Equal(t, cur, s.Outcome().FinalScore)
		}

		p := s.World().Player()
		assert.GreaterOrEqual(t, p.Speed, 2)
		assert.LessOrEqual(t, p.Speed, 15)
		assert.GreaterOrEqual(t, p.Loc.X, minX)
		assert.LessOrEqual(t, p.Loc.X, maxX)
		prev = cur
	}
	t.Logf("%d races", races)
}

func TestSnapshot(t *testing.T) {
	s := newSession(config.Default(), rng.New(1))
	snap := s.Snapshot()

	require.Len(t, snap.Sprites, 7)
	for _, sp := range snap.Sprites[:3] {
		assert.Equal(t, vehicle.KindObstacle, sp.Kind)
	}
	for _, sp := range snap.Sprites[3:6] {
		assert.Equal(t, vehicle.KindTraffic, sp.Kind)
	}
	assert.Equal(t, vehicle.KindPlayer, snap.Sprites[6].Kind)
	assert.Equal(t, [3]int{200, 300, 400}, snap.Lanes)
	assert.Equal(t, 1, snap.HUD.Lap)
	assert.Equal(t, 3, snap.HUD.MaxLaps)
	assert.Equal(t, 3, snap.HUD.Speed)
	assert.Equal(t, 600, snap.CanvasHeight)

	s.world.obstacles[0].Deactivate()
	assert.Len(t, s.Snapshot().Sprites, 6, "inactive cones are not drawn")
}

func TestBlink(t *testing.T) {
	assert.True(t, Snapshot{Flash: 0}.Blink())
	assert.True(t, Snapshot{Flash: BlinkPeriod - 1}.Blink())
	assert.False(t, Snapshot{Flash: BlinkPeriod}.Blink())
	assert.True(t, Snapshot{Flash: 2 * BlinkPeriod}.Blink())
}
