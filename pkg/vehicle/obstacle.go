package vehicle

import (
	"iter"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
)

// ObstacleSpawn is the window new cones are dropped into.
type ObstacleSpawn struct {
	RoadStart  int
	RoadWidth  int
	MinXOffset int
	MaxXOffset int
	YRange     int
}

// ObstacleSpawnFromConfig reads the spawn window from the race config.
func ObstacleSpawnFromConfig(cfg *config.Config) ObstacleSpawn {
	return ObstacleSpawn{
		RoadStart:  cfg.RoadStart,
		RoadWidth:  cfg.RoadEnd - cfg.RoadStart,
		MinXOffset: cfg.ObstacleSpawnMinXOffset,
		MaxXOffset: cfg.ObstacleSpawnMaxXOffset,
		YRange:     cfg.ObstacleSpawnYRange,
	}
}

// Obstacle is a static traffic cone. The road scrolls it toward the player.
type Obstacle struct {
	ID     int
	Loc    Point
	Size   int
	Active bool
	spawn  ObstacleSpawn
}

// NewObstacle places an active cone at (x, y).
func NewObstacle(id, x, y, size int, spawn ObstacleSpawn) Obstacle {
	return Obstacle{
		ID:     id,
		Loc:    Point{X: x, Y: y},
		Size:   size,
		Active: true,
		spawn:  spawn,
	}
}

// Half returns half the extent, rounded down.
func (o *Obstacle) Half() int {
	return o.Size / 2
}

// Advance scrolls an active cone down by the player speed.
func (o *Obstacle) Advance(playerSpeed int) {
	if !o.Active {
		return
	}
	o.Loc.Y += playerSpeed
}

// OffScreen reports whether the cone has left the bottom of the canvas.
func (o *Obstacle) OffScreen(canvasHeight int) bool {
	return o.Loc.Y > canvasHeight+o.Size
}

// Respawn drops the cone at a random spot above the visible area and
// reactivates it.
func (o *Obstacle) Respawn(src rng.Source) {
	s := o.spawn
	o.Loc.X = s.RoadStart + s.MinXOffset + src.Intn(s.RoadWidth-s.MaxXOffset)
	o.Loc.Y = -o.Size - src.Intn(s.YRange)
	o.Active = true
}

// Deactivate removes the cone from collision and rendering until it respawns.
func (o *Obstacle) Deactivate() {
	o.Active = false
}

// Sprite implements Vehicle.
func (o *Obstacle) Sprite() Sprite {
	return Sprite{ID: o.ID, Kind: KindObstacle, X: o.Loc.X, Y: o.Loc.Y, Size: o.Size, Paint: PaintCone}
}

// ObstacleView is a read-only window on the obstacle arena. Holders can
// inspect cones but never move them.
type ObstacleView struct {
	items []Obstacle
}

// ViewOf wraps an obstacle arena.
func ViewOf(items []Obstacle) ObstacleView {
	return ObstacleView{items: items}
}

// Len returns the number of obstacles, active or not.
func (v ObstacleView) Len() int {
	return len(v.items)
}

// At returns a copy of the obstacle with the given ID.
func (v ObstacleView) At(id int) Obstacle {
	return v.items[id]
}

// Active yields a copy of every active obstacle.
func (v ObstacleView) Active() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range v.items {
			if !o.Active {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}
