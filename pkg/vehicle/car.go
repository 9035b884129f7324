package vehicle

import (
	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/road"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
)

// Action is a driver command applied to the player car.
type Action int

const (
	SteerLeft Action = iota
	SteerRight
	Accelerate
	Decelerate
)

func (a Action) String() string {
	switch a {
	case SteerLeft:
		return "steer-left"
	case SteerRight:
		return "steer-right"
	case Accelerate:
		return "accelerate"
	case Decelerate:
		return "decelerate"
	default:
		return "unknown"
	}
}

// Player is the keyboard driven car. It never leaves the road and its speed
// stays within [minSpeed, maxSpeed].
type Player struct {
	Body
	road       road.Road
	minSpeed   int
	maxSpeed   int
	startSpeed int
	start      Point
}

// NewPlayer puts the player car on its start position.
func NewPlayer(cfg *config.Config) *Player {
	p := &Player{
		Body: Body{
			Size:  cfg.CarSize,
			Paint: PaintPlayer,
		},
		road:       road.FromConfig(cfg),
		minSpeed:   cfg.MinSpeed,
		maxSpeed:   cfg.MaxSpeed,
		startSpeed: cfg.StartSpeed,
		start:      Point{X: cfg.PlayerStartX, Y: cfg.PlayerStartY},
	}
	p.Respawn(nil)
	return p
}

// Apply runs one driver command. Steering that would cross the road
// boundary is ignored.
func (p *Player) Apply(a Action) {
	p.Prev = p.Loc

	switch a {
	case SteerLeft:
		p.steer(-p.Speed)
	case SteerRight:
		p.steer(p.Speed)
	case Accelerate:
		p.SetSpeed(p.Speed + 1)
	case Decelerate:
		p.SetSpeed(p.Speed - 1)
	}
}

func (p *Player) steer(dx int) {
	minX, maxX := p.road.SteerBounds(p.Size)
	x := p.Loc.X + dx
	if x < minX || x > maxX {
		return
	}
	p.Loc.X = x
}

// SetSpeed sets the speed, clamped to the allowed range.
func (p *Player) SetSpeed(speed int) {
	p.Speed = min(max(speed, p.minSpeed), p.maxSpeed)
}

// Respawn puts the car back on the start line. The source is unused, the
// player always starts at the same spot.
func (p *Player) Respawn(rng.Source) {
	p.Loc = p.start
	p.Prev = p.start
	p.Speed = p.startSpeed
}

// Sprite implements Vehicle.
func (p *Player) Sprite() Sprite {
	return Sprite{Kind: KindPlayer, X: p.Loc.X, Y: p.Loc.Y, Size: p.Size, Paint: p.Paint}
}
