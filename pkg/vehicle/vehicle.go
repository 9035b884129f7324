package vehicle

import (
	"image/color"
	"strings"

	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
)

// Point is a position on the canvas. Y grows downward.
type Point struct {
	X, Y int
}

// Kind tags what a sprite represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindTraffic
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTraffic:
		return "traffic"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Paint is the color identity of an entity. Renderers decide how to show it.
type Paint int

const (
	PaintPlayer Paint = iota
	PaintBlue
	PaintGreen
	PaintYellow
	PaintCone
)

// ParsePaint maps a paint name to a Paint, defaulting to PaintBlue.
func ParsePaint(name string) Paint {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red", "player":
		return PaintPlayer
	case "green":
		return PaintGreen
	case "yellow":
		return PaintYellow
	case "cone", "orange":
		return PaintCone
	default:
		return PaintBlue
	}
}

func (p Paint) String() string {
	switch p {
	case PaintPlayer:
		return "player"
	case PaintBlue:
		return "blue"
	case PaintGreen:
		return "green"
	case PaintYellow:
		return "yellow"
	case PaintCone:
		return "cone"
	default:
		return "unknown"
	}
}

// RGBA returns the stock color for the paint.
func (p Paint) RGBA() color.RGBA {
	switch p {
	case PaintPlayer:
		return color.RGBA{255, 30, 30, 255}
	case PaintGreen:
		return color.RGBA{0, 255, 0, 255}
	case PaintYellow:
		return color.RGBA{255, 255, 0, 255}
	case PaintCone:
		return color.RGBA{255, 140, 0, 255}
	default:
		return color.RGBA{0, 100, 255, 255}
	}
}

// Sprite is the read-only description of an entity handed to renderers.
type Sprite struct {
	ID    int
	Kind  Kind
	X, Y  int // Center
	Size  int // Square extent
	Paint Paint
}

// Vehicle is anything the world can draw and put back at its start.
type Vehicle interface {
	Sprite() Sprite
	Respawn(src rng.Source)
}

// Body is the shared motion state of the player and traffic cars.
type Body struct {
	Loc   Point // Center
	Prev  Point // Center before the last move
	Size  int
	Speed int
	Paint Paint
}

// Half returns half the extent, rounded down.
func (b *Body) Half() int {
	return b.Size / 2
}

// MoveBy shifts the body and remembers where it was.
func (b *Body) MoveBy(dx, dy int) {
	b.Prev = b.Loc
	b.Loc.X += dx
	b.Loc.Y += dy
}

// OffScreen reports whether the body has left the bottom of the canvas.
func (b *Body) OffScreen(canvasHeight int) bool {
	return b.Loc.Y > canvasHeight+b.Size
}
