package road

import (
	"strings"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
)

// Lane identifies one of the three lanes of the road.
type Lane int

const (
	Left Lane = iota
	Center
	Right
)

// Lanes lists every lane from left to right.
var Lanes = [...]Lane{Left, Center, Right}

// String returns the lowercase lane name.
func (l Lane) String() string {
	switch l {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseLane maps a lane name to a Lane. Unknown names resolve to Center.
func ParseLane(name string) Lane {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return Left
	case "right":
		return Right
	default:
		return Center
	}
}

// Road is the drivable strip of the canvas between Start and End.
type Road struct {
	Start          int // Left edge x
	End            int // Right edge x
	BoundaryOffset int // Margin kept between a car and the edge
}

// New creates a road spanning [start, end].
func New(start, end, boundaryOffset int) Road {
	return Road{Start: start, End: end, BoundaryOffset: boundaryOffset}
}

// FromConfig builds the road described by the race config.
func FromConfig(cfg *config.Config) Road {
	return New(cfg.RoadStart, cfg.RoadEnd, cfg.BoundaryOffset)
}

// Width returns the road width in pixels.
func (r Road) Width() int {
	return r.End - r.Start
}

// LaneCenterX returns the x coordinate of the center of the given lane.
// Side lanes sit a sixth of the road width in from each edge.
func (r Road) LaneCenterX(lane Lane) int {
	switch lane {
	case Left:
		return r.Start + r.Width()/6
	case Right:
		return r.End - r.Width()/6
	default:
		return (r.Start + r.End) / 2
	}
}

// LanePositions returns the center x of every lane, indexed by Lane.
func (r Road) LanePositions() [3]int {
	return [3]int{r.LaneCenterX(Left), r.LaneCenterX(Center), r.LaneCenterX(Right)}
}

// SteerBounds returns the inclusive x range a car of the given size may
// occupy when steering.
func (r Road) SteerBounds(size int) (minX, maxX int) {
	half := size / 2
	return r.Start + half + r.BoundaryOffset, r.End - half - r.BoundaryOffset
}

// Scroll tracks the animation offset of the dashed lane markings.
type Scroll struct {
	offset int
	reset  int
}

// NewScroll returns a scroll that wraps back to zero every reset pixels.
func NewScroll(reset int) *Scroll {
	return &Scroll{reset: reset}
}

// Update advances the markings by the player speed.
func (s *Scroll) Update(playerSpeed int) {
	s.offset += playerSpeed
	if s.offset >= s.reset {
		s.offset = 0
	}
}

// Offset returns the current marking offset in [0, reset).
func (s *Scroll) Offset() int {
	return s.offset
}

// Reset rewinds the markings.
func (s *Scroll) Reset() {
	s.offset = 0
}
