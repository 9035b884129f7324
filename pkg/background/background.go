package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Grass is the base color of the verges.
var Grass = color.RGBA{34, 139, 34, 255}

// Generator paints the grass verges on both sides of the road.
type Generator struct {
	Width  int
	Height int
	// Road strip [RoadStart, RoadEnd) is left transparent
	RoadStart int
	RoadEnd   int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height, roadStart, roadEnd int) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		RoadStart: roadStart,
		RoadEnd:   roadEnd,
	}
}

// GenerateVerge creates a textured grass verge with trees and bushes. The
// same seed always produces the same picture.
func (g *Generator) GenerateVerge(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.onRoad(x) {
				img.SetRGBA(x, y, Grass)
			}
		}
	}

	// Add noise/texture to grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(110 + rng.Intn(60))
		g.set(img, x, y, color.RGBA{30, shade, 30, 255})
	}

	// Draw from top to bottom for correct layering
	for y := 0; y < g.Height; y += 10 {
		density := 0.3 + 0.2*math.Sin(float64(y)*0.01)

		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}

			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5

			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng)
			}
		}
	}

	return img
}

func (g *Generator) onRoad(x int) bool {
	return x >= g.RoadStart && x < g.RoadEnd
}

// set plots a pixel unless it falls off the image or onto the road.
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height || g.onRoad(x) {
		return
	}
	img.SetRGBA(x, y, c)
}

// drawTree draws a simple pine tree
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 30 + rng.Intn(20)
	width := 14 + rng.Intn(10)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 3 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}

	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := max(width-(l*5), 5)

		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 4 + rng.Intn(7)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
