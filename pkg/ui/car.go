package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

const coneStripeHeight = 5

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 200}
	coneStripe      = color.RGBA{255, 255, 255, 255}
)

// RenderCar renders a top-down view of a car centered on its sprite
// position. Player and traffic both drive up the screen.
func RenderCar(screen *ebiten.Image, s vehicle.Sprite) {
	size := float64(s.Size)
	left := float64(s.X) - size/2
	top := float64(s.Y) - size/2

	fillRect(screen, left, top, size, size, outlineColor)

	// Body inside a 2px outline
	outline := 2.0
	fillRect(screen, left+outline, top+outline, size-2*outline, size-2*outline, s.Paint.RGBA())

	// Windshield at the front
	windshieldWidth := size * 0.6
	windshieldHeight := size * 0.2
	fillRect(screen, left+(size-windshieldWidth)/2, top+outline+1, windshieldWidth, windshieldHeight, windshieldColor)
}

// RenderCone draws a striped traffic cone, narrow at the tip and wide at
// the base.
func RenderCone(screen *ebiten.Image, s vehicle.Sprite) {
	top := s.Y - s.Size/2
	for row := 0; row < s.Size; row++ {
		c := s.Paint.RGBA()
		if (row/coneStripeHeight)%2 == 1 {
			c = coneStripe
		}
		width := float64(row + 1)
		fillRect(screen, float64(s.X)-width/2, float64(top+row), width, 1, c)
	}
}
