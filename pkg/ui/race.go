package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

const (
	dashLength   = 30
	gapLength    = 20
	markerWidth  = 2
	boundaryWide = 2*markerWidth + 1
)

var roadColor = color.RGBA{60, 60, 60, 255}

// drawRace renders the road, every sprite and the HUD.
func (g *Game) drawRace(screen *ebiten.Image, snap game.Snapshot) {
	g.drawRoad(screen, snap)

	for _, s := range snap.Sprites {
		if s.Kind == vehicle.KindObstacle {
			RenderCone(screen, s)
			continue
		}
		RenderCar(screen, s)
	}

	hud := snap.HUD
	drawText(screen, fmt.Sprintf("Score: %d", hud.Score), 10, 20, smallText, white)
	drawText(screen, fmt.Sprintf("Speed: %d", hud.Speed), 10, 50, smallText, white)
	drawText(screen, fmt.Sprintf("Lap %d/%d", hud.Lap, hud.MaxLaps), 10, 80, smallText, white)
	drawText(screen, fmt.Sprintf("x%.1f", hud.Multiplier), 10, 110, smallText, yellow)
}

func (g *Game) drawRoad(screen *ebiten.Image, snap game.Snapshot) {
	screen.DrawImage(g.vergeImage(snap), nil)

	r := snap.Road
	height := float64(snap.CanvasHeight)
	fillRect(screen, float64(r.Start), 0, float64(r.Width()), height, roadColor)

	// Dashes move down the screen as the player drives up it
	period := dashLength + gapLength
	dividers := []int{r.Start + r.Width()/3, r.Start + 2*r.Width()/3}
	for y := snap.ScrollOffset%period - period; y < snap.CanvasHeight; y += period {
		for _, x := range dividers {
			fillRect(screen, float64(x-1), float64(y), 3, dashLength, white)
		}
	}

	fillRect(screen, float64(r.Start-markerWidth), 0, boundaryWide, height, white)
	fillRect(screen, float64(r.End-markerWidth), 0, boundaryWide, height, white)
}
