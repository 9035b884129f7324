package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

var (
	white  = color.RGBA{255, 255, 255, 255}
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	cyan   = color.RGBA{0, 255, 255, 255}

	bgStart        = color.RGBA{20, 40, 80, 255}
	bgInstructions = color.RGBA{30, 30, 50, 255}
	bgPaused       = color.RGBA{80, 80, 80, 255}
	bgGameOver     = color.RGBA{20, 20, 20, 255}
	bgWin          = color.RGBA{10, 30, 10, 255}
)

// drawStart renders the title screen
func drawStart(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(bgStart)
	height := float64(snap.CanvasHeight)

	drawCentered(screen, "PIXEL RACERS", height/2-80, largeText*1.5, yellow)

	if snap.Blink() {
		drawCentered(screen, "Press I for Instructions", height/2-15, smallText, white)
		drawCentered(screen, "Press S to START", height/2+15, smallText, white)
	}
}

// drawInstructions renders the controls screen. The key list drifts up
// with the scroll timer.
func drawInstructions(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(bgInstructions)
	height := float64(snap.CanvasHeight)

	drawText(screen, "CONTROLS", 30, 40, largeText, cyan)

	lines := []string{
		"UP: Accelerate",
		"DOWN: Brake",
		"LEFT/RIGHT: Steer",
		"P: Pause",
		"Pass cars = 10pts",
		"Obstacles = CRASH",
	}
	for i, line := range lines {
		drawText(screen, line, 30, 90+float64(i)*40, smallText, white)
	}

	// A demo car crosses the screen once per scroll cycle
	x := snap.InstructionsScroll * snap.CanvasWidth / game.InstructionsScrollReset
	RenderCar(screen, vehicle.Sprite{X: x, Y: int(height) - 170, Size: 25, Paint: vehicle.PaintPlayer})

	drawText(screen, "Press B to go BACK", 30, height-130, smallText, cyan)
	drawText(screen, "Press S to START", 30, height-90, smallText, cyan)
}

// drawPaused renders the pause overlay
func drawPaused(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(bgPaused)
	height := float64(snap.CanvasHeight)

	drawCentered(screen, "PAUSED", height/2-30, largeText, yellow)
	if snap.Blink() {
		drawCentered(screen, "Press P to Resume", height/2+20, smallText, yellow)
	}
	drawCentered(screen, "Press B to go BACK", height/2+50, smallText, cyan)
}

// drawGameOver renders the crash screen with its cause
func drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(bgGameOver)
	height := float64(snap.CanvasHeight)

	drawCentered(screen, "GAME OVER", height/2-70, largeText, red)
	drawCentered(screen, fmt.Sprintf("Final Score: %d", snap.Outcome.FinalScore), height/2-20, smallText, white)

	y := height/2 + 10
	if snap.Blink() {
		if snap.Outcome.HitVehicle {
			drawCentered(screen, "Hit AI Car!", y, smallText, vehicle.PaintBlue.RGBA())
			y += 35
		}
		if snap.Outcome.HitObstacle {
			drawCentered(screen, "Hit Obstacle!", y, smallText, vehicle.PaintCone.RGBA())
		}
		drawCentered(screen, "Press C to Restart", height-90, smallText, white)
	}
}

// drawWin renders the finish screen
func drawWin(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(bgWin)
	height := float64(snap.CanvasHeight)

	drawCentered(screen, "YOU WIN!", height/2-70, largeText, green)
	drawCentered(screen, fmt.Sprintf("Final Score: %d", snap.Outcome.FinalScore), height/2-20, smallText, white)
	if snap.Blink() {
		drawCentered(screen, "Press C to Restart", height-90, smallText, cyan)
	}
}
