package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/vehicle"
)

var (
	styleGrass = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 139, 34))
	styleRoad  = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 60, 60)).Foreground(tcell.ColorWhite)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
)

// grid maps world pixels onto terminal cells. Row 0 holds the HUD.
type grid struct {
	cols, rows int
	sx, sy     float64 // World pixels per cell
}

func newGrid(cols, rows int, snap game.Snapshot) grid {
	rows = max(rows-1, 1)
	cols = max(cols, 1)
	return grid{
		cols: cols,
		rows: rows,
		sx:   float64(snap.CanvasWidth) / float64(cols),
		sy:   float64(snap.CanvasHeight) / float64(rows),
	}
}

func (g grid) col(x int) int { return int(float64(x) / g.sx) }
func (g grid) row(y int) int { return int(float64(y)/g.sy) + 1 }

func (f *Frontend) render(snap game.Snapshot) {
	f.screen.Clear()
	cols, rows := f.screen.Size()

	switch snap.Phase {
	case game.PhasePlaying:
		drawRace(f.screen, newGrid(cols, rows, snap), snap)
	case game.PhaseStart:
		drawScreen(f.screen, cols, rows, tcell.ColorNavy, snap.Blink(),
			"PIXEL RACERS", "", "Press I for Instructions", "Press S to START")
	case game.PhaseInstructions:
		drawScreen(f.screen, cols, rows, tcell.ColorDarkSlateBlue, true,
			"CONTROLS", "",
			"UP: Accelerate   DOWN: Brake",
			"LEFT/RIGHT: Steer   P: Pause",
			"Pass cars = 10pts   Obstacles = CRASH", "",
			"Press S to START   Press B to go BACK")
	case game.PhasePaused:
		drawScreen(f.screen, cols, rows, tcell.ColorGray, snap.Blink(),
			"PAUSED", "", "Press P to Resume", "Press B to go BACK")
	case game.PhaseGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Final Score: %d", snap.Outcome.FinalScore)}
		if snap.Outcome.HitVehicle {
			lines = append(lines, "Hit AI Car!")
		}
		if snap.Outcome.HitObstacle {
			lines = append(lines, "Hit Obstacle!")
		}
		lines = append(lines, "", "Press C to Restart")
		drawScreen(f.screen, cols, rows, tcell.ColorMaroon, snap.Blink(), lines...)
	case game.PhaseWin:
		drawScreen(f.screen, cols, rows, tcell.ColorDarkGreen, snap.Blink(),
			"YOU WIN!", fmt.Sprintf("Final Score: %d", snap.Outcome.FinalScore), "", "Press C to Restart")
	}

	f.screen.Show()
}

func drawRace(s tcell.Screen, g grid, snap game.Snapshot) {
	roadLeft, roadRight := g.col(snap.Road.Start), g.col(snap.Road.End)
	dividers := map[int]bool{
		g.col(snap.Road.Start + snap.Road.Width()/3):   true,
		g.col(snap.Road.Start + 2*snap.Road.Width()/3): true,
	}

	for row := 1; row <= g.rows; row++ {
		// Dashes follow the scroll offset, 30 on and 20 off
		worldY := int(float64(row-1)*g.sy) - snap.ScrollOffset
		dash := ((worldY%50)+50)%50 < 30
		for col := 0; col < g.cols; col++ {
			switch {
			case col < roadLeft || col > roadRight:
				s.SetContent(col, row, ' ', nil, styleGrass)
			case col == roadLeft || col == roadRight:
				s.SetContent(col, row, '│', nil, styleRoad)
			case dividers[col] && dash:
				s.SetContent(col, row, '╎', nil, styleRoad)
			default:
				s.SetContent(col, row, ' ', nil, styleRoad)
			}
		}
	}

	for _, sp := range snap.Sprites {
		drawSprite(s, g, sp)
	}

	hud := snap.HUD
	line := fmt.Sprintf(" Score: %d  Speed: %d  Lap %d/%d  x%.1f ",
		hud.Score, hud.Speed, hud.Lap, hud.MaxLaps, hud.Multiplier)
	drawText(s, 0, 0, pad(line, g.cols), styleHUD)
}

// drawSprite fills every cell the sprite's box touches, at least one.
func drawSprite(s tcell.Screen, g grid, sp vehicle.Sprite) {
	c := sp.Paint.RGBA()
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.NewRGBColor(60, 60, 60))

	ch := '█'
	if sp.Kind == vehicle.KindObstacle {
		ch = '▲'
	}

	half := sp.Size / 2
	left, right := g.col(sp.X-half), max(g.col(sp.X+half-1), g.col(sp.X-half))
	top, bottom := g.row(sp.Y-half), max(g.row(sp.Y+half-1), g.row(sp.Y-half))
	for row := top; row <= bottom; row++ {
		if row < 1 || row > g.rows {
			continue
		}
		for col := left; col <= right; col++ {
			if col < 0 || col >= g.cols {
				continue
			}
			s.SetContent(col, row, ch, nil, st)
		}
	}
}

// drawScreen fills the terminal and centers the lines. The first line is
// the title; the rest hide when blink is false, except blank lines which
// only keep their spacing.
func drawScreen(s tcell.Screen, cols, rows int, bg tcell.Color, blink bool, lines ...string) {
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	for row := 0; row < rows; row++ {
		drawText(s, 0, row, pad("", cols), base)
	}

	top := rows/2 - len(lines)/2
	for i, line := range lines {
		st := base
		if i == 0 {
			st = st.Foreground(tcell.ColorYellow).Bold(true)
		} else if !blink {
			continue
		}
		drawCentered(s, cols/2, top+i, line, st)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

func pad(text string, width int) string {
	for len([]rune(text)) < width {
		text += " "
	}
	return text
}
