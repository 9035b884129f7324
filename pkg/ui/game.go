// Package ui is the windowed frontend: it turns key presses into input
// events, ticks the session and draws the snapshot with ebiten.
package ui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hpieper24/PixelRacersUpdated/pkg/background"
	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
)

// TickInterval is the simulation step.
const TickInterval = 30 * time.Millisecond

type binding struct {
	native ebiten.Key
	key    input.Key
	repeat bool // Fires again while held
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, input.KeyLeft, true},
	{ebiten.KeyArrowRight, input.KeyRight, true},
	{ebiten.KeyArrowUp, input.KeyUp, true},
	{ebiten.KeyArrowDown, input.KeyDown, true},
	{ebiten.KeyP, input.KeyPause, false},
	{ebiten.KeyS, input.KeyStart, false},
	{ebiten.KeyI, input.KeyInstructions, false},
	{ebiten.KeyB, input.KeyBack, false},
	{ebiten.KeyC, input.KeyRestart, false},
}

// Game implements ebiten.Game interface.
type Game struct {
	session *game.Session
	logger  *log.Logger
	seed    int64
	verge   *ebiten.Image
	width   int
	height  int
}

// NewGame wraps a session. The seed also shapes the grass verges.
func NewGame(session *game.Session, seed int64, logger *log.Logger) *Game {
	snap := session.Snapshot()
	return &Game{
		session: session,
		logger:  logger.WithPrefix("ui"),
		seed:    seed,
		width:   snap.CanvasWidth,
		height:  snap.CanvasHeight,
	}
}

// Update proceeds the game state.
// Update is called every tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("Quit requested", "phase", g.session.Phase())
		return ebiten.Termination
	}

	g.session.Tick(g.events())
	return nil
}

func (g *Game) events() []input.Event {
	paused := g.session.Phase() == game.PhasePaused

	var events []input.Event
	for _, b := range bindings {
		held := inpututil.KeyPressDuration(b.native)
		fire := held == 1
		if b.repeat {
			fire = input.Repeat(held)
		}
		if fire {
			events = append(events, input.Bind(b.key, paused))
		}
	}
	return events
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	switch snap.Phase {
	case game.PhaseStart:
		drawStart(screen, snap)
	case game.PhaseInstructions:
		drawInstructions(screen, snap)
	case game.PhasePaused:
		drawPaused(screen, snap)
	case game.PhaseGameOver:
		drawGameOver(screen, snap)
	case game.PhaseWin:
		drawWin(screen, snap)
	case game.PhasePlaying:
		g.drawRace(screen, snap)
	}
}

// Layout returns the fixed canvas size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) vergeImage(snap game.Snapshot) *ebiten.Image {
	if g.verge == nil {
		gen := background.NewGenerator(snap.CanvasWidth, snap.CanvasHeight, snap.Road.Start, snap.Road.End)
		g.verge = ebiten.NewImageFromImage(gen.GenerateVerge(g.seed))
	}
	return g.verge
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Pixel Racers")
	ebiten.SetTPS(int(time.Second / TickInterval))

	g.logger.Info("Window opened", "width", g.width, "height", g.height)
	return ebiten.RunGame(g)
}
