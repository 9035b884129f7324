package terminal

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
)

func newFrontend(t *testing.T, clock quartz.Clock) (*Frontend, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)

	cfg := config.Default()
	cfg.Traffic = nil
	cfg.Obstacles = nil
	logger := log.NewWithOptions(io.Discard, log.Options{})
	session := game.NewSession(cfg, rng.New(1), logger)
	return New(screen, session, clock, logger), screen
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for _, c := range cells[row*width : (row+1)*width] {
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, height := screen.GetContents()
	var rows []string
	for row := 0; row < height; row++ {
		rows = append(rows, rowText(screen, row))
	}
	return strings.Join(rows, "\n")
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.KeyRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.KeyDown},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), input.KeyPause},
		{"start upper", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), input.KeyStart},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), input.KeyNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyOf(tt.ev))
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
}

func TestStartScreen(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	defer screen.Fini()

	f.step()

	assert.Equal(t, game.PhaseStart, f.session.Phase())
	assert.Contains(t, screenText(screen), "PIXEL RACERS")
}

func TestStartKeyBeginsRace(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	defer screen.Fini()

	require.NoError(t, f.handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	f.step()

	assert.Equal(t, game.PhasePlaying, f.session.Phase())
	assert.Contains(t, rowText(screen, 0), "Score: 1")
	assert.Empty(t, f.pending)
}

func TestPauseKeyToggles(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	defer screen.Fini()

	p := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)

	require.NoError(t, f.handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	f.step()
	require.NoError(t, f.handle(p))
	f.step()
	assert.Equal(t, game.PhasePaused, f.session.Phase())
	assert.Contains(t, screenText(screen), "PAUSED")

	require.NoError(t, f.handle(p))
	f.step()
	assert.Equal(t, game.PhasePlaying, f.session.Phase())
}

func TestDoublePauseInOneTickResumes(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	defer screen.Fini()

	p := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)

	require.NoError(t, f.handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	f.step()
	require.NoError(t, f.handle(p))
	require.NoError(t, f.handle(p))
	f.step()

	assert.Equal(t, game.PhasePlaying, f.session.Phase())
	assert.Equal(t, 2, f.session.Score(), "the race kept running through the tick")
}

func TestBindAll(t *testing.T) {
	keys := []input.Key{input.KeyPause, input.KeyPause, input.KeyPause}
	assert.Equal(t,
		[]input.Event{input.Pause, input.Resume, input.Pause},
		bindAll(game.PhasePlaying, keys))

	assert.Equal(t,
		[]input.Event{input.Resume, input.SteerLeft},
		bindAll(game.PhasePaused, []input.Key{input.KeyPause, input.KeyLeft}))
}

func TestHandleQuit(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	defer screen.Fini()

	err := f.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.ErrorIs(t, err, errQuit)
}

func TestRunQuitsOnEscape(t *testing.T) {
	f, screen := newFrontend(t, quartz.NewMock(t))
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, f.Run(ctx))
	assert.Equal(t, game.PhaseStart, f.session.Phase())
}
