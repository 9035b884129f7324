// Package terminal is a text-mode frontend for the race, drawn with tcell.
// The 600x600 world is scaled down onto the terminal grid.
package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hpieper24/PixelRacersUpdated/pkg/game"
	"github.com/hpieper24/PixelRacersUpdated/pkg/input"
)

// TickInterval is the simulation step.
const TickInterval = 30 * time.Millisecond

var errQuit = errors.New("quit requested")

// Frontend drives a session from a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	clock   quartz.Clock
	logger  *log.Logger
	pending []input.Key
}

// New creates a frontend on an initialized screen. Run finalizes the
// screen when it returns.
func New(screen tcell.Screen, session *game.Session, clock quartz.Clock, logger *log.Logger) *Frontend {
	return &Frontend{
		screen:  screen,
		session: session,
		clock:   clock,
		logger:  logger.WithPrefix("terminal"),
	}
}

// Run polls keys and ticks the session until the player quits or ctx is
// cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.HideCursor()
	f.screen.Clear()

	events := make(chan tcell.Event, 32)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer f.screen.Fini()

		ticker := f.clock.NewTicker(TickInterval, "terminal", "tick")
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if err := f.handle(ev); err != nil {
					return err
				}
			case <-ticker.C:
				f.step()
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		f.logger.Info("Quit", "phase", f.session.Phase(), "score", f.session.Score())
		return nil
	}
	return err
}

// handle queues a key until the next tick.
func (f *Frontend) handle(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		if isQuit(e) {
			return errQuit
		}
		if k := keyOf(e); k != input.KeyNone {
			f.pending = append(f.pending, k)
		}
	}
	return nil
}

// step ticks the session with the queued keys and redraws.
func (f *Frontend) step() {
	f.session.Tick(bindAll(f.session.Phase(), f.pending))
	f.pending = f.pending[:0]
	f.render(f.session.Snapshot())
}

// bindAll turns keys into events in order, following the phase each event
// leads to, so that P pressed twice in one tick pauses and then resumes.
func bindAll(phase game.Phase, keys []input.Key) []input.Event {
	events := make([]input.Event, 0, len(keys))
	for _, k := range keys {
		e := input.Bind(k, phase == game.PhasePaused)
		if next, ok := game.Target(phase, e); ok {
			phase = next
		}
		events = append(events, e)
	}
	return events
}

func keyOf(e *tcell.EventKey) input.Key {
	switch e.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyRune:
		return input.KeyFromRune(e.Rune())
	}
	return input.KeyNone
}

func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	r := e.Rune()
	return e.Key() == tcell.KeyRune && (r == 'q' || r == 'Q')
}
