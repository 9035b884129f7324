package input

import "unicode"

// Key is a frontend-neutral key. Frontends translate their native key codes
// into Keys and let Bind pick the event.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPause
	KeyStart
	KeyInstructions
	KeyBack
	KeyRestart
)

// Held keys repeat after RepeatDelay ticks, then every RepeatInterval ticks.
const (
	RepeatDelay    = 10
	RepeatInterval = 2
)

// KeyFromRune maps the letter keys, ignoring case.
func KeyFromRune(r rune) Key {
	switch unicode.ToUpper(r) {
	case 'P':
		return KeyPause
	case 'S':
		return KeyStart
	case 'I':
		return KeyInstructions
	case 'B':
		return KeyBack
	case 'C':
		return KeyRestart
	default:
		return KeyNone
	}
}

// Bind turns a key into an event. The pause key resumes when paused.
func Bind(k Key, paused bool) Event {
	switch k {
	case KeyLeft:
		return SteerLeft
	case KeyRight:
		return SteerRight
	case KeyUp:
		return Accelerate
	case KeyDown:
		return Decelerate
	case KeyPause:
		if paused {
			return Resume
		}
		return Pause
	case KeyStart:
		return ConfirmStart
	case KeyInstructions:
		return ShowInstructions
	case KeyBack:
		return Back
	case KeyRestart:
		return ConfirmRestart
	default:
		return None
	}
}

// Repeat reports whether a key held for the given number of ticks fires
// this tick. A key that is up has been held for 0 ticks.
func Repeat(held int) bool {
	if held <= 0 {
		return false
	}
	if held == 1 {
		return true
	}
	return held > RepeatDelay && (held-RepeatDelay)%RepeatInterval == 0
}
