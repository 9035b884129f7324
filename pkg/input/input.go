// Package input defines the logical events every frontend translates its
// keys into. The simulation only ever sees these.
package input

import (
	"strconv"
	"strings"
)

// Event is one logical player command.
type Event int

const (
	None Event = iota
	SteerLeft
	SteerRight
	Accelerate
	Decelerate
	Pause
	Resume
	ConfirmStart
	ShowInstructions
	Back
	ConfirmRestart
)

var names = map[Event]string{
	None:             "none",
	SteerLeft:        "steer-left",
	SteerRight:       "steer-right",
	Accelerate:       "accelerate",
	Decelerate:       "decelerate",
	Pause:            "pause",
	Resume:           "resume",
	ConfirmStart:     "start",
	ShowInstructions: "instructions",
	Back:             "back",
	ConfirmRestart:   "restart",
}

func (e Event) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	return "unknown"
}

// Parse maps an event name back to its Event. Unknown names are None.
func Parse(name string) Event {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range names {
		if n == name {
			return e
		}
	}
	return None
}

// Driving reports whether the event moves the player car.
func (e Event) Driving() bool {
	switch e {
	case SteerLeft, SteerRight, Accelerate, Decelerate:
		return true
	}
	return false
}

// Script is a fixed list of events keyed by tick, used to replay a race.
type Script map[int][]Event

// ParseScript reads lines of the form "<tick> <event> [<event> ...]".
// Blank lines and lines starting with # are skipped. Malformed lines are
// ignored.
func ParseScript(src string) Script {
	script := Script{}
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		tick, err := strconv.Atoi(fields[0])
		if err != nil || tick < 0 {
			continue
		}
		for _, f := range fields[1:] {
			if e := Parse(f); e != None {
				script[tick] = append(script[tick], e)
			}
		}
	}
	return script
}

// At returns the events scheduled for a tick.
func (s Script) At(tick int) []Event {
	return s[tick]
}
