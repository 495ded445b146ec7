// Package sim runs the rotating ring simulation without any graphics
// dependency. The game package drives it from a raylib window and the
// headless loop drives it directly.
package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Mode is the loop state.
type Mode uint8

const (
	ModeRunning Mode = iota
	ModePaused
	ModeCrashed // terminal
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// State is the mutable simulation state outside the ball collection.
type State struct {
	Angle   float64 // ring rotation in [0, 2*Pi)
	Escaped int     // balls that have left through the opening, ever
	Elastic bool
	Mode    Mode
	Start   time.Time
	Tick    int32 // running ticks completed
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies in the rectangle, edges included.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Input is one frame of user input, already read from the window.
type Input struct {
	TogglePause bool
	Click       r2.Vec
	HasClick    bool
}
