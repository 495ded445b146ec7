package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ringescape/sim"
)

// pollInput reads this frame's keyboard and mouse events.
func (g *Game) pollInput() sim.Input {
	in := sim.Input{
		TogglePause: rl.IsKeyPressed(rl.KeySpace),
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		in.Click = r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}
		in.HasClick = true
	}
	return in
}

// snapshotRequested reports whether the snapshot key was pressed.
func (g *Game) snapshotRequested() bool {
	return rl.IsKeyPressed(rl.KeyS)
}
