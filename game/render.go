package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringescape/components"
	"github.com/pthm-cable/ringescape/sim"
	"github.com/pthm-cable/ringescape/systems"
	"github.com/pthm-cable/ringescape/ui"
)

// Draw renders the game.
func (g *Game) Draw() {
	e := g.engine
	cfg := e.Config()
	theme := g.hud.Renderer().Theme
	st := e.State()

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(theme.Background)

	if st.Mode != sim.ModeCrashed {
		g.drawRing(theme.Perimeter)
		g.drawBalls(float32(cfg.Ball.Radius))
		g.hud.Renderer().DrawToggleButton(e.Button(), st.Elastic, "Elastic: ON", "Elastic: OFF")
	}

	data := ui.HUDData{
		Inside:       e.Inside(),
		Escaped:      st.Escaped,
		Total:        e.Total(),
		CPUAvg:       e.Monitor().CPUAvg(),
		Memory:       e.Monitor().Memory(),
		FPS:          rl.GetFPS(),
		ElapsedSec:   e.Elapsed().Seconds(),
		Paused:       st.Mode == sim.ModePaused,
		Crashed:      st.Mode == sim.ModeCrashed,
		ScreenWidth:  int32(cfg.Screen.Width),
		ScreenHeight: int32(cfg.Screen.Height),
	}
	if c, n, ok := e.CommonColor(); ok {
		data.CommonColor = ui.ToColor(c)
		data.CommonCount = n
	}
	g.hud.Draw(data)
}

// drawRing draws the perimeter as dots, leaving the opening empty.
func (g *Game) drawRing(color rl.Color) {
	cfg := g.engine.Config()
	pts := systems.PerimeterPoints(g.engine.Center(), cfg.Circle.Radius, cfg.Circle.PerimeterSamples, g.engine.Opening())
	dot := float32(cfg.Circle.PerimeterDotRadius)
	for _, p := range pts {
		rl.DrawCircle(int32(p.X), int32(p.Y), dot, color)
	}
}

// drawBalls draws every ball as a filled circle.
func (g *Game) drawBalls(radius float32) {
	g.engine.EachBall(func(pos components.Position, _ components.Velocity, ball components.Ball) {
		rl.DrawCircle(int32(pos.X), int32(pos.Y), radius, ui.ToColor(ball.Color))
	})
}
