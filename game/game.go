// Package game connects the simulation engine to a raylib window.
package game

import (
	"github.com/pthm-cable/ringescape/config"
	"github.com/pthm-cable/ringescape/sim"
	"github.com/pthm-cable/ringescape/ui"
)

// Game holds the engine and the widgets that draw it.
type Game struct {
	engine *sim.Engine
	hud    *ui.HUD
}

// NewGame creates a game around a new engine. The raylib window must already
// be open.
func NewGame(cfg *config.Config, opts sim.Options) (*Game, error) {
	e, err := sim.NewEngine(cfg, opts)
	if err != nil {
		return nil, err
	}
	return &Game{
		engine: e,
		hud:    ui.NewHUD(),
	}, nil
}

// Update reads input and runs one guarded simulation frame.
func (g *Game) Update() error {
	g.engine.ApplyInput(g.pollInput())
	if g.snapshotRequested() {
		g.engine.SaveSnapshot("manual")
	}
	return g.engine.Frame()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.engine.Tick()
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.engine.Close()
}
