package sim

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ringescape/components"
	"github.com/pthm-cable/ringescape/config"
	"github.com/pthm-cable/ringescape/systems"
	"github.com/pthm-cable/ringescape/telemetry"
)

// Options configures engine creation.
type Options struct {
	Seed        int64
	LogStats    bool   // log window and perf stats via slog
	OutputDir   string // CSV and config output (empty = disabled)
	SnapshotDir string // JSON snapshots on crash (empty = disabled)

	// Sampler reads CPU and memory. Nil uses the operating system.
	Sampler telemetry.Sampler
	// Clock is the wall-clock source. Nil uses time.Now.
	Clock func() time.Time
}

// Engine owns the ball world and advances it one tick at a time.
type Engine struct {
	cfg   *config.Config
	seed  int64
	world *ecs.World
	balls *systems.BallSystem
	now   func() time.Time

	state  State
	center r2.Vec
	button Rect

	// Telemetry
	monitor     *telemetry.ResourceMonitor
	perf        *telemetry.PerfCollector
	collector   *telemetry.Collector
	output      *telemetry.OutputManager
	logStats    bool
	snapshotDir string
	lastStep    time.Duration
}

// NewEngine creates an engine with the configured initial balls.
func NewEngine(cfg *config.Config, opts Options) (*Engine, error) {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	sampler := opts.Sampler
	if sampler == nil {
		sampler = telemetry.SystemSampler{}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	world := ecs.NewWorld()
	center := r2.Vec{X: cfg.Derived.CenterX, Y: cfg.Derived.CenterY}
	spawner := systems.NewSpawner(rng, center.X, center.Y, cfg.Derived.SpawnRadius,
		cfg.Ball.Speed, systems.PaletteFromConfig(cfg.Ball.Palette))

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	start := now()
	e := &Engine{
		cfg:    cfg,
		seed:   opts.Seed,
		world:  world,
		balls:  systems.NewBallSystem(world, spawner, center, cfg.Derived.CollisionRadius),
		now:    now,
		center: center,
		button: Rect{
			X:      float64(cfg.UI.Button.X),
			Y:      float64(cfg.UI.Button.Y),
			Width:  float64(cfg.UI.Button.Width),
			Height: float64(cfg.UI.Button.Height),
		},
		state: State{
			Elastic: cfg.Physics.Elastic,
			Mode:    ModeRunning,
			Start:   start,
		},
		monitor:     telemetry.NewResourceMonitor(sampler, cfg.Derived.MonitorInterval, cfg.Monitor.CPUWindow, start),
		perf:        telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:   telemetry.NewCollector(cfg.Derived.StatsWindowTicks),
		output:      output,
		logStats:    opts.LogStats,
		snapshotDir: opts.SnapshotDir,
	}
	e.perf.SetClock(now)

	e.balls.Spawn(cfg.Ball.InitialCount)
	e.collector.RecordSpawns(cfg.Ball.InitialCount)

	return e, nil
}

// Step runs one simulation tick. It does nothing unless the loop is running.
// A failed resource sample is returned as an error.
func (e *Engine) Step() error {
	if e.state.Mode != ModeRunning {
		return nil
	}
	cfg := e.cfg

	e.perf.StartTick()

	e.perf.StartPhase(telemetry.PhaseRotation)
	e.state.Angle = systems.WrapAngle(e.state.Angle + cfg.Circle.RotationStep)
	opening := e.Opening()

	e.perf.StartPhase(telemetry.PhaseBalls)
	res := e.balls.Update(opening, e.state.Elastic, cfg.Physics.InelasticFactor)
	e.state.Escaped += res.Escaped
	e.collector.RecordEscapes(res.Escaped)
	e.collector.RecordBounces(res.Bounced)

	// Replacements are created after the query is closed
	e.perf.StartPhase(telemetry.PhaseSpawn)
	spawned := res.Escaped * cfg.Ball.SpawnOnEscape
	e.balls.Spawn(spawned)
	e.collector.RecordSpawns(spawned)

	e.perf.StartPhase(telemetry.PhaseCleanup)
	removed := e.balls.Cleanup(float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	e.collector.RecordRemovals(removed)

	e.perf.StartPhase(telemetry.PhaseMonitor)
	_, err := e.monitor.Poll(e.now())
	e.perf.EndTick()
	if err != nil {
		return fmt.Errorf("sampling resources at tick %d: %w", e.state.Tick, err)
	}

	e.state.Tick++
	return nil
}

// Frame runs one guarded update: Step is timed with the engine clock and a
// step that takes longer than the frame budget crashes the simulation.
// Drawing is not part of the timed section.
func (e *Engine) Frame() error {
	if e.state.Mode == ModeCrashed {
		return nil
	}

	before := e.now()
	err := e.Step()
	e.lastStep = e.now().Sub(before)
	if err != nil {
		return err
	}

	if e.lastStep > e.cfg.Derived.FrameBudget {
		e.crash()
		return nil
	}

	e.flushTelemetry()
	e.perf.RecordFrame()
	return nil
}

// crash moves the loop into the terminal crashed mode and empties the world.
func (e *Engine) crash() {
	e.state.Mode = ModeCrashed
	if e.snapshotDir != "" {
		e.saveSnapshot("crash")
	}

	removed := e.balls.Clear()
	e.collector.RecordRemovals(removed)

	e.recordEvent(telemetry.NewCrashEvent(e.state.Tick, removed, float64(e.lastStep)/float64(time.Millisecond)))
}

// ApplyInput applies one frame of user input.
func (e *Engine) ApplyInput(in Input) {
	if in.TogglePause {
		e.TogglePause()
	}
	if in.HasClick && e.button.Contains(in.Click) {
		e.ToggleElastic()
	}
}

// TogglePause switches between running and paused. Crashed is final.
func (e *Engine) TogglePause() {
	switch e.state.Mode {
	case ModeRunning:
		e.state.Mode = ModePaused
	case ModePaused:
		e.state.Mode = ModeRunning
	default:
		return
	}
	e.recordEvent(telemetry.NewToggleEvent(e.state.Tick, e.balls.Count(), e.state.Mode == ModePaused))
}

// ToggleElastic flips the collision mode. Ignored once crashed.
func (e *Engine) ToggleElastic() {
	if e.state.Mode == ModeCrashed {
		return
	}
	e.state.Elastic = !e.state.Elastic
	e.recordEvent(telemetry.NewElasticEvent(e.state.Tick, e.balls.Count(), e.state.Elastic))
}

// Opening returns the current opening arc.
func (e *Engine) Opening() systems.Arc {
	return systems.OpeningArc(e.state.Angle, e.cfg.Circle.OpeningSize)
}

// State returns a copy of the simulation state.
func (e *Engine) State() State {
	return e.state
}

// Config returns the engine configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Center returns the ring center.
func (e *Engine) Center() r2.Vec {
	return e.center
}

// Button returns the elastic toggle rectangle.
func (e *Engine) Button() Rect {
	return e.button
}

// Tick returns the number of running ticks completed.
func (e *Engine) Tick() int32 {
	return e.state.Tick
}

// Inside returns the number of balls in the world, escaped or not.
func (e *Engine) Inside() int {
	return e.balls.Count()
}

// Total returns inside plus the escape counter.
func (e *Engine) Total() int {
	return e.balls.Count() + e.state.Escaped
}

// Elapsed returns wall-clock time since the engine started.
func (e *Engine) Elapsed() time.Duration {
	return e.now().Sub(e.state.Start)
}

// LastStep returns the measured duration of the most recent Step.
func (e *Engine) LastStep() time.Duration {
	return e.lastStep
}

// CommonColor returns the most frequent color among balls that have not
// escaped.
func (e *Engine) CommonColor() (components.RGB, int, bool) {
	return systems.MostCommonColor(e.balls.InsideColors())
}

// Monitor exposes the resource monitor.
func (e *Engine) Monitor() *telemetry.ResourceMonitor {
	return e.monitor
}

// EachBall calls fn for every ball.
func (e *Engine) EachBall(fn func(pos components.Position, vel components.Velocity, ball components.Ball)) {
	e.balls.Each(fn)
}

// Close flushes and closes output files.
func (e *Engine) Close() {
	if err := e.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
