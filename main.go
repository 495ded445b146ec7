package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringescape/config"
	"github.com/pthm-cable/ringescape/game"
	"github.com/pthm-cable/ringescape/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI override of the stats window, in ticks at the target frame rate
	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
		cfg.Derived.StatsWindowTicks = int32(*statsWindow * float64(cfg.Screen.TargetFPS))
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		SnapshotDir: *snapshotDir,
	}

	if *headless {
		os.Exit(runHeadless(cfg, opts, *maxTicks))
	}
	os.Exit(runWindow(cfg, opts, *maxTicks))
}

// runHeadless runs frames back to back without raylib and returns the exit code.
func runHeadless(cfg *config.Config, opts sim.Options, maxTicks int) int {
	e, err := sim.NewEngine(cfg, opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		return 1
	}
	defer e.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
	)

	for {
		if err := e.Frame(); err != nil {
			slog.Error("simulation failed", "tick", e.Tick(), "error", err)
			return 1
		}

		if e.State().Mode == sim.ModeCrashed {
			slog.Info("headless run ended by crash", "tick", e.Tick(), "escaped", e.State().Escaped)
			return 0
		}
		if maxTicks > 0 && int(e.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", e.Tick(), "escaped", e.State().Escaped, "inside", e.Inside())
			return 0
		}
	}
}

// runWindow runs the graphical loop until the window closes and returns the
// exit code.
func runWindow(cfg *config.Config, opts sim.Options, maxTicks int) int {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		if err := g.Update(); err != nil {
			slog.Error("simulation failed", "tick", g.Tick(), "error", err)
			return 1
		}
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return 0
}
