package sim

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/ringescape/components"
	"github.com/pthm-cable/ringescape/telemetry"
)

// flushTelemetry writes a stats row once a full window of ticks has run.
func (e *Engine) flushTelemetry() {
	if !e.collector.ShouldFlush(e.state.Tick) {
		return
	}

	sample := telemetry.WindowSample{
		ElapsedSec: e.Elapsed().Seconds(),
		Mode:       e.state.Mode.String(),
		Elastic:    e.state.Elastic,
		Inside:     e.balls.Count(),
		Escaped:    e.state.Escaped,
		Speeds:     e.balls.Speeds(),
		CPUAvg:     e.monitor.CPUAvg(),
		Memory:     e.monitor.Memory(),
	}
	if c, n, ok := e.CommonColor(); ok {
		sample.CommonColor, sample.CommonCount = c, n
	}

	stats := e.collector.Flush(e.state.Tick, sample)
	perfStats := e.perf.Stats()

	if e.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if e.output != nil {
		if err := e.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := e.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// SaveSnapshot writes the current state to the snapshot directory.
// It returns the written path, or "" when snapshots are disabled or fail.
func (e *Engine) SaveSnapshot(reason string) string {
	if e.snapshotDir == "" {
		return ""
	}
	return e.saveSnapshot(reason)
}

// saveSnapshot creates and saves a snapshot to disk.
func (e *Engine) saveSnapshot(reason string) string {
	snapshot := e.createSnapshot(reason)

	path, err := telemetry.SaveSnapshot(snapshot, e.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return ""
	}

	e.recordEvent(telemetry.NewSnapshotEvent(e.state.Tick, len(snapshot.Balls), path))
	return path
}

// createSnapshot builds a snapshot from the current state.
func (e *Engine) createSnapshot(reason string) *telemetry.Snapshot {
	snapshot := &telemetry.Snapshot{
		Version:      telemetry.SnapshotVersion,
		RNGSeed:      e.seed,
		Reason:       reason,
		ScreenWidth:  e.cfg.Screen.Width,
		ScreenHeight: e.cfg.Screen.Height,
		Tick:         e.state.Tick,
		ElapsedSec:   e.Elapsed().Round(time.Millisecond).Seconds(),
		Mode:         e.state.Mode.String(),
		Rotation:     e.state.Angle,
		OpeningSize:  e.cfg.Circle.OpeningSize,
		Escaped:      e.state.Escaped,
		Elastic:      e.state.Elastic,
		Balls:        make([]telemetry.BallState, 0, e.balls.Count()),
	}

	e.balls.Each(func(pos components.Position, vel components.Velocity, ball components.Ball) {
		snapshot.Balls = append(snapshot.Balls, telemetry.NewBallState(pos, vel, ball))
	})

	return snapshot
}

// recordEvent writes an event to events.csv. Crashes and snapshots are always
// logged; toggles only with stats logging on.
func (e *Engine) recordEvent(ev telemetry.Event) {
	if e.logStats || ev.Type == telemetry.EventCrash || ev.Type == telemetry.EventSnapshot {
		ev.Log()
	}
	if err := e.output.WriteEvent(ev); err != nil {
		slog.Error("failed to write event", "error", err)
	}
}
