package telemetry

import "github.com/pthm-cable/ringescape/components"

// Collector accumulates events within stats windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	escapes  int
	spawns   int
	removals int
	bounces  int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: windowTicks}
}

// RecordEscapes records balls leaving through the opening.
func (c *Collector) RecordEscapes(n int) {
	c.escapes += n
}

// RecordSpawns records newly created balls.
func (c *Collector) RecordSpawns(n int) {
	c.spawns += n
}

// RecordRemovals records balls removed for leaving the screen.
func (c *Collector) RecordRemovals(n int) {
	c.removals += n
}

// RecordBounces records rim reflections.
func (c *Collector) RecordBounces(n int) {
	c.bounces += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// WindowSample is the simulation state sampled at the end of a window.
type WindowSample struct {
	ElapsedSec  float64
	Mode        string
	Elastic     bool
	Inside      int
	Escaped     int
	Speeds      []float64
	CommonColor components.RGB
	CommonCount int
	CPUAvg      float64
	Memory      float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snap WindowSample) WindowStats {
	mean, p10, p50, p90 := ComputeSpeedStats(snap.Speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		ElapsedSec:      snap.ElapsedSec,
		Mode:            snap.Mode,
		Elastic:         snap.Elastic,

		Inside:  snap.Inside,
		Escaped: snap.Escaped,
		Total:   snap.Inside + snap.Escaped,

		Escapes:  c.escapes,
		Spawns:   c.spawns,
		Removals: c.removals,
		Bounces:  c.bounces,

		SpeedMean: mean,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,

		CPUAvg: snap.CPUAvg,
		Memory: snap.Memory,
	}
	if snap.CommonCount > 0 {
		stats.CommonColor = HexColor(snap.CommonColor)
		stats.CommonCount = snap.CommonCount
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.escapes = 0
	c.spawns = 0
	c.removals = 0
	c.bounces = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
