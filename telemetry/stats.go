package telemetry

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ringescape/components"
)

// WindowStats holds aggregated statistics for a stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	ElapsedSec      float64 `csv:"elapsed"`
	Mode            string  `csv:"mode"`
	Elastic         bool    `csv:"elastic"`

	// Population at window end
	Inside  int `csv:"inside"`
	Escaped int `csv:"escaped"` // cumulative escape counter
	Total   int `csv:"total"`

	// Events during window
	Escapes  int `csv:"escapes"`
	Spawns   int `csv:"spawns"`
	Removals int `csv:"removals"`
	Bounces  int `csv:"bounces"`

	// Speed distribution of balls still inside (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Dominant color among balls still inside
	CommonColor string `csv:"common_color"`
	CommonCount int    `csv:"common_count"`

	// Host utilization
	CPUAvg float64 `csv:"cpu_avg"`
	Memory float64 `csv:"memory"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean and percentiles from speed values.
func ComputeSpeedStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// HexColor formats a color as #rrggbb.
func HexColor(c components.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.String("mode", s.Mode),
		slog.Bool("elastic", s.Elastic),
		slog.Int("inside", s.Inside),
		slog.Int("escaped", s.Escaped),
		slog.Int("total", s.Total),
		slog.Int("escapes", s.Escapes),
		slog.Int("spawns", s.Spawns),
		slog.Int("removals", s.Removals),
		slog.Int("bounces", s.Bounces),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.String("common_color", s.CommonColor),
		slog.Int("common_count", s.CommonCount),
		slog.Float64("cpu_avg", s.CPUAvg),
		slog.Float64("memory", s.Memory),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"elapsed", s.ElapsedSec,
		"mode", s.Mode,
		"elastic", s.Elastic,
		"inside", s.Inside,
		"escaped", s.Escaped,
		"total", s.Total,
		"escapes", s.Escapes,
		"spawns", s.Spawns,
		"removals", s.Removals,
		"bounces", s.Bounces,
		"speed_mean", s.SpeedMean,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"common_color", s.CommonColor,
		"common_count", s.CommonCount,
		"cpu_avg", s.CPUAvg,
		"memory", s.Memory,
	)
}
