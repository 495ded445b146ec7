package telemetry

import "gonum.org/v1/gonum/stat"

// UsageWindow keeps the most recent CPU utilization samples and their mean.
type UsageWindow struct {
	size    int
	samples []float64
	avg     float64
}

// NewUsageWindow creates a window holding at most size samples.
func NewUsageWindow(size int) *UsageWindow {
	if size < 1 {
		size = 1
	}
	return &UsageWindow{
		size:    size,
		samples: make([]float64, 0, size),
	}
}

// Push appends a sample, drops the oldest once the window is full, and
// recomputes the average.
func (w *UsageWindow) Push(v float64) {
	if len(w.samples) == w.size {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:w.size-1]
	}
	w.samples = append(w.samples, v)
	w.avg = stat.Mean(w.samples, nil)
}

// Avg returns the arithmetic mean of the current samples (0 when empty).
func (w *UsageWindow) Avg() float64 {
	return w.avg
}

// Len returns the number of samples held.
func (w *UsageWindow) Len() int {
	return len(w.samples)
}

// Samples returns a copy of the samples, oldest first.
func (w *UsageWindow) Samples() []float64 {
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}
