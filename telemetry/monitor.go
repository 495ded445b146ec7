package telemetry

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sampler reads host utilization percentages.
type Sampler interface {
	CPUPercent() (float64, error)
	MemoryPercent() (float64, error)
}

// SystemSampler reads utilization from the operating system.
type SystemSampler struct{}

// CPUPercent returns system-wide CPU utilization since the previous call.
func (SystemSampler) CPUPercent() (float64, error) {
	pct, err := cpu.Percent(0, false)
	if err != nil {
		return 0, fmt.Errorf("reading cpu percent: %w", err)
	}
	if len(pct) == 0 {
		return 0, fmt.Errorf("reading cpu percent: no data")
	}
	return pct[0], nil
}

// MemoryPercent returns the share of physical memory in use.
func (SystemSampler) MemoryPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("reading virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// ResourceMonitor samples CPU and memory at most once per interval.
// CPU is averaged over a sliding window; memory is the latest reading.
type ResourceMonitor struct {
	sampler  Sampler
	interval time.Duration
	cpu      *UsageWindow
	memory   float64
	last     time.Time
	samples  int
}

// NewResourceMonitor creates a monitor whose first sample is due one
// interval after start.
func NewResourceMonitor(sampler Sampler, interval time.Duration, window int, start time.Time) *ResourceMonitor {
	return &ResourceMonitor{
		sampler:  sampler,
		interval: interval,
		cpu:      NewUsageWindow(window),
		last:     start,
	}
}

// Poll samples if at least one interval has passed since the last sample.
// It reports whether a sample was taken.
func (m *ResourceMonitor) Poll(now time.Time) (bool, error) {
	if now.Sub(m.last) < m.interval {
		return false, nil
	}

	cpuPct, err := m.sampler.CPUPercent()
	if err != nil {
		return false, err
	}
	memPct, err := m.sampler.MemoryPercent()
	if err != nil {
		return false, err
	}

	m.cpu.Push(cpuPct)
	m.memory = memPct
	m.last = now
	m.samples++
	return true, nil
}

// CPUAvg returns the rolling CPU average.
func (m *ResourceMonitor) CPUAvg() float64 {
	return m.cpu.Avg()
}

// Memory returns the latest memory utilization.
func (m *ResourceMonitor) Memory() float64 {
	return m.memory
}

// Window exposes the CPU sample window.
func (m *ResourceMonitor) Window() *UsageWindow {
	return m.cpu
}

// SampleCount returns how many samples have been taken.
func (m *ResourceMonitor) SampleCount() int {
	return m.samples
}
