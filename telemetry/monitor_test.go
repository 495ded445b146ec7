package telemetry

import (
	"errors"
	"testing"
	"time"
)

type fakeSampler struct {
	cpu    []float64
	mem    float64
	calls  int
	cpuErr error
	memErr error
}

func (f *fakeSampler) CPUPercent() (float64, error) {
	if f.cpuErr != nil {
		return 0, f.cpuErr
	}
	v := f.cpu[f.calls%len(f.cpu)]
	f.calls++
	return v, nil
}

func (f *fakeSampler) MemoryPercent() (float64, error) {
	if f.memErr != nil {
		return 0, f.memErr
	}
	return f.mem, nil
}

func TestResourceMonitor_IntervalGating(t *testing.T) {
	start := time.Unix(100, 0)
	s := &fakeSampler{cpu: []float64{10, 20, 30}, mem: 55}
	m := NewResourceMonitor(s, time.Second, 5, start)

	tests := []struct {
		name    string
		offset  time.Duration
		sampled bool
	}{
		{"too early", 500 * time.Millisecond, false},
		{"one interval", time.Second, true},
		{"right after", 1500 * time.Millisecond, false},
		{"next interval", 2 * time.Second, true},
		{"long gap", 10 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := m.Poll(start.Add(tt.offset))
			if err != nil {
				t.Fatalf("Poll returned error: %v", err)
			}
			if ok != tt.sampled {
				t.Errorf("Poll at +%v sampled=%v, want %v", tt.offset, ok, tt.sampled)
			}
		})
	}

	if m.SampleCount() != 3 {
		t.Errorf("expected 3 samples, got %d", m.SampleCount())
	}
	if m.CPUAvg() != 20 {
		t.Errorf("expected cpu avg 20, got %v", m.CPUAvg())
	}
	if m.Memory() != 55 {
		t.Errorf("expected memory 55, got %v", m.Memory())
	}
}

func TestResourceMonitor_WindowCap(t *testing.T) {
	start := time.Unix(0, 0)
	s := &fakeSampler{cpu: []float64{50}}
	m := NewResourceMonitor(s, time.Second, 5, start)

	for i := 1; i <= 20; i++ {
		if _, err := m.Poll(start.Add(time.Duration(i) * time.Second)); err != nil {
			t.Fatal(err)
		}
	}
	if m.Window().Len() != 5 {
		t.Errorf("expected 5 samples kept, got %d", m.Window().Len())
	}
}

func TestResourceMonitor_ErrorPropagates(t *testing.T) {
	start := time.Unix(0, 0)
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		sampler *fakeSampler
	}{
		{"cpu", &fakeSampler{cpuErr: errBoom}},
		{"memory", &fakeSampler{cpu: []float64{1}, memErr: errBoom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewResourceMonitor(tt.sampler, time.Second, 5, start)
			ok, err := m.Poll(start.Add(2 * time.Second))
			if !errors.Is(err, errBoom) {
				t.Errorf("expected boom error, got %v", err)
			}
			if ok || m.SampleCount() != 0 {
				t.Error("failed poll must not record a sample")
			}
		})
	}
}
