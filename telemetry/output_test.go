package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/ringescape/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}
	// Nil receiver methods are no-ops
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for i := int32(1); i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: i * 600, Inside: int(i)}); err != nil {
			t.Fatalf("WriteTelemetry failed: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{}, 600); err != nil {
		t.Fatalf("WritePerf failed: %v", err)
	}
	if err := om.WriteEvent(NewToggleEvent(30, 2, true)); err != nil {
		t.Fatalf("WriteEvent failed: %v", err)
	}
	if err := om.WriteEvent(NewCrashEvent(90, 0, 1600)); err != nil {
		t.Fatalf("WriteEvent failed: %v", err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,elapsed,mode") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "window_end") != 1 {
		t.Error("header written more than once")
	}

	events, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "tick,type,balls,frame_time_ms,path\n30,pause,2,0,\n90,crash,0,1600,\n"
	if string(events) != want {
		t.Errorf("events.csv = %q, want %q", events, want)
	}

	if _, err := os.Stat(filepath.Join(dir, "perf.csv")); err != nil {
		t.Errorf("perf.csv missing: %v", err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}
