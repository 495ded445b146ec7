// Package telemetry provides resource monitoring, performance timing, stats
// windows, snapshots and CSV output for the simulation.
package telemetry

import "log/slog"

// EventType identifies simulation lifecycle events.
type EventType uint8

const (
	EventPause EventType = iota
	EventResume
	EventElasticOn
	EventElasticOff
	EventCrash
	EventSnapshot
)

var eventNames = [...]string{
	EventPause:      "pause",
	EventResume:     "resume",
	EventElasticOn:  "elastic_on",
	EventElasticOff: "elastic_off",
	EventCrash:      "crash",
	EventSnapshot:   "snapshot",
}

// String returns the event name.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single lifecycle event.
type Event struct {
	Type  EventType
	Tick  int32
	Balls int // ball count when the event happened

	// Optional fields depending on event type
	FrameTimeMS float64 // crash: measured update time
	Path        string  // snapshot: file written
}

// NewToggleEvent creates a pause/resume event.
func NewToggleEvent(tick int32, balls int, paused bool) Event {
	t := EventResume
	if paused {
		t = EventPause
	}
	return Event{Type: t, Tick: tick, Balls: balls}
}

// NewElasticEvent creates an elastic mode change event.
func NewElasticEvent(tick int32, balls int, elastic bool) Event {
	t := EventElasticOff
	if elastic {
		t = EventElasticOn
	}
	return Event{Type: t, Tick: tick, Balls: balls}
}

// NewCrashEvent creates a frame-time crash event.
func NewCrashEvent(tick int32, balls int, frameTimeMS float64) Event {
	return Event{Type: EventCrash, Tick: tick, Balls: balls, FrameTimeMS: frameTimeMS}
}

// NewSnapshotEvent records a snapshot written to path.
func NewSnapshotEvent(tick int32, balls int, path string) Event {
	return Event{Type: EventSnapshot, Tick: tick, Balls: balls, Path: path}
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Int("tick", int(e.Tick)),
		slog.Int("balls", e.Balls),
	}
	if e.Type == EventCrash {
		attrs = append(attrs, slog.Float64("frame_time_ms", e.FrameTimeMS))
	}
	if e.Path != "" {
		attrs = append(attrs, slog.String("path", e.Path))
	}
	return slog.GroupValue(attrs...)
}

// Log writes the event; crashes are logged as warnings.
func (e Event) Log() {
	if e.Type == EventCrash {
		slog.Warn("simulation crashed", "event", e)
		return
	}
	slog.Info("event", "event", e)
}

// EventCSV is a flat struct for CSV export of events.
type EventCSV struct {
	Tick        int32   `csv:"tick"`
	Type        string  `csv:"type"`
	Balls       int     `csv:"balls"`
	FrameTimeMS float64 `csv:"frame_time_ms"`
	Path        string  `csv:"path"`
}

// ToCSV converts the event to a CSV row.
func (e Event) ToCSV() EventCSV {
	return EventCSV{
		Tick:        e.Tick,
		Type:        e.Type.String(),
		Balls:       e.Balls,
		FrameTimeMS: e.FrameTimeMS,
		Path:        e.Path,
	}
}
