package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/ringescape/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the complete simulation state at one tick.
type Snapshot struct {
	Version int    `json:"version"`
	RNGSeed int64  `json:"rng_seed"`
	Reason  string `json:"reason"` // "crash" or "manual"

	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	Tick        int32   `json:"tick"`
	ElapsedSec  float64 `json:"elapsed_sec"`
	Mode        string  `json:"mode"`
	Rotation    float64 `json:"rotation"`
	OpeningSize float64 `json:"opening_size"`
	Escaped     int     `json:"escaped"`
	Elastic     bool    `json:"elastic"`

	Balls []BallState `json:"balls"`
}

// BallState holds one ball's complete state.
type BallState struct {
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	VelX    float64        `json:"vel_x"`
	VelY    float64        `json:"vel_y"`
	Color   components.RGB `json:"color"`
	Escaped bool           `json:"escaped"`
}

// NewBallState flattens ball components.
func NewBallState(pos components.Position, vel components.Velocity, ball components.Ball) BallState {
	return BallState{
		X:       pos.X,
		Y:       pos.Y,
		VelX:    vel.X,
		VelY:    vel.Y,
		Color:   ball.Color,
		Escaped: ball.Escaped,
	}
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Reason != "" {
		name += "_" + snapshot.Reason
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
