// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Circle    CircleConfig    `yaml:"circle"`
	Ball      BallConfig      `yaml:"ball"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Monitor   MonitorConfig   `yaml:"monitor"`
	Crash     CrashConfig     `yaml:"crash"`
	UI        UIConfig        `yaml:"ui"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CircleConfig holds the rotating ring parameters.
type CircleConfig struct {
	Radius             float64 `yaml:"radius"`
	OpeningSize        float64 `yaml:"opening_size"`  // Angular width of the gap (radians)
	RotationStep       float64 `yaml:"rotation_step"` // Radians added per tick
	PerimeterSamples   int     `yaml:"perimeter_samples"`
	PerimeterDotRadius float64 `yaml:"perimeter_dot_radius"`
}

// BallConfig holds ball spawn parameters.
type BallConfig struct {
	Radius        float64    `yaml:"radius"`
	Speed         float64    `yaml:"speed"`           // Per-axis displacement per tick
	InitialCount  int        `yaml:"initial_count"`   // Balls spawned at startup
	SpawnOnEscape int        `yaml:"spawn_on_escape"` // Replacement balls per escape
	Palette       [][3]uint8 `yaml:"palette"`
}

// PhysicsConfig holds collision parameters.
type PhysicsConfig struct {
	Elastic         bool    `yaml:"elastic"`          // Initial collision mode
	InelasticFactor float64 `yaml:"inelastic_factor"` // Speed retained per bounce when inelastic
}

// MonitorConfig holds resource sampling parameters.
type MonitorConfig struct {
	Interval  float64 `yaml:"interval"`   // Seconds between samples
	CPUWindow int     `yaml:"cpu_window"` // CPU samples kept for the rolling average
}

// CrashConfig holds the frame-time guard threshold.
type CrashConfig struct {
	FrameBudget float64 `yaml:"frame_budget"` // Seconds; a longer update crashes the simulation
}

// UIConfig holds widget placement.
type UIConfig struct {
	Button ButtonConfig `yaml:"button"`
}

// ButtonConfig describes the elastic toggle rectangle in screen pixels.
type ButtonConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of simulated ticks per stats row
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CenterX          float64       // Screen.Width / 2 (integer division, as pixels)
	CenterY          float64       // Screen.Height / 2
	CollisionRadius  float64       // Circle.Radius - Ball.Radius
	SpawnRadius      float64       // Circle.Radius - Ball.Radius - 1
	MonitorInterval  time.Duration // Monitor.Interval as a duration
	FrameBudget      time.Duration // Crash.FrameBudget as a duration
	StatsWindowTicks int32         // Telemetry.StatsWindow expressed in ticks
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Circle.Radius <= c.Ball.Radius+1:
		return fmt.Errorf("circle radius %.1f too small for ball radius %.1f", c.Circle.Radius, c.Ball.Radius)
	case len(c.Ball.Palette) == 0:
		return fmt.Errorf("ball palette is empty")
	case c.Monitor.CPUWindow < 1:
		return fmt.Errorf("monitor cpu_window must be at least 1, got %d", c.Monitor.CPUWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CenterX = float64(c.Screen.Width / 2)
	c.Derived.CenterY = float64(c.Screen.Height / 2)
	c.Derived.CollisionRadius = c.Circle.Radius - c.Ball.Radius
	c.Derived.SpawnRadius = c.Circle.Radius - c.Ball.Radius - 1
	c.Derived.MonitorInterval = time.Duration(c.Monitor.Interval * float64(time.Second))
	c.Derived.FrameBudget = time.Duration(c.Crash.FrameBudget * float64(time.Second))

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.StatsWindowTicks = int32(c.Telemetry.StatsWindow * float64(fps))
	if c.Derived.StatsWindowTicks < 1 {
		c.Derived.StatsWindowTicks = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
