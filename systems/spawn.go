package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/ringescape/components"
)

// Spawner creates balls just inside the ring's rim.
type Spawner struct {
	rng     *rand.Rand
	centerX float64
	centerY float64
	radius  float64 // distance from center of a freshly spawned ball
	speed   float64
	palette []components.RGB
}

// NewSpawner creates a spawner. The palette must not be empty.
func NewSpawner(rng *rand.Rand, centerX, centerY, radius, speed float64, palette []components.RGB) *Spawner {
	return &Spawner{
		rng:     rng,
		centerX: centerX,
		centerY: centerY,
		radius:  radius,
		speed:   speed,
		palette: palette,
	}
}

// Next returns the components for a new ball: a uniformly random angle on the
// spawn radius, a diagonal velocity with random signs and a palette color.
func (s *Spawner) Next() (components.Position, components.Velocity, components.Ball) {
	angle := s.rng.Float64() * TwoPi
	pos := components.Position{
		X: s.centerX + s.radius*math.Cos(angle),
		Y: s.centerY + s.radius*math.Sin(angle),
	}
	vel := components.Velocity{
		X: s.sign() * s.speed,
		Y: s.sign() * s.speed,
	}
	ball := components.Ball{Color: s.palette[s.rng.Intn(len(s.palette))]}
	return pos, vel, ball
}

func (s *Spawner) sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// PaletteFromConfig converts configured RGB triples to colors.
func PaletteFromConfig(entries [][3]uint8) []components.RGB {
	out := make([]components.RGB, len(entries))
	for i, e := range entries {
		out[i] = components.RGB{R: e[0], G: e[1], B: e[2]}
	}
	return out
}

// MostCommonColor returns the most frequent color and its count. Ties go to
// the color seen first. ok is false for an empty input.
func MostCommonColor(colors []components.RGB) (color components.RGB, count int, ok bool) {
	if len(colors) == 0 {
		return components.RGB{}, 0, false
	}
	counts := make(map[components.RGB]int, len(colors))
	for _, c := range colors {
		counts[c]++
	}
	for _, c := range colors {
		if counts[c] > count {
			color, count = c, counts[c]
		}
	}
	return color, count, true
}
