package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Angle normalization functions

// WrapAngle wraps an angle to [0, 2*Pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod of a value just below zero can round up to exactly 2*Pi
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleTo returns the polar angle of p around center, wrapped to [0, 2*Pi).
func AngleTo(center, p r2.Vec) float64 {
	d := r2.Sub(p, center)
	return WrapAngle(math.Atan2(d.Y, d.X))
}

// Opening arc

// Arc is the angular interval of the ring's opening. End may be smaller than
// Start when the arc straddles angle zero.
type Arc struct {
	Start float64
	End   float64
}

// OpeningArc returns the opening for the given rotation and angular width.
func OpeningArc(rotation, size float64) Arc {
	start := WrapAngle(rotation)
	return Arc{Start: start, End: WrapAngle(start + size)}
}

// Contains reports whether angle a lies in the arc.
func (arc Arc) Contains(a float64) bool {
	return InOpening(a, arc.Start, arc.End)
}

// InOpening reports whether angle a lies between start and end. When
// start >= end the range wraps through zero and a matches if it is at or past
// start or at or before end. Bounds are inclusive.
func InOpening(a, start, end float64) bool {
	if start < end {
		return start <= a && a <= end
	}
	return a >= start || a <= end
}

// Reflection

// Reflect mirrors v across the surface with unit normal n: v - 2(v.n)n.
func Reflect(v, n r2.Vec) r2.Vec {
	return r2.Sub(v, r2.Scale(2*r2.Dot(v, n), n))
}

// Bounce reflects a velocity off the ring at the given polar angle. When the
// collision is inelastic the reflected velocity is scaled by retain.
func Bounce(v r2.Vec, angle float64, elastic bool, retain float64) r2.Vec {
	n := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	out := Reflect(v, n)
	if !elastic {
		out = r2.Scale(retain, out)
	}
	return out
}

// Bounds

// OutOfBounds reports whether p lies outside the [0, w] x [0, h] screen.
func OutOfBounds(p r2.Vec, w, h float64) bool {
	return p.X < 0 || p.X > w || p.Y < 0 || p.Y > h
}

// Perimeter sampling

// PerimeterPoints samples the ring at samples evenly spaced angles starting
// at zero and returns the points that are not inside the opening.
func PerimeterPoints(center r2.Vec, radius float64, samples int, opening Arc) []r2.Vec {
	if samples <= 0 {
		return nil
	}
	pts := make([]r2.Vec, 0, samples)
	step := TwoPi / float64(samples)
	for i := 0; i < samples; i++ {
		a := float64(i) * step
		if opening.Contains(a) {
			continue
		}
		pts = append(pts, r2.Add(center, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}))
	}
	return pts
}
