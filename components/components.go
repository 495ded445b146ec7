// Package components defines ECS components for the simulation.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents a ball's screen position in pixels.
type Position struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Set overwrites the position from a vector.
func (p *Position) Set(v r2.Vec) {
	p.X, p.Y = v.X, v.Y
}

// Velocity represents a ball's per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a gonum vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

// Set overwrites the velocity from a vector.
func (v *Velocity) Set(w r2.Vec) {
	v.X, v.Y = w.X, w.Y
}

// RGB is an opaque ball color.
type RGB struct {
	R, G, B uint8
}

// Ball holds per-ball state that is not kinematic.
type Ball struct {
	Color   RGB
	Escaped bool // Left through the opening; no longer collides with the rim
}
