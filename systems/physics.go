// Package systems contains the ring geometry and the ECS ball system.
package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ringescape/components"
)

// StepResult summarizes one ball update pass.
type StepResult struct {
	Escaped int // balls that left through the opening this tick
	Bounced int // rim reflections this tick
}

// BallSystem owns the ball entities and moves them each tick.
type BallSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Ball]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Ball]

	spawner         *Spawner
	center          r2.Vec
	collisionRadius float64 // ring radius minus ball radius
	count           int
}

// NewBallSystem creates a ball system on the given world.
func NewBallSystem(w *ecs.World, spawner *Spawner, center r2.Vec, collisionRadius float64) *BallSystem {
	return &BallSystem{
		world:           w,
		mapper:          ecs.NewMap3[components.Position, components.Velocity, components.Ball](w),
		filter:          ecs.NewFilter3[components.Position, components.Velocity, components.Ball](w),
		spawner:         spawner,
		center:          center,
		collisionRadius: collisionRadius,
	}
}

// Add creates a ball entity from explicit components.
func (s *BallSystem) Add(pos components.Position, vel components.Velocity, ball components.Ball) ecs.Entity {
	s.count++
	return s.mapper.NewEntity(&pos, &vel, &ball)
}

// Spawn creates n balls from the spawner.
func (s *BallSystem) Spawn(n int) {
	for i := 0; i < n; i++ {
		pos, vel, ball := s.spawner.Next()
		s.Add(pos, vel, ball)
	}
}

// Count returns the number of live balls.
func (s *BallSystem) Count() int {
	return s.count
}

// Update integrates every ball by one tick and resolves rim contact against
// the opening. Escaped balls keep flying without colliding.
func (s *BallSystem) Update(opening Arc, elastic bool, retain float64) StepResult {
	var res StepResult

	query := s.filter.Query()
	for query.Next() {
		pos, vel, ball := query.Get()

		p := r2.Add(pos.Vec(), vel.Vec())
		pos.Set(p)

		if ball.Escaped {
			continue
		}
		if r2.Norm(r2.Sub(p, s.center)) < s.collisionRadius {
			continue
		}

		angle := AngleTo(s.center, p)
		if opening.Contains(angle) {
			ball.Escaped = true
			res.Escaped++
			continue
		}
		vel.Set(Bounce(vel.Vec(), angle, elastic, retain))
		res.Bounced++
	}

	return res
}

// Cleanup removes balls outside the w x h screen and returns how many went.
func (s *BallSystem) Cleanup(w, h float64) int {
	// First pass: collect (no structural changes while the query is open)
	var toRemove []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		if OutOfBounds(pos.Vec(), w, h) {
			toRemove = append(toRemove, query.Entity())
		}
	}

	for _, e := range toRemove {
		s.world.RemoveEntity(e)
		s.count--
	}
	return len(toRemove)
}

// Clear removes every ball and returns how many were removed.
func (s *BallSystem) Clear() int {
	var all []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		s.world.RemoveEntity(e)
	}
	s.count = 0
	return len(all)
}

// Each calls fn for every ball.
func (s *BallSystem) Each(fn func(pos components.Position, vel components.Velocity, ball components.Ball)) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, ball := query.Get()
		fn(*pos, *vel, *ball)
	}
}

// InsideColors returns the colors of balls that have not escaped.
func (s *BallSystem) InsideColors() []components.RGB {
	colors := make([]components.RGB, 0, s.count)
	s.Each(func(_ components.Position, _ components.Velocity, ball components.Ball) {
		if !ball.Escaped {
			colors = append(colors, ball.Color)
		}
	})
	return colors
}

// Speeds returns the speed of every ball that has not escaped.
func (s *BallSystem) Speeds() []float64 {
	speeds := make([]float64, 0, s.count)
	s.Each(func(_ components.Position, vel components.Velocity, ball components.Ball) {
		if !ball.Escaped {
			speeds = append(speeds, r2.Norm(vel.Vec()))
		}
	})
	return speeds
}
