package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ringescape/components"
)

var testCenter = r2.Vec{X: 400, Y: 300}

func newTestBallSystem() *BallSystem {
	palette := []components.RGB{{R: 231, G: 76, B: 60}, {R: 46, G: 204, B: 113}}
	spawner := NewSpawner(rand.New(rand.NewSource(1)), testCenter.X, testCenter.Y, 194, 10, palette)
	return NewBallSystem(ecs.NewWorld(), spawner, testCenter, 195)
}

// onlyBall returns the components of the single ball in the system.
func onlyBall(t *testing.T, s *BallSystem) (components.Position, components.Velocity, components.Ball) {
	t.Helper()
	if s.Count() != 1 {
		t.Fatalf("expected exactly one ball, got %d", s.Count())
	}
	var pos components.Position
	var vel components.Velocity
	var ball components.Ball
	s.Each(func(p components.Position, v components.Velocity, b components.Ball) {
		pos, vel, ball = p, v, b
	})
	return pos, vel, ball
}

func TestBallAtRestNeverEscapes(t *testing.T) {
	s := newTestBallSystem()
	s.Add(components.Position{X: testCenter.X, Y: testCenter.Y}, components.Velocity{}, components.Ball{})

	rotation := 0.0
	for i := 0; i < 1000; i++ {
		rotation += 0.02
		res := s.Update(OpeningArc(rotation, math.Pi/8), true, 0.9)
		if res.Escaped != 0 || res.Bounced != 0 {
			t.Fatalf("tick %d: resting ball produced %+v", i, res)
		}
	}

	pos, _, ball := onlyBall(t, s)
	if ball.Escaped {
		t.Error("resting ball marked escaped")
	}
	if pos.X != testCenter.X || pos.Y != testCenter.Y {
		t.Errorf("resting ball moved to %+v", pos)
	}
}

func TestEscapeThroughOpening(t *testing.T) {
	s := newTestBallSystem()
	s.Add(components.Position{X: testCenter.X + 194, Y: testCenter.Y}, components.Velocity{X: 10}, components.Ball{})

	// Opening straddles angle zero
	res := s.Update(OpeningArc(-0.1, 0.2), true, 0.9)
	if res.Escaped != 1 {
		t.Fatalf("expected 1 escape, got %d", res.Escaped)
	}
	if res.Bounced != 0 {
		t.Errorf("expected no bounce, got %d", res.Bounced)
	}

	_, vel, ball := onlyBall(t, s)
	if !ball.Escaped {
		t.Error("ball not marked escaped")
	}
	if vel.X != 10 || vel.Y != 0 {
		t.Errorf("escaped ball velocity changed to %+v", vel)
	}
}

func TestEscapedBallIgnoresRim(t *testing.T) {
	s := newTestBallSystem()
	s.Add(components.Position{X: testCenter.X + 250, Y: testCenter.Y}, components.Velocity{X: 10}, components.Ball{Escaped: true})

	// Opening on the far side: a live ball here would bounce
	res := s.Update(OpeningArc(math.Pi, 0.3), true, 0.9)
	if res.Escaped != 0 || res.Bounced != 0 {
		t.Errorf("escaped ball should not interact with rim, got %+v", res)
	}
	pos, _, _ := onlyBall(t, s)
	if pos.X != testCenter.X+260 {
		t.Errorf("expected escaped ball to keep moving to x=%v, got %v", testCenter.X+260, pos.X)
	}
}

func TestBounceOffRim(t *testing.T) {
	tests := []struct {
		name    string
		elastic bool
		wantVX  float64
	}{
		{"elastic", true, -10},
		{"inelastic", false, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestBallSystem()
			s.Add(components.Position{X: testCenter.X + 194, Y: testCenter.Y}, components.Velocity{X: 10}, components.Ball{})

			res := s.Update(OpeningArc(math.Pi, math.Pi/8), tt.elastic, 0.9)
			if res.Bounced != 1 || res.Escaped != 0 {
				t.Fatalf("expected a single bounce, got %+v", res)
			}

			_, vel, ball := onlyBall(t, s)
			if ball.Escaped {
				t.Error("bounced ball marked escaped")
			}
			if math.Abs(vel.X-tt.wantVX) > 1e-9 || math.Abs(vel.Y) > 1e-9 {
				t.Errorf("expected velocity (%v, 0), got %+v", tt.wantVX, vel)
			}
		})
	}
}

func TestCleanupRemovesOffscreenOnly(t *testing.T) {
	s := newTestBallSystem()
	s.Add(components.Position{X: -5, Y: 10}, components.Velocity{}, components.Ball{Escaped: true})
	s.Add(components.Position{X: 10, Y: 700}, components.Velocity{}, components.Ball{Escaped: true})
	s.Add(components.Position{X: 10, Y: 10}, components.Velocity{}, components.Ball{})

	removed := s.Cleanup(800, 600)
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if s.Count() != 1 {
		t.Errorf("expected 1 ball left, got %d", s.Count())
	}
}

func TestClear(t *testing.T) {
	s := newTestBallSystem()
	s.Spawn(7)

	if n := s.Clear(); n != 7 {
		t.Errorf("expected Clear to remove 7, got %d", n)
	}
	if s.Count() != 0 {
		t.Errorf("expected empty system, got %d", s.Count())
	}
	calls := 0
	s.Each(func(components.Position, components.Velocity, components.Ball) { calls++ })
	if calls != 0 {
		t.Errorf("expected no entities after Clear, iterated %d", calls)
	}
}

func TestInsideColorsAndSpeeds(t *testing.T) {
	s := newTestBallSystem()
	red := components.RGB{R: 255}
	blue := components.RGB{B: 255}
	s.Add(components.Position{X: 400, Y: 300}, components.Velocity{X: 3, Y: 4}, components.Ball{Color: red})
	s.Add(components.Position{X: 410, Y: 300}, components.Velocity{X: 6, Y: 8}, components.Ball{Color: red})
	s.Add(components.Position{X: 700, Y: 300}, components.Velocity{X: 1}, components.Ball{Color: blue, Escaped: true})

	colors := s.InsideColors()
	if len(colors) != 2 {
		t.Fatalf("expected 2 inside colors, got %d", len(colors))
	}
	c, n, ok := MostCommonColor(colors)
	if !ok || c != red || n != 2 {
		t.Errorf("expected red x2, got %v x%d", c, n)
	}

	speeds := s.Speeds()
	if len(speeds) != 2 {
		t.Fatalf("expected 2 speeds, got %d", len(speeds))
	}
	sum := speeds[0] + speeds[1]
	if math.Abs(sum-15) > 1e-9 {
		t.Errorf("expected speeds 5 and 10, got %v", speeds)
	}
}
