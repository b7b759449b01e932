package objects

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/parameter"
)

func newTestBall(t *testing.T, cfg BallConfig) *Ball {
	t.Helper()
	b, err := NewBall(cfg)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return b
}

func TestNewBallValidation(t *testing.T) {
	neg := -0.1
	over := 1.5
	negWeight := -1.0
	nanWeight := math.NaN()
	tests := []struct {
		name string
		cfg  BallConfig
		want error
	}{
		{"zero radius", BallConfig{Radius: 0}, ErrInvalidRadius},
		{"negative radius", BallConfig{Radius: -3}, ErrInvalidRadius},
		{"nan radius", BallConfig{Radius: math.NaN()}, ErrInvalidRadius},
		{"inf radius", BallConfig{Radius: math.Inf(1)}, ErrInvalidRadius},
		{"negative weight", BallConfig{Radius: 5, Weight: &negWeight}, ErrInvalidWeight},
		{"nan weight", BallConfig{Radius: 5, Weight: &nanWeight}, ErrInvalidWeight},
		{"negative bounciness", BallConfig{Radius: 5, Bounciness: &neg}, ErrInvalidBounciness},
		{"bounciness above one", BallConfig{Radius: 5, Bounciness: &over}, ErrInvalidBounciness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBall(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewBallDefaults(t *testing.T) {
	b := newTestBall(t, BallConfig{Position: core.XYPair{X: 376, Y: 276}, Radius: 24, Color: "bad"})

	if b.WeightFactor() != parameter.BallWeightFactor {
		t.Errorf("Expected stock weight %v, got %v", parameter.BallWeightFactor, b.WeightFactor())
	}
	if _, ok := b.Bounciness(); ok {
		t.Error("Expected no explicit bounciness")
	}
	if b.Color() != core.PixelWhite {
		t.Errorf("Expected white fallback, got %#x", b.Color())
	}
	if b.State().Position != (core.XYPair{X: 376, Y: 276}) {
		t.Errorf("Expected initial position kept, got %+v", b.State().Position)
	}
	if b.State().Velocity != (core.XYPair{}) {
		t.Errorf("Expected zero initial velocity, got %+v", b.State().Velocity)
	}
	size := b.Shape().EffectiveSize()
	if size.X != 48 || size.Y != 48 {
		t.Errorf("Expected 48x48 extent, got %+v", size)
	}

	bounce := 0.8
	b = newTestBall(t, BallConfig{Radius: 4, Color: "#cf5353", Bounciness: &bounce})
	if v, ok := b.Bounciness(); !ok || v != 0.8 {
		t.Errorf("Expected (0.8, true), got (%v, %v)", v, ok)
	}
	if b.Color() != 0xCF5353 {
		t.Errorf("Expected 0xcf5353, got %#x", b.Color())
	}
}

func TestNewBallExplicitWeight(t *testing.T) {
	zero := 0.0
	b := newTestBall(t, BallConfig{Radius: 5, Weight: &zero})
	if b.WeightFactor() != 0 {
		t.Errorf("Expected explicit zero weight kept, got %v", b.WeightFactor())
	}

	heavy := 3.0
	b = newTestBall(t, BallConfig{Radius: 5, Weight: &heavy})
	if b.WeightFactor() != 3 {
		t.Errorf("Expected weight 3, got %v", b.WeightFactor())
	}
}

func TestBallRaster(t *testing.T) {
	b := newTestBall(t, BallConfig{Radius: 24, Color: "#cf5353"})
	r := b.Draw()

	if len(r) != 48 {
		t.Fatalf("Expected 48 rows, got %d", len(r))
	}
	if r.Width() != 48 {
		t.Errorf("Expected width 48, got %d", r.Width())
	}

	// Top row only touches the circle at the centre column
	if len(r[0]) != 25 || r[0][24] != 0xCF5353 || r[0][0] != 0 {
		t.Errorf("Expected top row trimmed to 25 cells with only the centre painted, got len %d", len(r[0]))
	}
	// Middle row spans the full diameter
	if len(r[24]) != 48 || r[24][0] != 0xCF5353 || r[24][47] != 0xCF5353 {
		t.Errorf("Expected full middle row, got len %d", len(r[24]))
	}

	for y, row := range r {
		for x, p := range row {
			if p != 0 && p != 0xCF5353 {
				t.Fatalf("Unexpected pixel %#x at (%d, %d)", p, x, y)
			}
		}
	}

	if &b.Draw()[0][0] != &r[0][0] {
		t.Error("Expected raster to be precomputed and reused")
	}
}

func TestBallLateralBoost(t *testing.T) {
	b := newTestBall(t, BallConfig{Position: core.XYPair{X: 100, Y: 100}, Radius: 10})

	b.HandleInput(input.NewKeySet(input.KeyRight))
	if b.Velocity.X != parameter.BallLateralBoost {
		t.Errorf("Expected vx %v, got %v", parameter.BallLateralBoost, b.Velocity.X)
	}

	b.HandleInput(input.NewKeySet('a'))
	b.HandleInput(input.NewKeySet('a'))
	if b.Velocity.X != -parameter.BallLateralBoost {
		t.Errorf("Expected vx %v, got %v", -parameter.BallLateralBoost, b.Velocity.X)
	}

	if b.Position != (core.XYPair{X: 100, Y: 100}) {
		t.Errorf("Expected input never to move the ball directly, got %+v", b.Position)
	}
}

func TestBallJumpGating(t *testing.T) {
	vp := core.ViewportSize{Width: 800, Height: 600}
	jump := input.NewKeySet(input.KeySpace)

	// No viewport context before the first frame
	b := newTestBall(t, BallConfig{Position: core.XYPair{X: 100, Y: 580}, Radius: 10})
	b.HandleInput(jump)
	if b.Velocity.Y != 0 {
		t.Errorf("Expected no jump before the first frame, got vy %v", b.Velocity.Y)
	}

	// On the floor and settled
	b.SetViewport(vp)
	b.Velocity.Y = -0.3
	b.HandleInput(jump)
	want := -0.3 - parameter.BallJumpImpulse
	if b.Velocity.Y != want {
		t.Errorf("Expected vy %v, got %v", want, b.Velocity.Y)
	}

	// Falling into the floor
	b.Velocity.Y = 0.5
	b.HandleInput(jump)
	if b.Velocity.Y != 0.5 {
		t.Errorf("Expected no jump while falling, got vy %v", b.Velocity.Y)
	}

	// Airborne
	b.Position.Y = 300
	b.Velocity.Y = 0
	b.HandleInput(jump)
	if b.Velocity.Y != 0 {
		t.Errorf("Expected no jump in the air, got vy %v", b.Velocity.Y)
	}
}

func TestBallCustomControls(t *testing.T) {
	controls, err := input.ParseBindings(map[string][]string{"jump": {"k"}})
	if err != nil {
		t.Fatal(err)
	}
	b := newTestBall(t, BallConfig{Position: core.XYPair{X: 0, Y: 580}, Radius: 10, Controls: controls})
	b.SetViewport(core.ViewportSize{Width: 800, Height: 600})

	b.HandleInput(input.NewKeySet(input.KeySpace))
	if b.Velocity.Y != 0 {
		t.Errorf("Expected space unbound, got vy %v", b.Velocity.Y)
	}
	b.HandleInput(input.NewKeySet('k'))
	if b.Velocity.Y != -parameter.BallJumpImpulse {
		t.Errorf("Expected jump on k, got vy %v", b.Velocity.Y)
	}
}
