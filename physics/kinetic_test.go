package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bouncer/core"
)

const eps = 1e-12

func TestIntegrateVelocityFirstFrame(t *testing.T) {
	cfg := DefaultConfig()
	weights := []float64{0.5, 1, 1.2, 3}

	for _, w := range weights {
		s := core.NewEntityState(core.XYPair{X: 100, Y: 100})
		IntegrateVelocity(&s, w, cfg)

		want := cfg.Gravity * w * cfg.DT * (1 - cfg.AirResistanceFactor*cfg.DT)
		if !mgl64.FloatEqualThreshold(s.Velocity.Y, want, eps) {
			t.Errorf("weight %v: expected vy %v, got %v", w, want, s.Velocity.Y)
		}
		if s.Velocity.X != 0 {
			t.Errorf("weight %v: expected vx 0, got %v", w, s.Velocity.X)
		}
	}
}

func TestIntegrateVelocityHeavierFallsFaster(t *testing.T) {
	cfg := DefaultConfig()
	light := core.NewEntityState(core.XYPair{})
	heavy := core.NewEntityState(core.XYPair{})

	IntegrateVelocity(&light, 1, cfg)
	IntegrateVelocity(&heavy, 2, cfg)

	if heavy.Velocity.Y <= light.Velocity.Y {
		t.Errorf("Expected weight 2 to gain more downward speed than weight 1, got %v <= %v", heavy.Velocity.Y, light.Velocity.Y)
	}
}

func TestIntegrateVelocityDragDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = 0
	s := core.NewEntityState(core.XYPair{})
	s.Velocity = core.XYPair{X: 10, Y: -4}

	IntegrateVelocity(&s, 1, cfg)

	drag := 1 - cfg.AirResistanceFactor*cfg.DT
	if !mgl64.FloatEqualThreshold(s.Velocity.X, 10*drag, eps) {
		t.Errorf("Expected vx %v, got %v", 10*drag, s.Velocity.X)
	}
	if !mgl64.FloatEqualThreshold(s.Velocity.Y, -4*drag, eps) {
		t.Errorf("Expected vy %v, got %v", -4*drag, s.Velocity.Y)
	}
}

func TestIntegrateVelocityCustomConfig(t *testing.T) {
	cfg := Config{DT: 0.5, Gravity: 10, AirResistanceFactor: 1}
	s := core.NewEntityState(core.XYPair{})

	IntegrateVelocity(&s, 1, cfg)

	// 10*1*0.5 = 5, then *(1 - 1*0.5)
	if !mgl64.FloatEqualThreshold(s.Velocity.Y, 2.5, eps) {
		t.Errorf("Expected vy 2.5, got %v", s.Velocity.Y)
	}
}

func TestIntegratePosition(t *testing.T) {
	s := core.NewEntityState(core.XYPair{X: 10, Y: 20})
	s.Velocity = core.XYPair{X: 1.5, Y: -2}

	IntegratePosition(&s)

	if s.Position.X != 11.5 || s.Position.Y != 18 {
		t.Errorf("Expected (11.5, 18), got (%v, %v)", s.Position.X, s.Position.Y)
	}
	if s.Velocity.X != 1.5 || s.Velocity.Y != -2 {
		t.Errorf("Expected velocity untouched, got %+v", s.Velocity)
	}
}

func TestApplyImpulse(t *testing.T) {
	s := core.NewEntityState(core.XYPair{})
	s.Velocity = core.XYPair{X: 1, Y: 1}
	ApplyImpulse(&s, 2, -3)
	if s.Velocity.X != 3 || s.Velocity.Y != -2 {
		t.Errorf("Expected (3, -2), got %+v", s.Velocity)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config valid, got %v", err)
	}

	nan := math.NaN()
	inf := math.Inf(1)
	with := func(fn func(*Config)) Config {
		c := DefaultConfig()
		fn(&c)
		return c
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", with(func(c *Config) { c.DT = 0 })},
		{"negative dt", with(func(c *Config) { c.DT = -1 })},
		{"nan dt", with(func(c *Config) { c.DT = nan })},
		{"bounciness above one", with(func(c *Config) { c.DefaultBounciness = 1.5 })},
		{"nan bounciness", with(func(c *Config) { c.DefaultBounciness = nan })},
		{"negative ground drag", with(func(c *Config) { c.GroundDragFactor = -0.1 })},
		{"nan ground drag", with(func(c *Config) { c.GroundDragFactor = nan })},
		{"infinite gravity", with(func(c *Config) { c.Gravity = inf })},
		{"nan gravity", with(func(c *Config) { c.Gravity = nan })},
		{"negative gravity", with(func(c *Config) { c.Gravity = -100 })},
		{"nan air resistance", with(func(c *Config) { c.AirResistanceFactor = nan })},
		{"infinite air resistance", with(func(c *Config) { c.AirResistanceFactor = inf })},
		{"air resistance reversing velocity", with(func(c *Config) { c.AirResistanceFactor = 2 / c.DT })},
		{"nan rest threshold", with(func(c *Config) { c.RestVelocityThreshold = nan })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	// Zero gravity and drag are a valid frictionless setup
	if err := with(func(c *Config) { c.Gravity, c.AirResistanceFactor = 0, 0 }).Validate(); err != nil {
		t.Errorf("Expected frictionless config valid, got %v", err)
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.FrameDuration()
	// 1/120 s, truncated to nanoseconds
	if got < 8333000 || got > 8334000 {
		t.Errorf("Expected ~8.333ms, got %v", got)
	}
}

func TestCircleEffectiveSize(t *testing.T) {
	size := Circle(24).EffectiveSize()
	if size.X != 48 || size.Y != 48 {
		t.Errorf("Expected 48x48, got %+v", size)
	}
}
