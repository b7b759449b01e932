// Package objects holds the concrete entity kinds registered with the engine
package objects

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
)

var (
	ErrInvalidRadius     = errors.New("invalid ball radius")
	ErrInvalidWeight     = errors.New("invalid ball weight")
	ErrInvalidBounciness = errors.New("invalid ball bounciness")
)

// BallConfig describes a ball at construction
// Nil Weight selects the stock weight, nil Bounciness the engine default and empty Controls the default bindings
// A zero Weight is a body gravity does not act on
type BallConfig struct {
	Position   core.XYPair
	Radius     float64
	Color      string
	Weight     *float64
	Bounciness *float64
	Controls   input.Bindings
}

// Ball is a circular body that can be pushed sideways and jump off the floor
type Ball struct {
	core.EntityState

	radius     float64
	color      core.Pixel
	weight     float64
	bounciness float64
	hasBounce  bool
	controls   input.Bindings
	raster     core.Raster
}

// NewBall validates cfg and precomputes the sprite
// An unparseable colour degrades to white
func NewBall(cfg BallConfig) (*Ball, error) {
	if !(cfg.Radius > 0) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, cfg.Radius)
	}
	weight := parameter.BallWeightFactor
	if cfg.Weight != nil {
		weight = *cfg.Weight
	}
	if !(weight >= 0) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	b := &Ball{
		EntityState: core.NewEntityState(cfg.Position),
		radius:      cfg.Radius,
		color:       core.ColorOrDefault(cfg.Color),
		weight:      weight,
		controls:    cfg.Controls,
	}
	if b.controls.Empty() {
		b.controls = input.DefaultBindings()
	}
	if cfg.Bounciness != nil {
		v := *cfg.Bounciness
		if !(v >= 0 && v <= 1) {
			return nil, fmt.Errorf("%w: %v outside [0,1]", ErrInvalidBounciness, v)
		}
		b.bounciness = v
		b.hasBounce = true
	}
	b.raster = circleRaster(b.radius, b.color)
	return b, nil
}

// WeightFactor implements engine.Entity
func (b *Ball) WeightFactor() float64 {
	return b.weight
}

// Bounciness implements engine.Entity
func (b *Ball) Bounciness() (float64, bool) {
	return b.bounciness, b.hasBounce
}

// Shape implements engine.Entity
func (b *Ball) Shape() physics.CollisionShape {
	return physics.Circle(b.radius)
}

// Draw implements engine.Entity
func (b *Ball) Draw() core.Raster {
	return b.raster
}

// Radius returns the ball radius in pixels
func (b *Ball) Radius() float64 {
	return b.radius
}

// Color returns the packed fill colour
func (b *Ball) Color() core.Pixel {
	return b.color
}

// HandleInput applies lateral boost every frame a side key is held,
// and an upward impulse when jump is held while on the floor and not already rising
func (b *Ball) HandleInput(keys input.KeySet) {
	if b.controls.Active(input.ActionLeft, keys) {
		physics.ApplyImpulse(&b.EntityState, -parameter.BallLateralBoost, 0)
	}
	if b.controls.Active(input.ActionRight, keys) {
		physics.ApplyImpulse(&b.EntityState, parameter.BallLateralBoost, 0)
	}

	if b.controls.Active(input.ActionJump, keys) && b.Velocity.Y <= 0 {
		if vp, ok := b.Viewport(); ok && physics.OnFloor(b.Position, b.Shape().EffectiveSize(), vp) {
			physics.ApplyImpulse(&b.EntityState, 0, -parameter.BallJumpImpulse)
		}
	}
}
