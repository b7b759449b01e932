package physics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/bouncer/parameter"
)

// ErrInvalidConfig is returned by Validate for unusable tuning values
var ErrInvalidConfig = errors.New("invalid physics config")

// Config groups the simulation tuning knobs
// Constructed once at startup and passed to the engine; never mutated during a run
type Config struct {
	DT                    float64 // Fixed step in seconds
	Gravity               float64
	AirResistanceFactor   float64
	GroundDragFactor      float64
	DefaultBounciness     float64
	RestVelocityThreshold float64
}

// DefaultConfig returns the compiled-in tuning
func DefaultConfig() Config {
	return Config{
		DT:                    parameter.DT,
		Gravity:               parameter.Gravity,
		AirResistanceFactor:   parameter.AirResistanceFactor,
		GroundDragFactor:      parameter.GroundDragFactor,
		DefaultBounciness:     parameter.DefaultBounciness,
		RestVelocityThreshold: parameter.RestVelocityThreshold,
	}
}

// FrameDuration converts DT into the loop pacing target
func (c Config) FrameDuration() time.Duration {
	return time.Duration(c.DT * float64(time.Second))
}

// Validate rejects configurations the fixed-step loop cannot run
func (c Config) Validate() error {
	if !(c.DT > 0) || math.IsInf(c.DT, 0) {
		return fmt.Errorf("%w: dt %v", ErrInvalidConfig, c.DT)
	}
	if !finiteNonNegative(c.Gravity) {
		return fmt.Errorf("%w: gravity %v", ErrInvalidConfig, c.Gravity)
	}
	// Drag multiplies velocity by 1-air*dt each step; beyond 1 it would flip direction
	if !finiteNonNegative(c.AirResistanceFactor) || c.AirResistanceFactor*c.DT > 1 {
		return fmt.Errorf("%w: air resistance %v", ErrInvalidConfig, c.AirResistanceFactor)
	}
	if !unitInterval(c.DefaultBounciness) {
		return fmt.Errorf("%w: default bounciness %v outside [0,1]", ErrInvalidConfig, c.DefaultBounciness)
	}
	if !unitInterval(c.GroundDragFactor) {
		return fmt.Errorf("%w: ground drag %v outside [0,1]", ErrInvalidConfig, c.GroundDragFactor)
	}
	if !finiteNonNegative(c.RestVelocityThreshold) {
		return fmt.Errorf("%w: rest threshold %v", ErrInvalidConfig, c.RestVelocityThreshold)
	}
	return nil
}

// unitInterval is false for NaN
func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
