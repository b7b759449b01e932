package physics

import "github.com/lixenwraith/bouncer/core"

// IntegrateVelocity applies gravity then air drag to the velocity
// Drag is applied after gravity so the new gravity contribution is damped in the same step
func IntegrateVelocity(s *core.EntityState, weightFactor float64, cfg Config) {
	s.Velocity.Y += cfg.Gravity * weightFactor * cfg.DT

	drag := 1 - cfg.AirResistanceFactor*cfg.DT
	s.Velocity.X *= drag
	s.Velocity.Y *= drag
}

// IntegratePosition performs the Euler step position += velocity
// DT is already folded into the velocity
func IntegratePosition(s *core.EntityState) {
	s.Position = s.Position.Add(s.Velocity)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(s *core.EntityState, vx, vy float64) {
	s.Velocity.X += vx
	s.Velocity.Y += vy
}
