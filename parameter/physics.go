package parameter

// World tuning, applied to every entity each step
const (
	// Gravity is the downward acceleration before weight scaling
	Gravity = 100.0

	// AirResistanceFactor drives the per-step multiplicative drag (1 - AirResistanceFactor*DT)
	AirResistanceFactor = 0.1

	// GroundDragFactor is the fraction of horizontal velocity removed per step while resting on the floor
	GroundDragFactor = 0.05

	// DefaultBounciness is the velocity fraction kept after a boundary bounce
	DefaultBounciness = 0.6

	// RestVelocityThreshold is the |vy| at or below which a floor-contacting body counts as resting
	RestVelocityThreshold = 1.0

	// FloorEpsilon absorbs float error in floor-contact comparisons
	FloorEpsilon = 1e-9
)
