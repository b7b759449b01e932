package parameter

// Ball defaults and input response
const (
	// BallWeightFactor is the gravity multiplier for a ball without an explicit weight
	BallWeightFactor = 1.2

	// BallRadius is the stock ball radius in pixels
	BallRadius = 24.0

	// BallColor is the stock ball colour
	BallColor = "#cf5353"

	// BallLateralBoost is the horizontal velocity added per frame while a side key is held
	BallLateralBoost = 0.05

	// BallJumpImpulse is the upward velocity added when jumping off the floor
	BallJumpImpulse = 6.0
)
