package parameter

// Frame Loop Timing
const (
	// TargetFPS is the fixed simulation and presentation rate
	TargetFPS = 120

	// DT is the fixed simulation step in seconds; physics constants are calibrated to it
	DT = 1.0 / TargetFPS
)

// FPSSmoothing is the weight of the newest sample in the exponential FPS average
const FPSSmoothing = 0.1
