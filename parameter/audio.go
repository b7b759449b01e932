package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Bounce Sound
const (
	// BounceSoundDuration is the length of one impact tone
	BounceSoundDuration = 60 * time.Millisecond

	// BounceSoundFrequency is the base pitch in Hz
	BounceSoundFrequency = 220.0

	// BounceSoundDecay is the exponential amplitude decay rate per second
	BounceSoundDecay = 40.0

	// BounceSoundMaxVolume caps the amplitude of the loudest impact
	BounceSoundMaxVolume = 0.4

	// BounceMinImpact is the pre-bounce speed below which no sound is played
	BounceMinImpact = 2.0

	// BounceFullImpact is the speed at which the tone reaches full volume
	BounceFullImpact = 12.0

	// MinSoundGap between consecutive bounce sounds
	MinSoundGap = 50 * time.Millisecond
)
