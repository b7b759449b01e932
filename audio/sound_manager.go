package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bouncer/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays impact tones through the system speaker
// All methods are safe to call without a device; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlay    time.Time
	now         func() time.Time

	// Optional counter of tones queued
	played *atomic.Int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// CountInto publishes the number of queued tones into counter
func (sm *SoundManager) CountInto(counter *atomic.Int64) {
	sm.mu.Lock()
	sm.played = counter
	sm.mu.Unlock()
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether a device is open
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted suppresses playback without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the speaker open for the process lifetime; an empty mixer is silent
	sm.initialized = false
}

// PlayBounce queues one impact tone for a contact with the given pre-bounce speed
// Soft impacts and impacts closer together than MinSoundGap are dropped
func (sm *SoundManager) PlayBounce(impact float64) {
	volume, ok := bounceVolume(impact)
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if !sm.admit(sm.now()) {
		return
	}

	tone := beep.Take(sampleRate.N(parameter.BounceSoundDuration), NewBounceGenerator(sampleRate, bouncePitch(impact), volume))
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()

	if sm.played != nil {
		sm.played.Add(1)
	}
}

// admit applies the minimum gap between tones; caller holds mu
func (sm *SoundManager) admit(now time.Time) bool {
	if !sm.lastPlay.IsZero() && now.Sub(sm.lastPlay) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlay = now
	return true
}

// impactLevel maps impact speed onto [0,1] between the min and full thresholds
func impactLevel(impact float64) float64 {
	level := (impact - parameter.BounceMinImpact) / (parameter.BounceFullImpact - parameter.BounceMinImpact)
	return min(max(level, 0), 1)
}

// bounceVolume returns the tone amplitude, false when the impact is too soft to hear
func bounceVolume(impact float64) (float64, bool) {
	if impact < parameter.BounceMinImpact {
		return 0, false
	}
	// Quarter volume at the threshold
	return parameter.BounceSoundMaxVolume * (0.25 + 0.75*impactLevel(impact)), true
}

// bouncePitch raises the base frequency up to half an octave for hard impacts
func bouncePitch(impact float64) float64 {
	return parameter.BounceSoundFrequency * (1 + 0.5*impactLevel(impact))
}
