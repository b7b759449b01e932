package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bouncer/parameter"
)

// BounceGenerator generates an exponentially decaying sine "thud"
type BounceGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewBounceGenerator creates a bounce tone generator
func NewBounceGenerator(sr beep.SampleRate, freq, volume float64) *BounceGenerator {
	return &BounceGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
	}
}

func (g *BounceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * parameter.BounceSoundDecay)
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BounceGenerator) Err() error {
	return nil
}
