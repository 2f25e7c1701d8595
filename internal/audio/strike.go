package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	SampleRate = beep.SampleRate(44100)

	strikeDuration = 120 * time.Millisecond
	strikeTone     = 1150.0 // phenolic ball "clack"
	strikeDecay    = 45.0   // per second
)

// decay is an exponential amplitude envelope that ends after n samples.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	k        float64
	pos      int
	n        int
}

func newDecay(s beep.Streamer, k float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, k: k, n: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.n {
		return 0, false
	}
	if len(samples) > d.n-d.pos {
		samples = samples[:d.n-d.pos]
	}
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.k * float64(d.pos) / float64(d.rate))
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// noise is white noise for the contact transient.
type noise struct {
	rng *rand.Rand
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// newVolume scales s linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// StrikeSound renders the cue tip hitting the ball. volume is clamped to [0,1].
func StrikeSound(volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	volume = math.Max(0, math.Min(1, volume))

	tone, err := generators.SineTone(rate, strikeTone)
	if err != nil {
		return nil, err
	}
	body := newDecay(tone, strikeDecay, strikeDuration, rate)
	click := newDecay(&noise{rng: rand.New(rand.NewSource(1))}, strikeDecay*6, strikeDuration/4, rate)

	mixed := beep.Mix(
		newVolume(body, 0.6),
		newVolume(click, 0.4),
	)
	return newVolume(beep.Take(rate.N(strikeDuration), mixed), volume), nil
}
