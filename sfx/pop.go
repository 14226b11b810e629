// Package sfx synthesizes the short "pop" played when a particle is emitted.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Pop timing.
const (
	PopDuration = 60 * time.Millisecond
	PopAttack   = 4 * time.Millisecond
)

// Pitch range of a pop. Small particles sound high, large ones low.
const (
	minPopFreq = 320.0
	maxPopFreq = 1100.0
	// Sizes at or beyond these bounds map to the pitch extremes.
	smallSize = 5.0
	largeSize = 40.0
)

// PopFrequency returns the starting pitch, in Hz, of the pop for a particle
// of the given size.
func PopFrequency(size float64) float64 {
	t := (size - smallSize) / (largeSize - smallSize)
	t = math.Max(0, math.Min(1, t))
	return maxPopFreq - t*(maxPopFreq-minPopFreq)
}

// chirp is a sine whose frequency falls exponentially to half its start
// over the duration, with a linear attack and an exponential tail.
type chirp struct {
	rate     beep.SampleRate
	freq     float64
	phase    float64
	position int
	total    int
	attack   int
}

// NewPop returns a finite stereo Streamer for one pop at volume vol (0 to 1).
func NewPop(rate beep.SampleRate, size, vol float64) beep.Streamer {
	c := &chirp{
		rate:   rate,
		freq:   PopFrequency(size),
		total:  rate.N(PopDuration),
		attack: rate.N(PopAttack),
	}
	return newVolume(beep.Take(c.total, c), vol)
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		progress := float64(c.position) / float64(c.total)

		gain := math.Exp(-5 * progress)
		if c.position < c.attack && c.attack > 0 {
			gain *= float64(c.position) / float64(c.attack)
		}

		val := math.Sin(2*math.Pi*c.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		freq := c.freq * math.Pow(0.5, progress)
		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so a zero volume
// becomes a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1))}
}
