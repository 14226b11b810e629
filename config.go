package coolmode

import (
	"math"
	"time"
)

// Defaults applied to zero, negative or NaN Config fields.
const (
	DefaultLimit              = 25
	DefaultHorizontalSpeedMax = 8.0
	DefaultVerticalSpeedMax   = 20.0
	DefaultEmissionDelay      = 50 * time.Millisecond
	DefaultFrameRate          = 30
	DefaultMoveThrottle       = 16 * time.Millisecond

	maxSpinSpeed = 25.0 // degrees per processed frame
)

// DefaultSizes is the particle size set used when Config.Sizes is empty.
var DefaultSizes = []float64{10, 15, 20, 25}

// Config controls one attachment. The zero value is a usable configuration:
// random-hue circles in DefaultSizes, up to DefaultLimit at a time.
type Config struct {
	// Particle selects the particle appearance. Nil means Circle().
	Particle ParticleKind

	// Sizes is the set each particle's size is drawn from. Ignored when Size
	// is positive.
	Sizes []float64
	// Size, when positive, fixes every particle's size.
	Size float64

	// Limit caps the live particles of this attachment.
	Limit int

	// HorizontalSpeedMax bounds the random horizontal speed, in pixels per
	// processed frame. HorizontalSpeed, when positive, fixes it instead.
	HorizontalSpeedMax float64
	HorizontalSpeed    float64

	// VerticalSpeedMax bounds the random initial upward speed, in pixels per
	// processed frame. VerticalSpeed, when positive, fixes it instead.
	VerticalSpeedMax float64
	VerticalSpeed    float64

	// EmissionDelay is the minimum time between two emitted particles.
	EmissionDelay time.Duration

	// FrameRate caps how often particle physics run, in frames per second.
	FrameRate int

	// MoveThrottle coalesces pointer-move tracking to at most one update per
	// interval.
	MoveThrottle time.Duration

	// FadeIn, when positive, eases each new particle's scale and alpha from
	// 0 to 1 over this duration.
	FadeIn time.Duration

	// OnEmit, if set, is called with each new particle's center and size.
	OnEmit func(center Vec2, size float64)

	// Seed, when non-zero, makes particle randomization reproducible.
	Seed uint64
}

// settings is a Config with every default applied.
type settings struct {
	kind         ParticleKind
	sizes        []float64
	limit        int
	hspeed       Range
	vspeed       Range
	delay        time.Duration
	fps          int
	moveThrottle time.Duration
	fadeIn       time.Duration
	onEmit       func(Vec2, float64)
	seed         uint64
}

// usable reports whether v is a positive, finite number.
func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (c Config) resolve() settings {
	st := settings{
		kind:         c.Particle,
		limit:        c.Limit,
		delay:        c.EmissionDelay,
		fps:          c.FrameRate,
		moveThrottle: c.MoveThrottle,
		fadeIn:       max(c.FadeIn, 0),
		onEmit:       c.OnEmit,
		seed:         c.Seed,
	}
	if st.kind == nil {
		st.kind = Circle()
	}

	if usable(c.Size) {
		st.sizes = []float64{c.Size}
	} else {
		for _, sz := range c.Sizes {
			if usable(sz) {
				st.sizes = append(st.sizes, sz)
			}
		}
		if len(st.sizes) == 0 {
			st.sizes = append([]float64(nil), DefaultSizes...)
		}
	}

	if st.limit <= 0 {
		st.limit = DefaultLimit
	}
	st.hspeed = speedRange(c.HorizontalSpeed, c.HorizontalSpeedMax, DefaultHorizontalSpeedMax)
	st.vspeed = speedRange(c.VerticalSpeed, c.VerticalSpeedMax, DefaultVerticalSpeedMax)
	if st.delay <= 0 {
		st.delay = DefaultEmissionDelay
	}
	if st.fps <= 0 {
		st.fps = DefaultFrameRate
	}
	if st.moveThrottle <= 0 {
		st.moveThrottle = DefaultMoveThrottle
	}
	return st
}

// speedRange pins the speed when fixed is usable, else draws from [0, maxV].
func speedRange(fixed, maxV, def float64) Range {
	if usable(fixed) {
		return Range{fixed, fixed}
	}
	if !usable(maxV) {
		maxV = def
	}
	return Range{0, maxV}
}
