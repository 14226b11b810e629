package coolmode

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/coolmode/timing"
)

// Engine is one attachment of the particle effect to one Element. Create it
// with Apply (or Attach); release it with Detach.
type Engine struct {
	stage   *Stage
	target  *Element
	cfg     settings
	paint   paint
	overlay *Overlay
	rng     *rand.Rand

	particles []*particle

	// Pointer tracking
	pointer  Vec2
	emitting bool
	track    func(...*PointerEvent)
	handles  []CallbackHandle

	// Frame loop
	loop     *timing.AnimationLoop
	gate     timing.Gate
	frameDt  float32
	lastEmit time.Duration
	emitted  bool

	detachOnce sync.Once
	detached   bool

	stats engineStats
}

type engineStats struct {
	emitted int
	retired int
	frames  int
}

// Attach applies the effect to target and returns the function that removes
// it. A nil or removed target makes Attach a no-op whose detach function is
// also a no-op. The detach function is safe to call any number of times.
func Attach(target *Element, cfg Config) (detach func()) {
	e := Apply(target, cfg)
	if e == nil {
		return func() {}
	}
	return e.Detach
}

// Apply is Attach returning the Engine itself. It returns nil when target is
// nil or removed; every Engine method is safe on a nil Engine.
func Apply(target *Element, cfg Config) *Engine {
	if target == nil || target.removed || target.stage == nil {
		return nil
	}
	s := target.stage
	st := cfg.resolve()

	p, err := st.kind.resolve(st.sizes)
	if err != nil {
		s.debugf("attach %q: %v; falling back to circles", target.Name, err)
		p, _ = Circle().resolve(st.sizes)
	}

	seed := st.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	e := &Engine{
		stage:   s,
		target:  target,
		cfg:     st,
		paint:   p,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		gate:    timing.NewGate(st.fps),
		frameDt: float32(1 / float64(st.fps)),
	}

	overlay, created := s.overlay.acquire()
	e.overlay = overlay
	if created {
		s.debugf("overlay created")
	}

	e.listen()
	e.loop = timing.NewAnimationLoop(s.loop, e.tick, 0)
	e.loop.Start()

	s.debugf("attach %q: limit=%d sizes=%v shape=%s engines=%d",
		target.Name, st.limit, st.sizes, p.shape, s.overlay.refs())
	return e
}

// listen registers the passive pointer and touch listeners on the target.
func (e *Engine) listen() {
	e.track = timing.Throttle(e.stage.loop, func(evs ...*PointerEvent) {
		e.trackPointer(evs[0])
	}, e.cfg.moveThrottle)

	passive := ListenerOptions{Passive: true}
	on := func(t EventType, fn func(*PointerEvent)) {
		e.handles = append(e.handles, e.target.AddEventListener(t, fn, passive))
	}

	move := func(ev *PointerEvent) { e.track(ev) }
	press := func(ev *PointerEvent) {
		e.trackPointer(ev)
		e.emitting = true
	}
	release := func(*PointerEvent) { e.emitting = false }

	on(EventPointerMove, move)
	on(EventTouchMove, move)
	on(EventPointerDown, press)
	on(EventTouchStart, press)
	on(EventPointerUp, release)
	on(EventTouchEnd, release)
	on(EventPointerLeave, release)
}

func (e *Engine) trackPointer(ev *PointerEvent) {
	if ev.Type.isTouch() && len(ev.Touches) > 0 {
		e.pointer = ev.Touches[0]
		return
	}
	e.pointer = Vec2{X: ev.X, Y: ev.Y}
}

// tick runs once per host refresh: emission first, then, if the frame gate
// admits this refresh, physics, retirement and the transform commit.
func (e *Engine) tick(now time.Duration) {
	if e.emitting && len(e.particles) < e.cfg.limit &&
		(!e.emitted || now-e.lastEmit > e.cfg.delay) {
		e.emit()
		e.lastEmit = now
		e.emitted = true
	}

	if !e.gate.Allow(now) {
		return
	}
	e.refresh()
}

// refresh advances every live particle by one processed frame and retires
// the ones that fell off the viewport.
func (e *Engine) refresh() {
	e.stats.frames++
	_, h := e.stage.Viewport()

	live := e.particles[:0]
	for _, p := range e.particles {
		p.advance()
		if p.offscreen(h) {
			e.overlay.remove(p.visual)
			e.stats.retired++
			continue
		}
		p.commit(e.frameDt)
		live = append(live, p)
	}
	clear(e.particles[len(live):])
	e.particles = live
}

// emit creates one particle centered on the tracked pointer.
func (e *Engine) emit() {
	sizes := e.cfg.sizes
	size := sizes[e.rng.IntN(len(sizes))]

	p := &particle{
		x:         e.pointer.X - size/2,
		y:         e.pointer.Y - size/2,
		hs:        e.cfg.hspeed.randomWith(e.rng),
		vs:        e.cfg.vspeed.randomWith(e.rng),
		spin:      e.rng.Float64() * 360,
		spinSpeed: e.rng.Float64() * maxSpinSpeed * e.sign(),
		dir:       e.sign(),
		size:      size,
		fade:      newFade(float32(e.cfg.fadeIn.Seconds())),
	}

	v := &Visual{
		X:        p.x,
		Y:        p.y,
		Rotation: p.spin,
		Size:     size,
		Scale:    1,
		Alpha:    1,
		Color:    ColorWhite,
		Shape:    e.paint.shape,
		Template: e.paint.templates[size],
	}
	if e.paint.tint {
		c := colorful.Hsl(e.rng.Float64()*360, 0.7, 0.5)
		v.Color = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	if p.fade != nil {
		v.Scale, v.Alpha = 0, 0
	}
	p.visual = v

	e.overlay.add(v)
	e.particles = append(e.particles, p)
	e.stats.emitted++

	if e.cfg.onEmit != nil {
		e.cfg.onEmit(v.Center(), size)
	}
}

func (e *Engine) sign() float64 {
	if e.rng.Float64() <= 0.5 {
		return -1
	}
	return 1
}

// Detach removes the listeners, stops the frame loop, removes every live
// particle from the overlay and releases the overlay, destroying it if this
// was the last attached engine. Calling Detach more than once is a no-op.
func (e *Engine) Detach() {
	if e == nil {
		return
	}
	e.detachOnce.Do(func() {
		for _, h := range e.handles {
			h.Remove()
		}
		e.handles = nil
		e.loop.Stop()

		for _, p := range e.particles {
			e.overlay.remove(p.visual)
		}
		clear(e.particles)
		e.particles = nil
		e.emitting = false
		e.detached = true

		destroyed := e.stage.overlay.release()
		e.stage.debugf("detach %q: emitted=%d retired=%d frames=%d engines=%d",
			e.target.Name, e.stats.emitted, e.stats.retired, e.stats.frames, e.stage.overlay.refs())
		if destroyed {
			e.stage.debugf("overlay destroyed")
		}
	})
}

// Detached reports whether Detach has run.
func (e *Engine) Detached() bool {
	return e == nil || e.detached
}

// Count returns the number of live particles.
func (e *Engine) Count() int {
	if e == nil {
		return 0
	}
	return len(e.particles)
}

// Emitting reports whether the pointer is held down on the target.
func (e *Engine) Emitting() bool {
	return e != nil && e.emitting
}

// Pointer returns the last tracked pointer position.
func (e *Engine) Pointer() Vec2 {
	if e == nil {
		return Vec2{}
	}
	return e.pointer
}

// Target returns the element the engine is attached to.
func (e *Engine) Target() *Element {
	if e == nil {
		return nil
	}
	return e.target
}
