package coolmode

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// particle holds per-particle simulation state. Unexported; owned by the
// Engine that emitted it.
type particle struct {
	x, y      float64 // top-left corner, viewport coordinates
	hs        float64 // horizontal speed, pixels per processed frame
	vs        float64 // upward speed, pixels per processed frame
	spin      float64 // rotation, degrees
	spinSpeed float64 // degrees per processed frame
	dir       float64 // -1 or 1; sign of the horizontal drift
	size      float64

	visual *Visual
	fade   *gween.Tween // nil once fully faded in
}

// newFade returns the pop-in tween for a particle, or nil when disabled.
func newFade(seconds float32) *gween.Tween {
	if seconds <= 0 {
		return nil
	}
	return gween.New(0, 1, seconds, ease.OutQuad)
}

// advance runs one processed frame of physics. The upward speed drops by one
// each frame and is clamped to [-size, size], so a particle decelerates,
// turns, and falls no faster than its own size per frame.
func (p *particle) advance() {
	p.x -= p.hs * p.dir
	p.y -= p.vs
	p.vs = clamp(p.vs-1, -p.size, p.size)
	p.spin += p.spinSpeed
}

// offscreen reports whether the particle has fallen fully past the bottom of
// a viewport of the given height.
func (p *particle) offscreen(viewportHeight float64) bool {
	return p.y > viewportHeight+p.size
}

// commit copies the simulation state onto the visual and steps the fade-in
// by dt seconds.
func (p *particle) commit(dt float32) {
	v := p.visual
	v.X, v.Y = p.x, p.y
	v.Rotation = p.spin
	if p.fade == nil {
		return
	}
	val, done := p.fade.Update(dt)
	v.Scale, v.Alpha = float64(val), float64(val)
	if done {
		v.Scale, v.Alpha = 1, 1
		p.fade = nil
	}
}
