package coolmode

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual is the drawable handle of one particle on the overlay. Engines own
// and mutate their visuals; renderers only read them.
type Visual struct {
	// X and Y are the top-left corner in viewport coordinates.
	X, Y float64
	// Rotation is in degrees, clockwise, around the visual's center.
	Rotation float64
	// Size is the edge length of the square the particle occupies.
	Size float64
	// Scale and Alpha are 1 unless the particle is fading in.
	Scale, Alpha float64
	// Color tints the template. White leaves image particles untouched.
	Color Color
	// Shape tells non-ebiten renderers what the template looks like.
	Shape Shape
	// Template is the shared size-by-size image the particle draws with.
	Template *ebiten.Image
}

// Center returns the visual's center point.
func (v *Visual) Center() Vec2 {
	return Vec2{X: v.X + v.Size/2, Y: v.Y + v.Size/2}
}

// Overlay is the single full-viewport, non-interactive layer particles are
// drawn into, above everything else on the stage. It never receives pointer
// events.
type Overlay struct {
	visuals   []*Visual
	destroyed bool
}

// Visuals returns the live visuals in insertion order (drawing order). The
// returned slice MUST NOT be mutated.
func (o *Overlay) Visuals() []*Visual {
	return o.visuals
}

// Len returns the number of live visuals.
func (o *Overlay) Len() int {
	return len(o.visuals)
}

// Destroyed reports whether the overlay was torn down because its last engine
// detached.
func (o *Overlay) Destroyed() bool {
	return o.destroyed
}

func (o *Overlay) add(v *Visual) {
	if o.destroyed {
		return
	}
	o.visuals = append(o.visuals, v)
}

func (o *Overlay) remove(v *Visual) {
	for i, x := range o.visuals {
		if x == v {
			copy(o.visuals[i:], o.visuals[i+1:])
			o.visuals[len(o.visuals)-1] = nil
			o.visuals = o.visuals[:len(o.visuals)-1]
			return
		}
	}
}

func (o *Overlay) destroy() {
	clear(o.visuals)
	o.visuals = nil
	o.destroyed = true
}

// overlayRef lazily creates the overlay and counts the engines holding it.
// acquire and release are each one locked step, so the increment and the
// decrement-and-test cannot interleave. A single stage is still driven from
// one goroutine; separate stages may attach concurrently.
type overlayRef struct {
	mu      sync.Mutex
	count   int
	surface *Overlay
}

// acquire returns the overlay, creating it if absent, and reports whether this
// call created it.
func (r *overlayRef) acquire() (o *Overlay, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.surface == nil {
		r.surface = &Overlay{}
		created = true
	}
	r.count++
	return r.surface, created
}

// release drops one reference and reports whether it destroyed the overlay.
// Releasing with no references held is a no-op.
func (r *overlayRef) release() (destroyed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return false
	}
	r.count--
	if r.count > 0 {
		return false
	}
	r.surface.destroy()
	r.surface = nil
	return true
}

func (r *overlayRef) current() *Overlay {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surface
}

func (r *overlayRef) refs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
