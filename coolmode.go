package coolmode

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts c to a premultiplied color.RGBA for image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorScale converts c, further multiplied by alpha, to a premultiplied
// ebiten.ColorScale.
func (c Color) colorScale(alpha float64) ebiten.ColorScale {
	a := clamp01(c.A * alpha)
	var cs ebiten.ColorScale
	cs.Scale(
		float32(clamp01(c.R)*a),
		float32(clamp01(c.G)*a),
		float32(clamp01(c.B)*a),
		float32(a),
	)
	return cs
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a min/max range. Min == Max pins the value.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	return r.randomWith(nil)
}

// randomWith draws from rng, or from the global source when rng is nil.
func (r Range) randomWith(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	return r.Min + f()*(r.Max-r.Min)
}

// EventType identifies a kind of pointer event delivered to an Element.
type EventType uint8

const (
	EventPointerDown  EventType = iota // mouse button pressed over an element
	EventPointerMove                   // mouse moved over an element
	EventPointerUp                     // mouse button released over an element
	EventPointerLeave                  // pointer left an element's bounds
	EventTouchStart                    // finger touched down on an element
	EventTouchMove                     // finger moved; delivered to the element the touch started on
	EventTouchEnd                      // finger lifted; delivered to the element the touch started on

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"pointerdown", "pointermove", "pointerup", "pointerleave",
	"touchstart", "touchmove", "touchend",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// isTouch reports whether t belongs to the touch family.
func (t EventType) isTouch() bool {
	return t == EventTouchStart || t == EventTouchMove || t == EventTouchEnd
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
