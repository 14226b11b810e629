package coolmode

import "sync/atomic"

// PointerEvent carries one pointer or touch event to Element listeners.
type PointerEvent struct {
	Type EventType
	// X and Y are viewport coordinates of the pointer. For touch events they
	// mirror the first entry of Touches.
	X, Y float64
	// Touches lists the active touch points for touch events, first finger
	// first. Empty for mouse events.
	Touches []Vec2
	// PointerID is 0 for the mouse and 1-9 for touch slots.
	PointerID int
	Button    MouseButton
	// Target is the element the event is being delivered to.
	Target *Element

	defaultPrevented bool
	passive          bool
}

// PreventDefault asks the host to skip its default handling of the event.
// It has no effect inside a passive listener.
func (e *PointerEvent) PreventDefault() {
	if e.passive {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a non-passive listener called
// PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// ListenerOptions configures AddEventListener.
type ListenerOptions struct {
	// Passive listeners promise not to cancel default behavior; their
	// PreventDefault calls are ignored.
	Passive bool
}

// --- Handler registry ---

type listener struct {
	id      uint32
	fn      func(*PointerEvent)
	passive bool
}

type handlerRegistry struct {
	byType [eventTypeCount][]listener
	nextID uint32
}

func (r *handlerRegistry) add(t EventType, fn func(*PointerEvent), passive bool) uint32 {
	r.nextID++
	r.byType[t] = append(r.byType[t], listener{id: r.nextID, fn: fn, passive: passive})
	return r.nextID
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters the listener so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	h.reg.byType[h.event] = removeListener(h.reg.byType[h.event], h.id)
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Element ---

// elementIDCounter numbers elements across every stage in the process.
var elementIDCounter atomic.Uint32

// Element is an interactive rectangle on a Stage that pointer events are
// dispatched to. It stands in for the DOM node an effect is attached to.
type Element struct {
	ID   uint32
	Name string

	bounds   Rect
	stage    *Stage
	handlers handlerRegistry
	removed  bool
	hovered  [maxPointers]bool
}

// NewElement creates an element covering bounds and adds it on top of the
// stage's existing elements.
func (s *Stage) NewElement(name string, bounds Rect) *Element {
	el := &Element{
		ID:     elementIDCounter.Add(1),
		Name:   name,
		bounds: bounds,
		stage:  s,
	}
	s.elements = append(s.elements, el)
	return el
}

// Stage returns the stage the element was created on.
func (el *Element) Stage() *Stage {
	return el.stage
}

// Bounds returns the element's rectangle in viewport coordinates.
func (el *Element) Bounds() Rect {
	return el.bounds
}

// SetBounds moves or resizes the element.
func (el *Element) SetBounds(r Rect) {
	el.bounds = r
}

// Contains reports whether the viewport point (x, y) hits the element.
func (el *Element) Contains(x, y float64) bool {
	return el.bounds.Contains(x, y)
}

// AddEventListener registers fn for events of type t and returns a handle
// that unregisters it.
func (el *Element) AddEventListener(t EventType, fn func(*PointerEvent), opts ListenerOptions) CallbackHandle {
	if t >= eventTypeCount || fn == nil {
		return CallbackHandle{}
	}
	id := el.handlers.add(t, fn, opts.Passive)
	return CallbackHandle{id: id, reg: &el.handlers, event: t}
}

// ListenerCount returns how many listeners are registered for t.
func (el *Element) ListenerCount(t EventType) int {
	if t >= eventTypeCount {
		return 0
	}
	return len(el.handlers.byType[t])
}

// Remove takes the element off its stage. Listeners stay registered but
// become inert: the stage no longer dispatches to a removed element. Removing
// twice is a no-op.
func (el *Element) Remove() {
	if el.removed {
		return
	}
	el.removed = true
	el.hovered = [maxPointers]bool{}
	if el.stage != nil {
		el.stage.forgetElement(el)
	}
}

// IsRemoved reports whether Remove has been called.
func (el *Element) IsRemoved() bool {
	return el.removed
}

// dispatch delivers ev to every listener registered for ev.Type and reports
// whether a non-passive listener prevented the default action.
func (el *Element) dispatch(ev PointerEvent) bool {
	if el.removed {
		return false
	}
	ev.Target = el
	// Snapshot: a listener may remove itself or others mid-dispatch.
	ls := append([]listener(nil), el.handlers.byType[ev.Type]...)
	prevented := false
	for _, l := range ls {
		e := ev
		e.passive = l.passive
		l.fn(&e)
		if e.defaultPrevented {
			prevented = true
		}
	}
	return prevented
}
