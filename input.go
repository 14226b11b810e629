package coolmode

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down     bool // a press was dispatched and not yet ended by up or leave
	held     bool // physical mouse button state at the last poll
	seen     bool // lastX/lastY hold a real position
	lastX    float64
	lastY    float64
	captured *Element // touch target, fixed at touchstart
}

// --- Dispatch ---

// Dispatch routes one pointer event to the elements it concerns and reports
// whether a non-passive listener prevented the default action.
//
// Mouse events go to the topmost element under the pointer; an element the
// pointer was over and no longer is receives EventPointerLeave first. Touch
// events go to the element the touch started on. EventPointerLeave itself
// means the pointer left the viewport and is sent to every element it was
// over.
func (s *Stage) Dispatch(ev PointerEvent) bool {
	if ev.PointerID < 0 || ev.PointerID >= maxPointers || ev.Type >= eventTypeCount {
		return false
	}
	ps := &s.pointers[ev.PointerID]

	if (ev.Type == EventTouchStart || ev.Type == EventTouchMove) && len(ev.Touches) == 0 {
		ev.Touches = []Vec2{{X: ev.X, Y: ev.Y}}
	}

	switch ev.Type {
	case EventPointerLeave:
		s.leaveHovered(ev.PointerID, nil, ev)
		ps.down = false
		return false

	case EventTouchStart:
		ps.captured = s.hitTest(ev.X, ev.Y)
		ps.down = true
		s.track(ps, ev)
		if ps.captured == nil {
			return false
		}
		return ps.captured.dispatch(ev)

	case EventTouchMove, EventTouchEnd:
		target := ps.captured
		if target == nil {
			target = s.hitTest(ev.X, ev.Y)
		}
		if ev.Type == EventTouchEnd {
			ps.captured = nil
			ps.down = false
		}
		s.track(ps, ev)
		if target == nil {
			return false
		}
		return target.dispatch(ev)

	default:
		target := s.hitTest(ev.X, ev.Y)
		s.leaveHovered(ev.PointerID, target, ev)
		switch ev.Type {
		case EventPointerDown:
			ps.down = true
		case EventPointerUp:
			ps.down = false
		}
		s.track(ps, ev)
		if target == nil {
			return false
		}
		target.hovered[ev.PointerID] = true
		return target.dispatch(ev)
	}
}

func (s *Stage) track(ps *pointerState, ev PointerEvent) {
	ps.seen = true
	ps.lastX, ps.lastY = ev.X, ev.Y
}

// leaveHovered sends EventPointerLeave to every element pointer id was over,
// except keep.
func (s *Stage) leaveHovered(id int, keep *Element, ev PointerEvent) {
	// Snapshot: a leave listener may remove elements.
	els := append([]*Element(nil), s.elements...)
	for _, el := range els {
		if el == keep || !el.hovered[id] {
			continue
		}
		el.hovered[id] = false
		leave := ev
		leave.Type = EventPointerLeave
		leave.Touches = nil
		el.dispatch(leave)
	}
}

// hitTest finds the topmost element containing (x, y). Returns nil if nothing
// is hit.
func (s *Stage) hitTest(x, y float64) *Element {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Contains(x, y) {
			return s.elements[i]
		}
	}
	return nil
}

// --- Device polling ---

// processInput is called from Stage.Update to translate ebiten's polled
// mouse and touch state into events.
func (s *Stage) processInput() {
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Stage) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	button := MouseButtonLeft
	if !left && right {
		button = MouseButtonRight
	} else if !left && middle {
		button = MouseButtonMiddle
	}

	inside := x >= 0 && y >= 0 && x < s.width && y < s.height
	s.pollMouse(x, y, left || right || middle, inside, button)
}

// pollMouse turns one sample of the mouse into at most one event. Presses
// and releases are edges of the physical button state, so re-entering the
// viewport with a button held is a move, not a new press, and releasing
// outside the viewport sends nothing.
func (s *Stage) pollMouse(x, y float64, pressed, inside bool, button MouseButton) {
	ps := &s.pointers[0]
	wasHeld := ps.held
	ps.held = pressed

	if !inside {
		if ps.seen {
			s.Dispatch(PointerEvent{Type: EventPointerLeave, X: x, Y: y, Button: button})
			ps.seen = false
		}
		return
	}

	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	switch {
	case pressed && !wasHeld:
		s.Dispatch(PointerEvent{Type: EventPointerDown, X: x, Y: y, Button: button})
	case !pressed && wasHeld && ps.down:
		s.Dispatch(PointerEvent{Type: EventPointerUp, X: x, Y: y, Button: button})
	case moved:
		s.Dispatch(PointerEvent{Type: EventPointerMove, X: x, Y: y, Button: button})
	}
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Stage) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		ps := &s.pointers[slot]
		ev := PointerEvent{X: x, Y: y, PointerID: slot, Touches: s.touchPoints(slot, x, y)}
		switch {
		case !ps.down:
			ev.Type = EventTouchStart
			s.Dispatch(ev)
		case x != ps.lastX || y != ps.lastY:
			ev.Type = EventTouchMove
			s.Dispatch(ev)
		}
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.Dispatch(PointerEvent{Type: EventTouchEnd, X: ps.lastX, Y: ps.lastY, PointerID: i})
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchPoints lists the active touches with slot's own position first.
func (s *Stage) touchPoints(slot int, x, y float64) []Vec2 {
	pts := []Vec2{{X: x, Y: y}}
	for i := 1; i < maxPointers; i++ {
		if i != slot && s.touchUsed[i] && s.pointers[i].down {
			pts = append(pts, Vec2{X: s.pointers[i].lastX, Y: s.pointers[i].lastY})
		}
	}
	return pts
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Stage) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}
