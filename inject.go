package coolmode

// syntheticPointerEvent is one queued, injected event.
type syntheticPointerEvent struct {
	typ       EventType
	x, y      float64
	pointerID int
}

func (s *Stage) inject(t EventType, x, y float64, pointerID int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{typ: t, x: x, y: y, pointerID: pointerID})
}

// InjectPress queues a mouse press at the given viewport coordinates. Queued
// events are consumed one per Update or Step, and real mouse and touch
// polling is skipped on frames that consume one.
func (s *Stage) InjectPress(x, y float64) {
	s.inject(EventPointerDown, x, y, 0)
}

// InjectMove queues a mouse move to the given viewport coordinates.
func (s *Stage) InjectMove(x, y float64) {
	s.inject(EventPointerMove, x, y, 0)
}

// InjectRelease queues a mouse release at the given viewport coordinates.
func (s *Stage) InjectRelease(x, y float64) {
	s.inject(EventPointerUp, x, y, 0)
}

// InjectLeave queues the mouse leaving the viewport.
func (s *Stage) InjectLeave() {
	ps := &s.pointers[0]
	s.inject(EventPointerLeave, ps.lastX, ps.lastY, 0)
}

// InjectTouchStart queues a touch down in touch slot 1.
func (s *Stage) InjectTouchStart(x, y float64) {
	s.inject(EventTouchStart, x, y, 1)
}

// InjectTouchMove queues a move of the touch in slot 1.
func (s *Stage) InjectTouchMove(x, y float64) {
	s.inject(EventTouchMove, x, y, 1)
}

// InjectTouchEnd queues the touch in slot 1 lifting.
func (s *Stage) InjectTouchEnd(x, y float64) {
	s.inject(EventTouchEnd, x, y, 1)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; the minimum is 2.
func (s *Stage) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Stage) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (device polling should be skipped).
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.Dispatch(PointerEvent{Type: evt.typ, X: evt.x, Y: evt.y, PointerID: evt.pointerID})
	return true
}
