package coolmode

import "testing"

func TestAddAndRemoveListener(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})

	calls := 0
	h := el.AddEventListener(EventPointerDown, func(*PointerEvent) { calls++ }, ListenerOptions{})
	if el.ListenerCount(EventPointerDown) != 1 {
		t.Fatalf("ListenerCount = %d, want 1", el.ListenerCount(EventPointerDown))
	}

	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 50, Y: 50})
	h.Remove()
	h.Remove()
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 50, Y: 50})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if el.ListenerCount(EventPointerDown) != 0 {
		t.Errorf("ListenerCount after Remove = %d, want 0", el.ListenerCount(EventPointerDown))
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

func TestPassiveListenerCannotPreventDefault(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	el.AddEventListener(EventPointerDown, func(ev *PointerEvent) { ev.PreventDefault() }, ListenerOptions{Passive: true})

	if s.Dispatch(PointerEvent{Type: EventPointerDown, X: 10, Y: 10}) {
		t.Error("passive listener prevented default")
	}

	el.AddEventListener(EventPointerDown, func(ev *PointerEvent) { ev.PreventDefault() }, ListenerOptions{})
	if !s.Dispatch(PointerEvent{Type: EventPointerDown, X: 10, Y: 10}) {
		t.Error("active listener should prevent default")
	}
}

func TestDispatchTopmostElement(t *testing.T) {
	s := NewStage(800, 600)
	below := s.NewElement("below", Rect{0, 0, 200, 200})
	above := s.NewElement("above", Rect{50, 50, 50, 50})

	var got []string
	below.AddEventListener(EventPointerDown, func(ev *PointerEvent) { got = append(got, ev.Target.Name) }, ListenerOptions{})
	above.AddEventListener(EventPointerDown, func(ev *PointerEvent) { got = append(got, ev.Target.Name) }, ListenerOptions{})

	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 60, Y: 60})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 10, Y: 10})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 500, Y: 500})

	if len(got) != 2 || got[0] != "above" || got[1] != "below" {
		t.Errorf("targets = %v, want [above below]", got)
	}
}

func TestPointerLeaveOnExit(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	leaves := 0
	el.AddEventListener(EventPointerLeave, func(*PointerEvent) { leaves++ }, ListenerOptions{})

	s.Dispatch(PointerEvent{Type: EventPointerMove, X: 10, Y: 10})
	s.Dispatch(PointerEvent{Type: EventPointerMove, X: 20, Y: 20})
	if leaves != 0 {
		t.Fatalf("leaves while inside = %d, want 0", leaves)
	}
	s.Dispatch(PointerEvent{Type: EventPointerMove, X: 300, Y: 300})
	s.Dispatch(PointerEvent{Type: EventPointerMove, X: 310, Y: 300})
	if leaves != 1 {
		t.Errorf("leaves after exit = %d, want 1", leaves)
	}
}

func TestPointerLeaveViewport(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	other := s.NewElement("other", Rect{200, 0, 100, 100})
	var left []string
	el.AddEventListener(EventPointerLeave, func(ev *PointerEvent) { left = append(left, ev.Target.Name) }, ListenerOptions{})
	other.AddEventListener(EventPointerLeave, func(ev *PointerEvent) { left = append(left, ev.Target.Name) }, ListenerOptions{})

	s.Dispatch(PointerEvent{Type: EventPointerMove, X: 10, Y: 10})
	s.Dispatch(PointerEvent{Type: EventPointerLeave})

	if len(left) != 1 || left[0] != "button" {
		t.Errorf("left = %v, want [button]", left)
	}
}

func TestTouchEventsFollowStartElement(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	var got []EventType
	for _, typ := range []EventType{EventTouchStart, EventTouchMove, EventTouchEnd} {
		el.AddEventListener(typ, func(ev *PointerEvent) { got = append(got, ev.Type) }, ListenerOptions{})
	}

	s.Dispatch(PointerEvent{Type: EventTouchStart, X: 10, Y: 10, PointerID: 1})
	s.Dispatch(PointerEvent{Type: EventTouchMove, X: 400, Y: 400, PointerID: 1})
	s.Dispatch(PointerEvent{Type: EventTouchEnd, X: 400, Y: 400, PointerID: 1})

	if len(got) != 3 {
		t.Fatalf("got %v, want start, move, end", got)
	}
	if got[1] != EventTouchMove {
		t.Errorf("got[1] = %v, want touchmove", got[1])
	}
}

func TestTouchEventsCarryTouches(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	var touches []Vec2
	el.AddEventListener(EventTouchStart, func(ev *PointerEvent) { touches = ev.Touches }, ListenerOptions{})
	s.Dispatch(PointerEvent{Type: EventTouchStart, X: 12, Y: 34, PointerID: 1})
	if len(touches) != 1 || touches[0] != (Vec2{12, 34}) {
		t.Errorf("touches = %v, want [{12 34}]", touches)
	}
}

func TestRemovedElementIsInert(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	calls := 0
	el.AddEventListener(EventPointerDown, func(*PointerEvent) { calls++ }, ListenerOptions{})

	el.Remove()
	el.Remove()
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 50, Y: 50})

	if calls != 0 {
		t.Errorf("calls = %d, want 0 after Remove", calls)
	}
	if !el.IsRemoved() {
		t.Error("IsRemoved = false")
	}
	if len(s.Elements()) != 0 {
		t.Errorf("stage still lists %d elements", len(s.Elements()))
	}
	if el.ListenerCount(EventPointerDown) != 1 {
		t.Error("Remove should not unregister listeners")
	}
}

func TestDispatchRejectsBadPointerID(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	calls := 0
	el.AddEventListener(EventPointerDown, func(*PointerEvent) { calls++ }, ListenerOptions{})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 5, Y: 5, PointerID: maxPointers})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 5, Y: 5, PointerID: -1})
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestListenerRemovingItselfDuringDispatch(t *testing.T) {
	s := NewStage(800, 600)
	el := s.NewElement("button", Rect{0, 0, 100, 100})
	calls := 0
	var h CallbackHandle
	h = el.AddEventListener(EventPointerDown, func(*PointerEvent) {
		calls++
		h.Remove()
	}, ListenerOptions{})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 5, Y: 5})
	s.Dispatch(PointerEvent{Type: EventPointerDown, X: 5, Y: 5})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
