package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/coolmode"
)

// MouseTranslator turns tcell mouse events, which report the current button
// state, into pointer down, move and up events.
type MouseTranslator struct {
	Grid Grid

	down bool
}

// Translate returns the pointer event ev implies, positioned at the center of
// the cell under the mouse.
func (m *MouseTranslator) Translate(ev *tcell.EventMouse) coolmode.PointerEvent {
	col, row := ev.Position()
	x, y := m.Grid.ToPixel(col, row)
	btn := ev.Buttons()

	pe := coolmode.PointerEvent{X: x, Y: y, Button: coolmode.MouseButtonLeft}
	switch {
	case btn&tcell.ButtonPrimary != 0:
	case btn&tcell.ButtonSecondary != 0:
		pe.Button = coolmode.MouseButtonRight
	case btn&tcell.ButtonMiddle != 0:
		pe.Button = coolmode.MouseButtonMiddle
	}
	pressed := btn&(tcell.ButtonPrimary|tcell.ButtonSecondary|tcell.ButtonMiddle) != 0

	switch {
	case pressed && !m.down:
		m.down = true
		pe.Type = coolmode.EventPointerDown
	case !pressed && m.down:
		m.down = false
		pe.Type = coolmode.EventPointerUp
	default:
		pe.Type = coolmode.EventPointerMove
	}
	return pe
}

// Leave returns the event for the pointer leaving the terminal, for example
// on focus loss. It also forgets a held button.
func (m *MouseTranslator) Leave() coolmode.PointerEvent {
	m.down = false
	return coolmode.PointerEvent{Type: coolmode.EventPointerLeave}
}
