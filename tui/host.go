package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/coolmode"
)

// DefaultTick is the refresh interval of Host.Run.
const DefaultTick = 16 * time.Millisecond

// Host drives a Stage from a tcell screen: it forwards mouse input, steps the
// stage's event loop on a ticker, and draws elements and particles.
type Host struct {
	Screen tcell.Screen
	Stage  *coolmode.Stage
	Grid   Grid
	Tick   time.Duration

	// OnKey handles key events. Returning false ends Run. When nil, Escape,
	// Ctrl-C and 'q' end Run.
	OnKey func(ev *tcell.EventKey) bool

	// BoxStyle styles element outlines.
	BoxStyle tcell.Style

	mouse MouseTranslator
}

// NewHost returns a Host for an initialized screen, with the stage viewport
// sized to the terminal.
func NewHost(screen tcell.Screen, stage *coolmode.Stage) *Host {
	h := &Host{
		Screen:   screen,
		Stage:    stage,
		Grid:     DefaultGrid(),
		Tick:     DefaultTick,
		BoxStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	h.resize()
	return h
}

func (h *Host) resize() {
	cols, rows := h.Screen.Size()
	h.Stage.SetViewport(h.Grid.Viewport(cols, rows))
}

// HandleEvent applies one tcell event and reports whether Run should keep
// going.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		h.mouse.Grid = h.Grid
		h.Stage.Dispatch(h.mouse.Translate(ev))
	case *tcell.EventFocus:
		if !ev.Focused {
			h.Stage.Dispatch(h.mouse.Leave())
		}
	case *tcell.EventResize:
		h.resize()
		h.Screen.Sync()
	case *tcell.EventKey:
		if h.OnKey != nil {
			return h.OnKey(ev)
		}
		return !isQuitKey(ev)
	}
	return true
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Draw renders the elements and the overlay and shows the frame.
func (h *Host) Draw() {
	h.Screen.Clear()
	DrawElements(h.Screen, h.Stage, h.Grid, h.BoxStyle)
	DrawOverlay(h.Screen, h.Stage.Overlay(), h.Grid)
	h.Screen.Show()
}

// Run enables the mouse and loops until ctx is done or a key handler asks to
// stop. The caller owns the screen's Init and Fini.
func (h *Host) Run(ctx context.Context) error {
	if h.Screen == nil || h.Stage == nil {
		return fmt.Errorf("tui: host needs a screen and a stage")
	}
	h.Screen.EnableMouse(tcell.MouseMotionEvents)
	h.Screen.EnableFocus()
	defer h.Screen.DisableMouse()

	tick := h.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(h.Screen.PollEvent, events, done)

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Stage.Step(time.Since(start))
			h.Draw()
		}
	}
}

// forwardEvents feeds out from poll until poll returns nil, which it reports
// by closing out, or until done is closed.
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
