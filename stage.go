package coolmode

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/coolmode/timing"
)

// Stage is the top-level object standing in for a document: it owns the
// event loop, the viewport, the interactive elements, and the shared particle
// overlay.
type Stage struct {
	// ClearColor, when its alpha is non-zero, is the background Run fills
	// the screen with each frame.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	loop          *timing.EventLoop
	width, height float64
	elements      []*Element
	overlay       overlayRef
	debug         bool

	// Host clock for Update. Zero until the first Update.
	started time.Time

	// Input state
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	script       *InputScript

	screenshotQueue []string
	shots           []string
}

// NewStage creates a stage with the given viewport size.
func NewStage(width, height float64) *Stage {
	return &Stage{
		ScreenshotDir: "screenshots",
		loop:          timing.NewEventLoop(),
		width:         width,
		height:        height,
	}
}

// Loop returns the event loop that frame callbacks, timeouts and idle work
// run on. It advances once per Update or Step.
func (s *Stage) Loop() *timing.EventLoop {
	return s.loop
}

// Viewport returns the current viewport size.
func (s *Stage) Viewport() (width, height float64) {
	return s.width, s.height
}

// SetViewport resizes the viewport. Particles retire against the new height
// from the next processed frame.
func (s *Stage) SetViewport(width, height float64) {
	s.width, s.height = width, height
}

// Elements returns the stage's live elements in stacking order, bottom first.
// The returned slice MUST NOT be mutated.
func (s *Stage) Elements() []*Element {
	return s.elements
}

// Update polls mouse and touch input, dispatches the resulting events, and
// advances the event loop to the time elapsed since the first Update. Call it
// from ebiten.Game.Update.
func (s *Stage) Update() {
	if s.started.IsZero() {
		s.started = time.Now()
	}
	s.update(time.Since(s.started), true)
}

// Step is Update with an explicit clock and no device polling. Injected
// events and input scripts are still processed. Headless hosts and tests
// drive the stage with Step.
func (s *Stage) Step(now time.Duration) {
	s.update(now, false)
}

func (s *Stage) update(now time.Duration, poll bool) {
	if s.script != nil {
		s.script.step(s)
	}
	if !s.processInjectedInput() && poll {
		s.processInput()
	}
	s.loop.Advance(now)
}

// Draw renders the overlay onto screen. Call it last from ebiten.Game.Draw so
// particles appear above everything else.
func (s *Stage) Draw(screen *ebiten.Image) {
	if o := s.overlay.current(); o != nil {
		o.Draw(screen)
	}
	if s.debug {
		s.drawDebugHUD(screen)
	}
	s.flushScreenshots(screen)
}

// Layout adopts the outside size as the viewport. Suitable as the body of
// ebiten.Game.Layout.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Overlay returns the shared particle overlay, or nil when no engine is
// attached.
func (s *Stage) Overlay() *Overlay {
	return s.overlay.current()
}

// AttachedEngines returns the number of engines currently holding the
// overlay.
func (s *Stage) AttachedEngines() int {
	return s.overlay.refs()
}

// SetDebugMode enables or disables debug mode. When enabled, attach, detach
// and overlay lifecycle events are logged to stderr and Draw overlays a
// stats panel.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// forgetElement drops el from the stacking order and from any pointer that
// captured it.
func (s *Stage) forgetElement(el *Element) {
	for i, e := range s.elements {
		if e == el {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			break
		}
	}
	for i := range s.pointers {
		if s.pointers[i].captured == el {
			s.pointers[i].captured = nil
		}
	}
}
